package service

import (
	"context"
	"fmt"

	"school-schedule/api"
	"school-schedule/internal/auth"
	"school-schedule/internal/models"
	"school-schedule/internal/timegrid"
	"school-schedule/pkg/response"
)

// Time slots

func (s *Service) GetTimeSlots(ctx context.Context, schoolID, level string) (*api.TimeGridResponse, error) {
	const op = "service.GetTimeSlots"

	if _, err := s.authorizeSchool(ctx, schoolID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cfg, err := s.effectiveConfig(ctx, schoolID, lvl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return timeGridResponse(cfg, timegrid.GenerateTimeSlots(cfg)), nil
}

// PreviewTimeSlots generates the grid of a configuration that has not been saved.
func (s *Service) PreviewTimeSlots(ctx context.Context, req *api.LevelConfigRequest) (*api.TimeGridResponse, error) {
	const op = "service.PreviewTimeSlots"

	if _, ok := auth.FromContext(ctx); !ok {
		return nil, fmt.Errorf("%s: %w", op, response.ErrUnauthorized)
	}

	cfg := levelConfigFromRequest("", models.AcademicLevel(req.AcademicLevel), req)
	if lvl, ok := models.ParseAcademicLevel(req.AcademicLevel); ok {
		cfg.AcademicLevel = lvl
	}

	if err := timegrid.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return timeGridResponse(cfg, timegrid.GenerateTimeSlots(cfg)), nil
}

// CheckBlock reports whether a block number exists in the level's day.
func (s *Service) CheckBlock(ctx context.Context, schoolID, level string, blockNumber int) (*api.BlockCheckResponse, error) {
	const op = "service.CheckBlock"

	if _, err := s.authorizeSchool(ctx, schoolID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cfg, err := s.effectiveConfig(ctx, schoolID, lvl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &api.BlockCheckResponse{
		BlockNumber: blockNumber,
		InRange:     timegrid.IsBlockInRange(blockNumber, cfg.StartTime, cfg.EndTime, cfg.BlockDuration),
		MaxBlocks:   timegrid.BlockCount(cfg.StartTime, cfg.EndTime, cfg.BlockDuration),
	}, nil
}
