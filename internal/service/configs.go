package service

import (
	"context"
	"fmt"
	"log/slog"

	"school-schedule/api"
	"school-schedule/internal/compat"
	"school-schedule/internal/lock"
	"school-schedule/internal/models"
	"school-schedule/internal/timegrid"
	"school-schedule/pkg/response"
)

// Level configurations

func (s *Service) GetLevelConfig(ctx context.Context, schoolID, level string) (*api.LevelConfigResponse, error) {
	const op = "service.GetLevelConfig"

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

	resp := levelConfigResponse(cfg)
	return &resp, nil
}

// ListLevelConfigs returns one configuration per academic level, stored or default.
func (s *Service) ListLevelConfigs(ctx context.Context, schoolID string) ([]*api.LevelConfigResponse, error) {
	const op = "service.ListLevelConfigs"

	if _, err := s.authorizeSchool(ctx, schoolID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stored, err := s.store.ListLevelConfigs(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byLevel := make(map[models.AcademicLevel]*models.ScheduleLevelConfig, len(stored))
	for _, cfg := range stored {
		byLevel[cfg.AcademicLevel] = cfg
	}

	result := make([]*api.LevelConfigResponse, 0, len(models.AcademicLevels))
	for _, level := range models.AcademicLevels {
		resp := levelConfigResponse(timegrid.Effective(byLevel[level], schoolID, level))
		result = append(result, &resp)
	}

	return result, nil
}

// SaveLevelConfig validates and replaces the configuration of a level, then
// publishes ConfigSaved so dependent schedules can be flagged.
func (s *Service) SaveLevelConfig(ctx context.Context, schoolID, level string, req *api.LevelConfigRequest) (*api.SaveLevelConfigResponse, error) {
	const op = "service.SaveLevelConfig"

	if _, err := s.authorizeSchool(ctx, schoolID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.AcademicLevel != "" {
		if bodyLevel, ok := models.ParseAcademicLevel(req.AcademicLevel); !ok || bodyLevel != lvl {
			return nil, fmt.Errorf("%s: %w", op, &response.ValidationError{
				Problems: []string{fmt.Sprintf("academic level %q in body does not match %s", req.AcademicLevel, lvl)},
			})
		}
	}

	cfg := levelConfigFromRequest(schoolID, lvl, req)

	if err := timegrid.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	key := lock.LevelConfigKey(schoolID, string(lvl))

	locked, err := s.locker.Lock(ctx, key, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: lock error: %w", op, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", op, response.ErrLocked)
	}
	defer s.release(ctx, key)

	previous, err := s.effectiveConfig(ctx, schoolID, lvl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: begin tx: %w", op, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if _, err := s.store.UpsertLevelConfig(ctx, tx, &cfg); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.publish(ctx, ConfigSaved{Previous: previous, Current: cfg, Tx: tx}); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return &api.SaveLevelConfigResponse{
		Config:         levelConfigResponse(cfg),
		CriticalChange: compat.IsCriticalChange(previous, cfg),
	}, nil
}

func (s *Service) deprecateOnCriticalChange(ctx context.Context, event ConfigSaved) error {
	const op = "service.deprecateOnCriticalChange"

	if !compat.IsCriticalChange(event.Previous, event.Current) {
		return nil
	}

	n, err := s.markDeprecated(ctx, event.Tx, event.Current.SchoolID, event.Current.AcademicLevel)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("schedules deprecated after configuration change",
		slog.String("op", op),
		slog.String("school_id", event.Current.SchoolID),
		slog.String("academic_level", string(event.Current.AcademicLevel)),
		slog.Int("count", n),
	)

	return nil
}
