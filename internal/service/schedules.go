package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"school-schedule/api"
	"school-schedule/internal/compat"
	"school-schedule/internal/models"
	"school-schedule/pkg/response"
	"school-schedule/pkg/validate"
)

// Schedules

// CreateSchedule stores a schedule for a course, stamped with the snapshot
// of the configuration currently in force for the course's level.
func (s *Service) CreateSchedule(ctx context.Context, req *api.ScheduleRequest) (*api.ScheduleResponse, error) {
	const op = "service.CreateSchedule"

	if err := requirePrincipal(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	course, err := s.store.GetCourse(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.authorizeSchool(ctx, course.SchoolID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cfg, err := s.effectiveConfig(ctx, course.SchoolID, course.AcademicLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	snapshot := compat.FromConfig(cfg).String()

	schedule := &models.Schedule{
		SchoolID:       course.SchoolID,
		CourseID:       course.ID,
		Name:           strings.TrimSpace(req.Name),
		AcademicLevel:  course.AcademicLevel,
		IsActive:       true,
		ConfigSnapshot: &snapshot,
	}

	id, err := s.store.CreateSchedule(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.store.GetSchedule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return scheduleResponse(created), nil
}

func (s *Service) GetSchedule(ctx context.Context, id string) (*api.ScheduleResponse, error) {
	const op = "service.GetSchedule"

	schedule, err := s.authorizedSchedule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return scheduleResponse(schedule), nil
}

// CheckCompatibility compares a schedule's snapshot with the configuration in force.
func (s *Service) CheckCompatibility(ctx context.Context, id string) (*api.CompatibilityResponse, error) {
	const op = "service.CheckCompatibility"

	schedule, err := s.authorizedSchedule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cfg, err := s.effectiveConfig(ctx, schedule.SchoolID, schedule.AcademicLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := compat.Check(compat.ParseStoredSnapshot(schedule.ConfigSnapshot), compat.FromConfig(cfg))

	return &api.CompatibilityResponse{
		ScheduleID:     schedule.ID,
		IsCompatible:   result.IsCompatible,
		Issues:         result.Issues,
		CanAutoMigrate: result.CanAutoMigrate,
		Recommendation: string(result.Recommendation),
		Message:        compat.Message(result),
		IsDeprecated:   schedule.IsDeprecated,
	}, nil
}

// MarkDeprecatedForLevel flags every active schedule of the level as deprecated
// and returns how many schedules changed.
func (s *Service) MarkDeprecatedForLevel(ctx context.Context, schoolID, level string) (int, error) {
	const op = "service.MarkDeprecatedForLevel"

	if _, err := s.authorizeSchool(ctx, schoolID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: begin tx: %w", op, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	n, err := s.markDeprecated(ctx, tx, schoolID, lvl)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return n, nil
}

// markDeprecated flags the active schedules of a level inside tx.
func (s *Service) markDeprecated(ctx context.Context, tx *sql.Tx, schoolID string, level models.AcademicLevel) (int, error) {
	const op = "service.markDeprecated"

	schedules, err := s.store.ListActiveSchedulesByLevel(ctx, tx, schoolID, level)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	marked := 0
	for _, schedule := range schedules {
		if schedule.IsDeprecated {
			continue
		}

		if err := s.store.SetScheduleDeprecated(ctx, tx, schedule.ID, true); err != nil {
			// a schedule removed between the list and the write is skipped
			if errors.Is(err, response.ErrNotFound) {
				continue
			}
			return marked, fmt.Errorf("%s: schedule %s: %w", op, schedule.ID, err)
		}
		marked++
	}

	return marked, nil
}

// UpdateScheduleSnapshot accepts the current configuration for a schedule:
// the snapshot is rewritten and the deprecated flag cleared.
func (s *Service) UpdateScheduleSnapshot(ctx context.Context, id string) (*api.ScheduleResponse, error) {
	const op = "service.UpdateScheduleSnapshot"

	schedule, err := s.authorizedSchedule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cfg, err := s.effectiveConfig(ctx, schedule.SchoolID, schedule.AcademicLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.UpdateScheduleSnapshot(ctx, schedule.ID, compat.FromConfig(cfg).String()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.store.GetSchedule(ctx, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return scheduleResponse(updated), nil
}

// RestoreSchedule clears the deprecated flag and keeps the snapshot as it is.
func (s *Service) RestoreSchedule(ctx context.Context, id string) (*api.ScheduleResponse, error) {
	const op = "service.RestoreSchedule"

	schedule, err := s.authorizedSchedule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if schedule.IsDeprecated {
		if err := s.store.SetScheduleDeprecated(ctx, nil, schedule.ID, false); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		schedule, err = s.store.GetSchedule(ctx, schedule.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return scheduleResponse(schedule), nil
}

func (s *Service) DeprecatedStats(ctx context.Context, schoolID string) (*api.DeprecatedStatsResponse, error) {
	const op = "service.DeprecatedStats"

	if _, err := s.authorizeSchool(ctx, schoolID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	total, deprecated, err := s.store.CountSchedules(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := deprecatedStats(total, deprecated)

	return &api.DeprecatedStatsResponse{
		SchoolID:   schoolID,
		Total:      stats.Total,
		Deprecated: stats.Deprecated,
		Percentage: stats.Percentage,
	}, nil
}

func deprecatedStats(total, deprecated int) models.DeprecatedStats {
	stats := models.DeprecatedStats{Total: total, Deprecated: deprecated}
	if total > 0 {
		stats.Percentage = int(math.Round(float64(deprecated) / float64(total) * 100))
	}

	return stats
}

// authorizedSchedule rejects anonymous callers before the lookup, so only
// authenticated callers can tell a missing schedule from a foreign one.
func (s *Service) authorizedSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	if err := requirePrincipal(ctx); err != nil {
		return nil, err
	}

	schedule, err := s.store.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.authorizeSchool(ctx, schedule.SchoolID); err != nil {
		return nil, err
	}

	return schedule, nil
}
