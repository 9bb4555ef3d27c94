package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"school-schedule/internal/auth"
	"school-schedule/internal/lock"
	"school-schedule/internal/models"
	"school-schedule/internal/timegrid"
	"school-schedule/pkg/response"
	"school-schedule/pkg/sl"
)

const defaultLockTTL = 10 * time.Second

type Store interface {
	BeginTx(ctx context.Context) (*sql.Tx, error)

	// Schools and courses
	GetSchool(ctx context.Context, id string) (*models.School, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)

	// Level configurations
	GetLevelConfig(ctx context.Context, schoolID string, level models.AcademicLevel) (*models.ScheduleLevelConfig, error)
	ListLevelConfigs(ctx context.Context, schoolID string) ([]*models.ScheduleLevelConfig, error)
	UpsertLevelConfig(ctx context.Context, tx *sql.Tx, cfg *models.ScheduleLevelConfig) (string, error)

	// Schedules
	CreateSchedule(ctx context.Context, schedule *models.Schedule) (string, error)
	GetSchedule(ctx context.Context, id string) (*models.Schedule, error)
	ListActiveSchedulesByLevel(ctx context.Context, tx *sql.Tx, schoolID string, level models.AcademicLevel) ([]*models.Schedule, error)
	SetScheduleDeprecated(ctx context.Context, tx *sql.Tx, id string, deprecated bool) error
	UpdateScheduleSnapshot(ctx context.Context, id string, snapshot string) error
	CountSchedules(ctx context.Context, schoolID string) (total int, deprecated int, err error)
}

// ConfigSaved is published after a level configuration has been written and
// before it is committed. Hooks write through Tx, so a failing hook rolls the
// save back. Previous is the configuration in force before the save, defaults included.
type ConfigSaved struct {
	Previous models.ScheduleLevelConfig
	Current  models.ScheduleLevelConfig
	Tx       *sql.Tx
}

type ConfigSavedHook func(ctx context.Context, event ConfigSaved) error

type Service struct {
	store   Store
	locker  lock.Locker
	log     *slog.Logger
	lockTTL time.Duration
	hooks   []ConfigSavedHook
}

type Option func(*Service)

func WithLockTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// NewService wires the store and locker and registers the hook that
// deprecates schedules when a configuration change invalidates them.
func NewService(store Store, locker lock.Locker, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:   store,
		locker:  locker,
		log:     log,
		lockTTL: defaultLockTTL,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.OnConfigSaved(s.deprecateOnCriticalChange)

	return s
}

// OnConfigSaved registers a hook run inside every configuration save.
func (s *Service) OnConfigSaved(hook ConfigSavedHook) {
	s.hooks = append(s.hooks, hook)
}

// publish runs the hooks in registration order and stops at the first failure.
func (s *Service) publish(ctx context.Context, event ConfigSaved) error {
	const op = "service.publish"

	for _, hook := range s.hooks {
		if err := hook(ctx, event); err != nil {
			s.log.Error("config saved hook failed",
				slog.String("op", op),
				slog.String("school_id", event.Current.SchoolID),
				slog.String("academic_level", string(event.Current.AcademicLevel)),
				sl.Err(err),
			)
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

// release frees a lock even when the request context is already cancelled.
func (s *Service) release(ctx context.Context, key string) {
	const op = "service.release"

	if err := s.locker.Unlock(context.WithoutCancel(ctx), key); err != nil {
		s.log.Error("failed to release lock",
			slog.String("op", op),
			slog.String("key", key),
			sl.Err(err),
		)
	}
}

func requirePrincipal(ctx context.Context) error {
	if _, ok := auth.FromContext(ctx); !ok {
		return response.ErrUnauthorized
	}
	return nil
}

// authorizeSchool checks that the caller owns or administers the school.
func (s *Service) authorizeSchool(ctx context.Context, schoolID string) (*models.School, error) {
	const op = "service.authorizeSchool"

	principal, ok := auth.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, response.ErrUnauthorized)
	}

	school, err := s.store.GetSchool(ctx, schoolID)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: school %s: %w", op, schoolID, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !principal.CanAdminister(school) {
		return nil, fmt.Errorf("%s: user %s on school %s: %w", op, principal.UserID, schoolID, response.ErrForbidden)
	}

	return school, nil
}

// effectiveConfig returns the stored configuration of a level or its defaults.
func (s *Service) effectiveConfig(ctx context.Context, schoolID string, level models.AcademicLevel) (models.ScheduleLevelConfig, error) {
	const op = "service.effectiveConfig"

	stored, err := s.store.GetLevelConfig(ctx, schoolID, level)
	if err != nil && !errors.Is(err, response.ErrNotFound) {
		return models.ScheduleLevelConfig{}, fmt.Errorf("%s: %w", op, err)
	}

	return timegrid.Effective(stored, schoolID, level), nil
}

func parseLevel(level string) (models.AcademicLevel, error) {
	l, ok := models.ParseAcademicLevel(level)
	if !ok {
		return "", &response.ValidationError{
			Problems: []string{fmt.Sprintf("academic level %q must be BASIC or MIDDLE", level)},
		}
	}

	return l, nil
}
