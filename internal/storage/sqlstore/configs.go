package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"school-schedule/internal/models"
	"school-schedule/internal/timegrid"

	"github.com/google/uuid"
)

const configColumns = `id, school_id, academic_level, start_time, end_time, block_duration, breaks`

// GetLevelConfig returns response.ErrNotFound when the pair was never saved.
func (s *Store) GetLevelConfig(ctx context.Context, schoolID string, level models.AcademicLevel) (*models.ScheduleLevelConfig, error) {
	const op = "storage.sqlstore.GetLevelConfig"

	row := s.db.QueryRowContext(ctx,
		s.q(`SELECT `+configColumns+` FROM schedule_level_configs WHERE school_id = ? AND academic_level = ?`),
		schoolID,
		string(level),
	)

	cfg, err := scanConfig(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	return cfg, nil
}

func (s *Store) ListLevelConfigs(ctx context.Context, schoolID string) ([]*models.ScheduleLevelConfig, error) {
	const op = "storage.sqlstore.ListLevelConfigs"

	rows, err := s.db.QueryContext(ctx,
		s.q(`SELECT `+configColumns+` FROM schedule_level_configs WHERE school_id = ? ORDER BY academic_level`),
		schoolID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	defer rows.Close()

	var configs []*models.ScheduleLevelConfig

	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		configs = append(configs, cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return configs, nil
}

// UpsertLevelConfig replaces the whole configuration of a (school, level) pair
// and returns the id of the stored row.
func (s *Store) UpsertLevelConfig(ctx context.Context, tx *sql.Tx, cfg *models.ScheduleLevelConfig) (string, error) {
	const op = "storage.sqlstore.UpsertLevelConfig"

	breaks, err := timegrid.EncodeBreaks(cfg.Breaks)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var id string

	err = s.conn(tx).QueryRowContext(ctx, s.q(`
		INSERT INTO schedule_level_configs
			(id, school_id, academic_level, start_time, end_time, block_duration, breaks, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (school_id, academic_level)
		DO UPDATE
		SET start_time = excluded.start_time,
			end_time = excluded.end_time,
			block_duration = excluded.block_duration,
			breaks = excluded.breaks,
			updated_at = excluded.updated_at
		RETURNING id`),
		uuid.NewString(),
		cfg.SchoolID,
		string(cfg.AcademicLevel),
		cfg.StartTime,
		cfg.EndTime,
		cfg.BlockDuration,
		breaks,
		s.timestamp(),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	cfg.ID = id
	cfg.IsDefault = false

	return id, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConfig(row scanner) (*models.ScheduleLevelConfig, error) {
	var (
		cfg    models.ScheduleLevelConfig
		level  string
		breaks sql.NullString
	)

	err := row.Scan(
		&cfg.ID,
		&cfg.SchoolID,
		&level,
		&cfg.StartTime,
		&cfg.EndTime,
		&cfg.BlockDuration,
		&breaks,
	)
	if err != nil {
		return nil, err
	}

	cfg.AcademicLevel = models.AcademicLevel(level)
	cfg.Breaks = timegrid.DecodeBreaks(breaks.String)

	return &cfg, nil
}
