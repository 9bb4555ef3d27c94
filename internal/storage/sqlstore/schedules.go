package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"school-schedule/internal/models"
	"school-schedule/pkg/response"

	"github.com/google/uuid"
)

const scheduleSelect = `
	SELECT s.id, s.school_id, s.course_id, s.name, c.academic_level,
	       s.is_active, s.is_deprecated, s.config_snapshot, s.created_at, s.updated_at
	FROM schedules s
	JOIN courses c ON c.id = s.course_id`

func (s *Store) CreateSchedule(ctx context.Context, schedule *models.Schedule) (string, error) {
	const op = "storage.sqlstore.CreateSchedule"

	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}

	now := s.timestamp()

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO schedules
			(id, school_id, course_id, name, is_active, is_deprecated, config_snapshot, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		schedule.ID,
		schedule.SchoolID,
		schedule.CourseID,
		schedule.Name,
		schedule.IsActive,
		schedule.IsDeprecated,
		nullString(schedule.ConfigSnapshot),
		now,
		now,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	return schedule.ID, nil
}

func (s *Store) GetSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	const op = "storage.sqlstore.GetSchedule"

	row := s.db.QueryRowContext(ctx, s.q(scheduleSelect+` WHERE s.id = ?`), id)

	schedule, err := scanSchedule(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	return schedule, nil
}

// ListActiveSchedulesByLevel returns active schedules whose course belongs to level.
func (s *Store) ListActiveSchedulesByLevel(ctx context.Context, tx *sql.Tx, schoolID string, level models.AcademicLevel) ([]*models.Schedule, error) {
	const op = "storage.sqlstore.ListActiveSchedulesByLevel"

	rows, err := s.conn(tx).QueryContext(ctx,
		s.q(scheduleSelect+` WHERE s.school_id = ? AND c.academic_level = ? AND s.is_active = ? ORDER BY s.created_at, s.id`),
		schoolID,
		string(level),
		true,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	defer rows.Close()

	var schedules []*models.Schedule

	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return schedules, nil
}

func (s *Store) SetScheduleDeprecated(ctx context.Context, tx *sql.Tx, id string, deprecated bool) error {
	const op = "storage.sqlstore.SetScheduleDeprecated"

	res, err := s.conn(tx).ExecContext(ctx,
		s.q(`UPDATE schedules SET is_deprecated = ?, updated_at = ? WHERE id = ?`),
		deprecated,
		s.timestamp(),
		id,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	return expectRow(op, res)
}

// UpdateScheduleSnapshot replaces the stored snapshot and clears the deprecated flag.
func (s *Store) UpdateScheduleSnapshot(ctx context.Context, id string, snapshot string) error {
	const op = "storage.sqlstore.UpdateScheduleSnapshot"

	res, err := s.db.ExecContext(ctx,
		s.q(`UPDATE schedules SET config_snapshot = ?, is_deprecated = ?, updated_at = ? WHERE id = ?`),
		snapshot,
		false,
		s.timestamp(),
		id,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	return expectRow(op, res)
}

// CountSchedules counts active schedules of a school and how many of them are deprecated.
func (s *Store) CountSchedules(ctx context.Context, schoolID string) (total int, deprecated int, err error) {
	const op = "storage.sqlstore.CountSchedules"

	err = s.db.QueryRowContext(ctx, s.q(`
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN is_deprecated THEN 1 ELSE 0 END), 0)
		FROM schedules
		WHERE school_id = ? AND is_active = ?`),
		schoolID,
		true,
	).Scan(&total, &deprecated)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	return total, deprecated, nil
}

func scanSchedule(row scanner) (*models.Schedule, error) {
	var (
		schedule  models.Schedule
		level     string
		snapshot  sql.NullString
		createdAt string
		updatedAt string
	)

	err := row.Scan(
		&schedule.ID,
		&schedule.SchoolID,
		&schedule.CourseID,
		&schedule.Name,
		&level,
		&schedule.IsActive,
		&schedule.IsDeprecated,
		&snapshot,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	schedule.AcademicLevel = models.AcademicLevel(level)
	if snapshot.Valid {
		schedule.ConfigSnapshot = &snapshot.String
	}
	schedule.CreatedAt = parseTimestamp(createdAt)
	schedule.UpdatedAt = parseTimestamp(updatedAt)

	return &schedule, nil
}

func expectRow(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
