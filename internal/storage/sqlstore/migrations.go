package sqlstore

import (
	"context"
	"fmt"
)

// schema is portable between postgres and sqlite.
const schema = `
	CREATE TABLE IF NOT EXISTS schools (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		owner_id   TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS courses (
		id             TEXT PRIMARY KEY,
		school_id      TEXT NOT NULL REFERENCES schools(id) ON DELETE CASCADE,
		name           TEXT NOT NULL,
		academic_level TEXT NOT NULL CHECK (academic_level IN ('BASIC', 'MIDDLE'))
	);

	CREATE TABLE IF NOT EXISTS schedule_level_configs (
		id             TEXT PRIMARY KEY,
		school_id      TEXT NOT NULL REFERENCES schools(id) ON DELETE CASCADE,
		academic_level TEXT NOT NULL CHECK (academic_level IN ('BASIC', 'MIDDLE')),
		start_time     TEXT NOT NULL,
		end_time       TEXT NOT NULL,
		block_duration INTEGER NOT NULL,
		breaks         TEXT NOT NULL DEFAULT '[]',
		updated_at     TEXT NOT NULL,
		UNIQUE (school_id, academic_level)
	);

	CREATE TABLE IF NOT EXISTS schedules (
		id              TEXT PRIMARY KEY,
		school_id       TEXT NOT NULL REFERENCES schools(id) ON DELETE CASCADE,
		course_id       TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		is_active       BOOLEAN NOT NULL,
		is_deprecated   BOOLEAN NOT NULL,
		config_snapshot TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_courses_school ON courses(school_id, academic_level);
	CREATE INDEX IF NOT EXISTS idx_schedules_school ON schedules(school_id, is_active);
	CREATE INDEX IF NOT EXISTS idx_schedules_course ON schedules(course_id);
`

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	return nil
}
