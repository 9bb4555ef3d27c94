package sqlstore

import (
	"context"
	"fmt"

	"school-schedule/internal/models"

	"github.com/google/uuid"
)

func (s *Store) CreateSchool(ctx context.Context, school *models.School) (string, error) {
	const op = "storage.sqlstore.CreateSchool"

	if school.ID == "" {
		school.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx,
		s.q(`INSERT INTO schools (id, name, owner_id, created_at) VALUES (?, ?, ?, ?)`),
		school.ID,
		school.Name,
		school.OwnerID,
		s.timestamp(),
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	return school.ID, nil
}

func (s *Store) GetSchool(ctx context.Context, id string) (*models.School, error) {
	const op = "storage.sqlstore.GetSchool"

	var school models.School

	err := s.db.QueryRowContext(ctx,
		s.q(`SELECT id, name, owner_id FROM schools WHERE id = ?`), id).
		Scan(&school.ID, &school.Name, &school.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	return &school, nil
}

func (s *Store) CreateCourse(ctx context.Context, course *models.Course) (string, error) {
	const op = "storage.sqlstore.CreateCourse"

	if course.ID == "" {
		course.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx,
		s.q(`INSERT INTO courses (id, school_id, name, academic_level) VALUES (?, ?, ?, ?)`),
		course.ID,
		course.SchoolID,
		course.Name,
		string(course.AcademicLevel),
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	return course.ID, nil
}

func (s *Store) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	const op = "storage.sqlstore.GetCourse"

	var course models.Course
	var level string

	err := s.db.QueryRowContext(ctx,
		s.q(`SELECT id, school_id, name, academic_level FROM courses WHERE id = ?`), id).
		Scan(&course.ID, &course.SchoolID, &course.Name, &level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.mapErr(err))
	}

	course.AcademicLevel = models.AcademicLevel(level)

	return &course, nil
}
