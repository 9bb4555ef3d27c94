package models

import (
	"strings"
	"time"
)

type AcademicLevel string

const (
	LevelBasic  AcademicLevel = "BASIC"
	LevelMiddle AcademicLevel = "MIDDLE"
)

// AcademicLevels lists every level in display order.
var AcademicLevels = []AcademicLevel{LevelBasic, LevelMiddle}

func (l AcademicLevel) Valid() bool {
	return l == LevelBasic || l == LevelMiddle
}

// ParseAcademicLevel accepts a level tag in any letter case.
func ParseAcademicLevel(s string) (AcademicLevel, bool) {
	l := AcademicLevel(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", false
	}

	return l, true
}

type BreakConfig struct {
	AfterBlock int    `json:"afterBlock" validate:"gte=1"`
	Duration   int    `json:"duration" validate:"gt=0,step=15"`
	Name       string `json:"name"`
}

type ScheduleLevelConfig struct {
	ID            string        `db:"id"`
	SchoolID      string        `db:"school_id"`
	AcademicLevel AcademicLevel `db:"academic_level" validate:"oneof=BASIC MIDDLE"`
	StartTime     string        `db:"start_time" validate:"clock"`
	EndTime       string        `db:"end_time" validate:"clock"`
	BlockDuration int           `db:"block_duration" validate:"gt=0,step=15"`
	Breaks        []BreakConfig `db:"breaks" validate:"unique=AfterBlock,dive"`
	// IsDefault marks a synthesized configuration that was never stored.
	IsDefault bool `db:"-"`
}

type SlotType string

const (
	SlotBlock SlotType = "block"
	SlotBreak SlotType = "break"
)

type TimeSlot struct {
	Time        string
	EndTime     string
	Type        SlotType
	BlockNumber int
	BreakName   string
}

type School struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	OwnerID string `db:"owner_id"`
}

type Course struct {
	ID            string        `db:"id"`
	SchoolID      string        `db:"school_id"`
	Name          string        `db:"name"`
	AcademicLevel AcademicLevel `db:"academic_level"`
}

type Schedule struct {
	ID             string        `db:"id"`
	SchoolID       string        `db:"school_id"`
	CourseID       string        `db:"course_id"`
	Name           string        `db:"name"`
	AcademicLevel  AcademicLevel `db:"academic_level"`
	IsActive       bool          `db:"is_active"`
	IsDeprecated   bool          `db:"is_deprecated"`
	ConfigSnapshot *string       `db:"config_snapshot"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

type DeprecatedStats struct {
	Total      int
	Deprecated int
	Percentage int
}
