package api

import "time"

type Break struct {
	AfterBlock int    `json:"after_block"`
	Duration   int    `json:"duration"`
	Name       string `json:"name"`
}

type LevelConfigRequest struct {
	AcademicLevel string  `json:"academic_level,omitempty"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	BlockDuration int     `json:"block_duration"`
	Breaks        []Break `json:"breaks"`
}

type LevelConfigResponse struct {
	ID            string  `json:"id,omitempty"`
	SchoolID      string  `json:"school_id"`
	AcademicLevel string  `json:"academic_level"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	BlockDuration int     `json:"block_duration"`
	Breaks        []Break `json:"breaks"`
	IsDefault     bool    `json:"is_default"`
}

type SaveLevelConfigResponse struct {
	Config         LevelConfigResponse `json:"config"`
	CriticalChange bool                `json:"critical_change"`
}

type TimeSlot struct {
	Time        string `json:"time"`
	EndTime     string `json:"end_time"`
	Type        string `json:"type"`
	BlockNumber *int   `json:"block_number,omitempty"`
	BreakName   string `json:"break_name,omitempty"`
}

type TimeGridResponse struct {
	AcademicLevel string     `json:"academic_level"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	BlockDuration int        `json:"block_duration"`
	Blocks        int        `json:"blocks"`
	Slots         []TimeSlot `json:"slots"`
}

type BlockCheckResponse struct {
	BlockNumber int  `json:"block_number"`
	InRange     bool `json:"in_range"`
	MaxBlocks   int  `json:"max_blocks"`
}

type ScheduleRequest struct {
	CourseID string `json:"course_id" validate:"notblank"`
	Name     string `json:"name" validate:"notblank"`
}

type ConfigSnapshot struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BlockDuration int    `json:"block_duration"`
	AcademicLevel string `json:"academic_level"`
}

type ScheduleResponse struct {
	ID             string          `json:"id"`
	SchoolID       string          `json:"school_id"`
	CourseID       string          `json:"course_id"`
	Name           string          `json:"name"`
	AcademicLevel  string          `json:"academic_level"`
	IsActive       bool            `json:"is_active"`
	IsDeprecated   bool            `json:"is_deprecated"`
	ConfigSnapshot *ConfigSnapshot `json:"config_snapshot"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CompatibilityResponse struct {
	ScheduleID     string   `json:"schedule_id"`
	IsCompatible   bool     `json:"is_compatible"`
	Issues         []string `json:"issues"`
	CanAutoMigrate bool     `json:"can_auto_migrate"`
	Recommendation string   `json:"recommendation"`
	Message        string   `json:"message"`
	IsDeprecated   bool     `json:"is_deprecated"`
}

type DeprecatedStatsResponse struct {
	SchoolID   string `json:"school_id"`
	Total      int    `json:"total"`
	Deprecated int    `json:"deprecated"`
	Percentage int    `json:"percentage"`
}
