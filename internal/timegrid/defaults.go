package timegrid

import "school-schedule/internal/models"

// Default returns the built-in configuration of a level. The result is a
// fresh value on every call and is never persisted.
func Default(schoolID string, level models.AcademicLevel) models.ScheduleLevelConfig {
	cfg := models.ScheduleLevelConfig{
		SchoolID:      schoolID,
		AcademicLevel: level,
		IsDefault:     true,
	}

	switch level {
	case models.LevelMiddle:
		cfg.StartTime = "08:00"
		cfg.EndTime = "18:00"
		cfg.BlockDuration = 90
		cfg.Breaks = []models.BreakConfig{
			{AfterBlock: 2, Duration: 15, Name: "Recreo"},
			{AfterBlock: 3, Duration: 45, Name: "Almuerzo"},
		}
	default:
		cfg.StartTime = "08:00"
		cfg.EndTime = "17:00"
		cfg.BlockDuration = 45
		cfg.Breaks = []models.BreakConfig{
			{AfterBlock: 2, Duration: 15, Name: "Recreo"},
			{AfterBlock: 4, Duration: 45, Name: "Almuerzo"},
			{AfterBlock: 6, Duration: 15, Name: "Recreo Tarde"},
		}
	}

	return cfg
}

// Effective returns stored when present, otherwise the level default.
func Effective(stored *models.ScheduleLevelConfig, schoolID string, level models.AcademicLevel) models.ScheduleLevelConfig {
	if stored != nil {
		return *stored
	}
	return Default(schoolID, level)
}
