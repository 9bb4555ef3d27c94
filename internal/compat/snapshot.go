// Package compat records the configuration a schedule was built against and
// decides whether that schedule still fits the configuration in force.
package compat

import (
	"encoding/json"
	"strings"

	"school-schedule/internal/models"
)

// Snapshot holds the configuration fields that shape a schedule's block grid.
type Snapshot struct {
	StartTime     string               `json:"startTime"`
	EndTime       string               `json:"endTime"`
	BlockDuration int                  `json:"blockDuration"`
	AcademicLevel models.AcademicLevel `json:"academicLevel"`
}

// FromConfig takes the snapshot-relevant fields of a level configuration.
func FromConfig(cfg models.ScheduleLevelConfig) Snapshot {
	return Snapshot{
		StartTime:     cfg.StartTime,
		EndTime:       cfg.EndTime,
		BlockDuration: cfg.BlockDuration,
		AcademicLevel: cfg.AcademicLevel,
	}
}

// String serializes the snapshot in field order startTime, endTime, blockDuration, academicLevel.
func (s Snapshot) String() string {
	// a struct of strings and an int always marshals
	b, _ := json.Marshal(s)
	return string(b)
}

// CreateSnapshot serializes the four shape fields into the text stored on a schedule.
func CreateSnapshot(startTime, endTime string, blockDuration int, level models.AcademicLevel) string {
	return Snapshot{
		StartTime:     startTime,
		EndTime:       endTime,
		BlockDuration: blockDuration,
		AcademicLevel: level,
	}.String()
}

// rawSnapshot detects missing fields while decoding.
type rawSnapshot struct {
	StartTime     *string `json:"startTime"`
	EndTime       *string `json:"endTime"`
	BlockDuration *int    `json:"blockDuration"`
	AcademicLevel *string `json:"academicLevel"`
}

// ParseSnapshot reads stored snapshot text. Empty, corrupt or incomplete text
// yields nil, which callers treat as "no configuration recorded".
func ParseSnapshot(text string) *Snapshot {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var raw rawSnapshot
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil
	}

	if raw.StartTime == nil || raw.EndTime == nil || raw.BlockDuration == nil || raw.AcademicLevel == nil {
		return nil
	}

	return &Snapshot{
		StartTime:     *raw.StartTime,
		EndTime:       *raw.EndTime,
		BlockDuration: *raw.BlockDuration,
		AcademicLevel: models.AcademicLevel(*raw.AcademicLevel),
	}
}

// ParseStoredSnapshot is ParseSnapshot over a nullable column.
func ParseStoredSnapshot(text *string) *Snapshot {
	if text == nil {
		return nil
	}
	return ParseSnapshot(*text)
}
