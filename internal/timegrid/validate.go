package timegrid

import (
	"errors"
	"fmt"

	"school-schedule/internal/models"
	"school-schedule/pkg/response"
	"school-schedule/pkg/validate"
)

// Validate checks a configuration before it is saved or previewed.
// Field rules live in the validate tags of models.ScheduleLevelConfig;
// the ordering of start and end is checked here once both clocks parse.
// It returns a *response.ValidationError listing every problem found.
func Validate(cfg models.ScheduleLevelConfig) error {
	var problems []string

	if err := validate.Struct(cfg); err != nil {
		var vErr *response.ValidationError
		if !errors.As(err, &vErr) {
			return err
		}
		problems = append(problems, vErr.Problems...)
	}

	start, startErr := ParseClock(cfg.StartTime)
	end, endErr := ParseClock(cfg.EndTime)
	if startErr == nil && endErr == nil && start >= end {
		problems = append(problems, fmt.Sprintf("start time %s must be before end time %s", cfg.StartTime, cfg.EndTime))
	}

	if len(problems) > 0 {
		return &response.ValidationError{Problems: problems}
	}

	return nil
}
