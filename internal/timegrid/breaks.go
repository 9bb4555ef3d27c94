package timegrid

import (
	"encoding/json"
	"fmt"

	"school-schedule/internal/models"
)

// EncodeBreaks serializes breaks into the text blob stored next to a configuration.
func EncodeBreaks(breaks []models.BreakConfig) (string, error) {
	const op = "timegrid.EncodeBreaks"

	if breaks == nil {
		breaks = []models.BreakConfig{}
	}

	b, err := json.Marshal(breaks)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(b), nil
}

// DecodeBreaks reads a stored breaks blob. An empty or unreadable blob is an empty list.
func DecodeBreaks(blob string) []models.BreakConfig {
	if blob == "" {
		return []models.BreakConfig{}
	}

	var breaks []models.BreakConfig
	if err := json.Unmarshal([]byte(blob), &breaks); err != nil || breaks == nil {
		return []models.BreakConfig{}
	}

	return breaks
}
