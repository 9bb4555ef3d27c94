package timegrid

import (
	"log/slog"

	"school-schedule/internal/models"
)

// maxBlocks bounds generation for configurations that slipped past validation.
const maxBlocks = 20

type breakInfo struct {
	duration int
	name     string
}

// GenerateTimeSlots lays out the blocks and breaks of one school day.
//
// Blocks are emitted while a whole block still fits before the end time. A
// break configured after block N follows that block only when another whole
// block still fits after the break, so a day never ends on a break.
func GenerateTimeSlots(cfg models.ScheduleLevelConfig) []models.TimeSlot {
	const op = "timegrid.GenerateTimeSlots"

	if cfg.BlockDuration <= 0 {
		slog.Default().Warn("non-positive block duration, no slots generated",
			slog.String("op", op),
			slog.Int("block_duration", cfg.BlockDuration),
		)
		return nil
	}

	// duplicate afterBlock entries: the last one wins
	breaks := make(map[int]breakInfo, len(cfg.Breaks))
	for _, b := range cfg.Breaks {
		breaks[b.AfterBlock] = breakInfo{duration: b.Duration, name: b.Name}
	}

	current := TimeToMinutes(cfg.StartTime)
	end := TimeToMinutes(cfg.EndTime)

	slots := make([]models.TimeSlot, 0, BlockCount(cfg.StartTime, cfg.EndTime, cfg.BlockDuration)+len(breaks))

	for blockNumber := 1; current+cfg.BlockDuration <= end; blockNumber++ {
		if blockNumber > maxBlocks {
			slog.Default().Warn("block limit reached, stopping generation",
				slog.String("op", op),
				slog.Int("max_blocks", maxBlocks),
				slog.String("school_id", cfg.SchoolID),
				slog.String("academic_level", string(cfg.AcademicLevel)),
			)
			break
		}

		slots = append(slots, models.TimeSlot{
			Time:        MinutesToTime(current),
			EndTime:     MinutesToTime(current + cfg.BlockDuration),
			Type:        models.SlotBlock,
			BlockNumber: blockNumber,
		})
		current += cfg.BlockDuration

		if b, ok := breaks[blockNumber]; ok && current+b.duration+cfg.BlockDuration <= end {
			slots = append(slots, models.TimeSlot{
				Time:      MinutesToTime(current),
				EndTime:   MinutesToTime(current + b.duration),
				Type:      models.SlotBreak,
				BreakName: b.name,
			})
			current += b.duration
		}
	}

	return slots
}

// BlockCount is the number of whole blocks between start and end, ignoring breaks.
func BlockCount(start, end string, blockDuration int) int {
	if blockDuration <= 0 {
		return 0
	}

	span := TimeToMinutes(end) - TimeToMinutes(start)
	if span <= 0 {
		return 0
	}

	return span / blockDuration
}

// IsBlockInRange reports whether blockNumber is within 1..BlockCount.
func IsBlockInRange(blockNumber int, start, end string, blockDuration int) bool {
	return blockNumber >= 1 && blockNumber <= BlockCount(start, end, blockDuration)
}
