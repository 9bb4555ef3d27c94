package service

import (
	"school-schedule/api"
	"school-schedule/internal/compat"
	"school-schedule/internal/models"
)

func levelConfigFromRequest(schoolID string, level models.AcademicLevel, req *api.LevelConfigRequest) models.ScheduleLevelConfig {
	breaks := make([]models.BreakConfig, 0, len(req.Breaks))
	for _, b := range req.Breaks {
		breaks = append(breaks, models.BreakConfig{
			AfterBlock: b.AfterBlock,
			Duration:   b.Duration,
			Name:       b.Name,
		})
	}

	return models.ScheduleLevelConfig{
		SchoolID:      schoolID,
		AcademicLevel: level,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		BlockDuration: req.BlockDuration,
		Breaks:        breaks,
	}
}

func levelConfigResponse(cfg models.ScheduleLevelConfig) api.LevelConfigResponse {
	breaks := make([]api.Break, 0, len(cfg.Breaks))
	for _, b := range cfg.Breaks {
		breaks = append(breaks, api.Break{
			AfterBlock: b.AfterBlock,
			Duration:   b.Duration,
			Name:       b.Name,
		})
	}

	return api.LevelConfigResponse{
		ID:            cfg.ID,
		SchoolID:      cfg.SchoolID,
		AcademicLevel: string(cfg.AcademicLevel),
		StartTime:     cfg.StartTime,
		EndTime:       cfg.EndTime,
		BlockDuration: cfg.BlockDuration,
		Breaks:        breaks,
		IsDefault:     cfg.IsDefault,
	}
}

func timeGridResponse(cfg models.ScheduleLevelConfig, slots []models.TimeSlot) *api.TimeGridResponse {
	resp := &api.TimeGridResponse{
		AcademicLevel: string(cfg.AcademicLevel),
		StartTime:     cfg.StartTime,
		EndTime:       cfg.EndTime,
		BlockDuration: cfg.BlockDuration,
		Slots:         make([]api.TimeSlot, 0, len(slots)),
	}

	for _, slot := range slots {
		item := api.TimeSlot{
			Time:      slot.Time,
			EndTime:   slot.EndTime,
			Type:      string(slot.Type),
			BreakName: slot.BreakName,
		}
		if slot.Type == models.SlotBlock {
			n := slot.BlockNumber
			item.BlockNumber = &n
			resp.Blocks++
		}
		resp.Slots = append(resp.Slots, item)
	}

	return resp
}

func scheduleResponse(schedule *models.Schedule) *api.ScheduleResponse {
	resp := &api.ScheduleResponse{
		ID:            schedule.ID,
		SchoolID:      schedule.SchoolID,
		CourseID:      schedule.CourseID,
		Name:          schedule.Name,
		AcademicLevel: string(schedule.AcademicLevel),
		IsActive:      schedule.IsActive,
		IsDeprecated:  schedule.IsDeprecated,
		CreatedAt:     schedule.CreatedAt,
		UpdatedAt:     schedule.UpdatedAt,
	}

	if snap := compat.ParseStoredSnapshot(schedule.ConfigSnapshot); snap != nil {
		resp.ConfigSnapshot = &api.ConfigSnapshot{
			StartTime:     snap.StartTime,
			EndTime:       snap.EndTime,
			BlockDuration: snap.BlockDuration,
			AcademicLevel: string(snap.AcademicLevel),
		}
	}

	return resp
}
