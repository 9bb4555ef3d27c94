package get

import (
	"context"
	"log/slog"
	"net/http"

	"school-schedule/api"
	"school-schedule/pkg/response"
	"school-schedule/pkg/sl"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type TimeSlotGetter interface {
	GetTimeSlots(ctx context.Context, schoolID, level string) (*api.TimeGridResponse, error)
}

type Response struct {
	response.Response
	*api.TimeGridResponse
}

func New(log *slog.Logger, getter TimeSlotGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.time_slots.get.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		schoolID := chi.URLParam(r, "schoolID")
		level := chi.URLParam(r, "level")

		grid, err := getter.GetTimeSlots(r.Context(), schoolID, level)
		if err != nil {
			log.Error("Failed to get time slots", sl.Err(err))
			status, resp := response.FromError(err, "failed to get time slots")
			w.WriteHeader(status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("Time slots generated",
			slog.String("academic_level", grid.AcademicLevel),
			slog.Int("blocks", grid.Blocks),
			slog.Int("slots", len(grid.Slots)),
		)

		render.JSON(w, r, Response{
			TimeGridResponse: grid,
		})
	}
}
