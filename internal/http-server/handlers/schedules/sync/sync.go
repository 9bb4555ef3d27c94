package sync

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

type SnapshotUpdater interface {
	UpdateScheduleSnapshot(ctx context.Context, id string) (*api.ScheduleResponse, error)
}

type Response struct {
	response.Response
	Schedule *api.ScheduleResponse `json:"schedule,omitempty"`
}

func New(log *slog.Logger, updater SnapshotUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedules.sync.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		schedule, err := updater.UpdateScheduleSnapshot(r.Context(), id)
		if err != nil {
			log.Error("Failed to sync schedule", sl.Err(err))
			status, resp := response.FromError(err, "failed to sync schedule")
			w.WriteHeader(status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("Schedule snapshot updated", slog.String("id", id), slog.Bool("is_deprecated", schedule.IsDeprecated))

		render.JSON(w, r, Response{
			Schedule: schedule,
		})
	}
}
