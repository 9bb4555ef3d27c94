package create

import (
	"context"
	"log/slog"
	"net/http"

	"school-schedule/api"
	"school-schedule/pkg/response"
	"school-schedule/pkg/sl"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type ScheduleCreator interface {
	CreateSchedule(ctx context.Context, req *api.ScheduleRequest) (*api.ScheduleResponse, error)
}

type Request struct {
	api.ScheduleRequest
}

type Response struct {
	response.Response
	Schedule *api.ScheduleResponse `json:"schedule,omitempty"`
}

func New(log *slog.Logger, creator ScheduleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedules.create.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		log.Info("Request body decoded", slog.Any("request", req))

		schedule, err := creator.CreateSchedule(r.Context(), &req.ScheduleRequest)
		if err != nil {
			log.Error("Failed to create schedule", sl.Err(err))
			status, resp := response.FromError(err, "failed to create schedule")
			w.WriteHeader(status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("Schedule created", slog.String("id", schedule.ID))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{
			Schedule: schedule,
		})
	}
}
