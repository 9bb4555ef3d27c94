package preview

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

type TimeSlotPreviewer interface {
	PreviewTimeSlots(ctx context.Context, req *api.LevelConfigRequest) (*api.TimeGridResponse, error)
}

type Request struct {
	api.LevelConfigRequest
}

type Response struct {
	response.Response
	*api.TimeGridResponse
}

func New(log *slog.Logger, previewer TimeSlotPreviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.time_slots.preview.New"

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

		grid, err := previewer.PreviewTimeSlots(r.Context(), &req.LevelConfigRequest)
		if err != nil {
			log.Error("Failed to preview time slots", sl.Err(err))
			status, resp := response.FromError(err, "failed to preview time slots")
			w.WriteHeader(status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("Time slots previewed", slog.Int("slots", len(grid.Slots)))

		render.JSON(w, r, Response{
			TimeGridResponse: grid,
		})
	}
}
