package deprecate

import (
	"context"
	"log/slog"
	"net/http"

	"school-schedule/pkg/response"
	"school-schedule/pkg/sl"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type LevelDeprecator interface {
	MarkDeprecatedForLevel(ctx context.Context, schoolID, level string) (int, error)
}

type Response struct {
	response.Response
	Deprecated int `json:"deprecated"`
}

func New(log *slog.Logger, deprecator LevelDeprecator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedules.deprecate.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		schoolID := chi.URLParam(r, "schoolID")
		level := chi.URLParam(r, "level")

		n, err := deprecator.MarkDeprecatedForLevel(r.Context(), schoolID, level)
		if err != nil {
			log.Error("Failed to deprecate schedules", sl.Err(err))
			status, resp := response.FromError(err, "failed to deprecate schedules")
			w.WriteHeader(status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("Schedules deprecated",
			slog.String("school_id", schoolID),
			slog.String("academic_level", level),
			slog.Int("count", n),
		)

		render.JSON(w, r, Response{
			Deprecated: n,
		})
	}
}
