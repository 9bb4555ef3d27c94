package stats

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

type StatsGetter interface {
	DeprecatedStats(ctx context.Context, schoolID string) (*api.DeprecatedStatsResponse, error)
}

type Response struct {
	response.Response
	*api.DeprecatedStatsResponse
}

func New(log *slog.Logger, getter StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedules.stats.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		stats, err := getter.DeprecatedStats(r.Context(), chi.URLParam(r, "schoolID"))
		if err != nil {
			log.Error("Failed to get deprecated stats", sl.Err(err))
			status, resp := response.FromError(err, "failed to get deprecated stats")
			w.WriteHeader(status)
			render.JSON(w, r, resp)
			return
		}

		render.JSON(w, r, Response{
			DeprecatedStatsResponse: stats,
		})
	}
}
