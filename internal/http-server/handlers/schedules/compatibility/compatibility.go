package compatibility

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

type CompatibilityChecker interface {
	CheckCompatibility(ctx context.Context, id string) (*api.CompatibilityResponse, error)
}

type Response struct {
	response.Response
	*api.CompatibilityResponse
}

func New(log *slog.Logger, checker CompatibilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedules.compatibility.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		result, err := checker.CheckCompatibility(r.Context(), id)
		if err != nil {
			log.Error("Failed to check compatibility", sl.Err(err))
			status, resp := response.FromError(err, "failed to check compatibility")
			w.WriteHeader(status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("Compatibility checked",
			slog.String("id", id),
			slog.Bool("is_compatible", result.IsCompatible),
			slog.String("recommendation", result.Recommendation),
		)

		render.JSON(w, r, Response{
			CompatibilityResponse: result,
		})
	}
}
