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

type LevelConfigGetter interface {
	GetLevelConfig(ctx context.Context, schoolID, level string) (*api.LevelConfigResponse, error)
}

type Response struct {
	response.Response
	Config *api.LevelConfigResponse `json:"config,omitempty"`
}

func New(log *slog.Logger, getter LevelConfigGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.level_configs.get.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		schoolID := chi.URLParam(r, "schoolID")
		level := chi.URLParam(r, "level")

		cfg, err := getter.GetLevelConfig(r.Context(), schoolID, level)
		if err != nil {
			log.Error("Failed to get level config", sl.Err(err))
			status, resp := response.FromError(err, "failed to get level config")
			w.WriteHeader(status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("Level config retrieved",
			slog.String("school_id", schoolID),
			slog.String("academic_level", cfg.AcademicLevel),
			slog.Bool("is_default", cfg.IsDefault),
		)

		render.JSON(w, r, Response{
			Config: cfg,
		})
	}
}
