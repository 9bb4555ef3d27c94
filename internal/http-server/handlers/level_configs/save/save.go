package save

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

type LevelConfigSaver interface {
	SaveLevelConfig(ctx context.Context, schoolID, level string, req *api.LevelConfigRequest) (*api.SaveLevelConfigResponse, error)
}

type Request struct {
	api.LevelConfigRequest
}

type Response struct {
	response.Response
	*api.SaveLevelConfigResponse
}

func New(log *slog.Logger, saver LevelConfigSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.level_configs.save.New"

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

		schoolID := chi.URLParam(r, "schoolID")
		level := chi.URLParam(r, "level")

		saved, err := saver.SaveLevelConfig(r.Context(), schoolID, level, &req.LevelConfigRequest)
		if err != nil {
			log.Error("Failed to save level config", sl.Err(err))
			status, resp := response.FromError(err, "failed to save level config")
			w.WriteHeader(status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("Level config saved",
			slog.String("school_id", schoolID),
			slog.String("academic_level", saved.Config.AcademicLevel),
			slog.Bool("critical_change", saved.CriticalChange),
		)

		render.JSON(w, r, Response{
			SaveLevelConfigResponse: saved,
		})
	}
}
