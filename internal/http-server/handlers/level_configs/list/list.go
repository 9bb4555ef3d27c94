package list

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

type LevelConfigLister interface {
	ListLevelConfigs(ctx context.Context, schoolID string) ([]*api.LevelConfigResponse, error)
}

type Response struct {
	response.Response
	Configs []*api.LevelConfigResponse `json:"configs"`
}

func New(log *slog.Logger, lister LevelConfigLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.level_configs.list.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		schoolID := chi.URLParam(r, "schoolID")

		configs, err := lister.ListLevelConfigs(r.Context(), schoolID)
		if err != nil {
			log.Error("Failed to list level configs", sl.Err(err))
			status, resp := response.FromError(err, "failed to list level configs")
			w.WriteHeader(status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("Level configs retrieved", slog.Int("count", len(configs)))

		render.JSON(w, r, Response{
			Configs: configs,
		})
	}
}
