package check

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"school-schedule/api"
	"school-schedule/pkg/response"
	"school-schedule/pkg/sl"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BlockChecker interface {
	CheckBlock(ctx context.Context, schoolID, level string, blockNumber int) (*api.BlockCheckResponse, error)
}

type Response struct {
	response.Response
	*api.BlockCheckResponse
}

func New(log *slog.Logger, checker BlockChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.time_slots.check.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		block, err := strconv.Atoi(chi.URLParam(r, "block"))
		if err != nil {
			log.Error("Invalid block number", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "block must be an integer"))
			return
		}

		result, err := checker.CheckBlock(r.Context(), chi.URLParam(r, "schoolID"), chi.URLParam(r, "level"), block)
		if err != nil {
			log.Error("Failed to check block", sl.Err(err))
			status, resp := response.FromError(err, "failed to check block")
			w.WriteHeader(status)
			render.JSON(w, r, resp)
			return
		}

		render.JSON(w, r, Response{
			BlockCheckResponse: result,
		})
	}
}
