package check

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"school-schedule/api"

	"github.com/go-chi/chi/v5"
)

type stubChecker struct{}

func (stubChecker) CheckBlock(_ context.Context, _, _ string, blockNumber int) (*api.BlockCheckResponse, error) {
	return &api.BlockCheckResponse{
		BlockNumber: blockNumber,
		InRange:     blockNumber >= 1 && blockNumber <= 12,
		MaxBlocks:   12,
	}, nil
}

func TestCheck(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	router.Get("/schools/{schoolID}/levels/{level}/blocks/{block}", New(log, stubChecker{}))

	tests := []struct {
		path        string
		wantStatus  int
		wantInRange bool
	}{
		{path: "/schools/s1/levels/BASIC/blocks/5", wantStatus: http.StatusOK, wantInRange: true},
		{path: "/schools/s1/levels/BASIC/blocks/13", wantStatus: http.StatusOK, wantInRange: false},
		{path: "/schools/s1/levels/BASIC/blocks/five", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body api.BlockCheckResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body.InRange != tt.wantInRange || body.MaxBlocks != 12 {
				t.Errorf("body = %+v", body)
			}
		})
	}
}
