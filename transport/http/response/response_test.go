package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"marquee/shared/failure"
	"marquee/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody map[string]any
	}{
		{
			name:     "validation failure carries its fields",
			err:      failure.ValidationFailed(map[string]string{"state": "state must be a valid US state code"}),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: map[string]any{
				"error":  "validation failed",
				"kind":   "ValidationFailed",
				"fields": map[string]any{"state": "state must be a valid US state code"},
			},
		},
		{
			name:     "not found",
			err:      failure.NotFound("venue not found"),
			wantCode: http.StatusNotFound,
			wantBody: map[string]any{"error": "venue not found", "kind": "NotFound"},
		},
		{
			name:     "wrapped failure keeps its kind",
			err:      fmt.Errorf("failed to book show: %w", failure.NotAvailable("artist is not seeking a venue")),
			wantCode: http.StatusConflict,
			wantBody: map[string]any{"error": "artist is not seeking a venue", "kind": "NotAvailable"},
		},
		{
			name:     "plain errors are hidden",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]any{"error": "internal server error", "kind": "StorageFailure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			body := map[string]any{}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, map[string]any{"question": nil})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"question":null}}`, recorder.Body.String())
}
