package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospitality-backend/internal/services"
)

func TestWriteServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "validation error",
			err:      &services.ValidationError{Field: "status", Reason: "invalid room status: sparkling"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "conflict error",
			err:      &services.ConflictError{Message: "room 101 already exists in this property"},
			wantCode: http.StatusConflict,
		},
		{
			name:     "not found error",
			err:      &services.NotFoundError{Resource: "room"},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "store failure",
			err:      errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Error(), body["error"])
		})
	}
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/rooms?property_id=7", nil)
	assert.Equal(t, 7, queryInt(req, "property_id"))
	assert.Equal(t, 0, queryInt(req, "missing"))

	req = httptest.NewRequest(http.MethodGet, "/api/rooms?property_id=abc", nil)
	assert.Equal(t, 0, queryInt(req, "property_id"))
}
