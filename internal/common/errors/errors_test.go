package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *RegistryError
		wantCode   ErrorCode
		wantDetail string
	}{
		{
			name:       "activity not found",
			err:        NewActivityNotFound(),
			wantCode:   ErrCodeActivityNotFound,
			wantDetail: "Activity not found",
		},
		{
			name:       "already signed up",
			err:        NewAlreadySignedUp("michael@mergington.edu", "Chess Club"),
			wantCode:   ErrCodeAlreadySignedUp,
			wantDetail: "michael@mergington.edu is already signed up for Chess Club",
		},
		{
			name:       "not registered",
			err:        NewNotRegistered("alex@mergington.edu", "Basketball Team"),
			wantCode:   ErrCodeNotRegistered,
			wantDetail: "alex@mergington.edu is not registered for Basketball Team",
		},
		{
			name:       "missing email",
			err:        NewMissingEmail(),
			wantCode:   ErrCodeMissingEmail,
			wantDetail: "email is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantDetail, tt.err.Message)
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), string(tt.wantCode))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrCodeActivityNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrCodeAlreadySignedUp))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrCodeNotRegistered))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrCodeMissingEmail))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrCodeInternal))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrorCode("UNKNOWN")))
}

type captureLogger struct {
	errorCount int
	warnCount  int
}

func (l *captureLogger) Error(msg string, fields map[string]interface{}) { l.errorCount++ }
func (l *captureLogger) Warn(msg string, fields map[string]interface{})  { l.warnCount++ }

func TestWriteError(t *testing.T) {
	t.Run("registry error", func(t *testing.T) {
		log := &captureLogger{}
		h := NewErrorHandler(log)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil)

		h.WriteError(rec, req, NewAlreadySignedUp("michael@mergington.edu", "Chess Club"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t,
			`{"detail": "michael@mergington.edu is already signed up for Chess Club"}`,
			rec.Body.String(),
		)
		assert.Equal(t, 1, log.warnCount)
		assert.Equal(t, 0, log.errorCount)
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		log := &captureLogger{}
		h := NewErrorHandler(log)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/activities", nil)

		h.WriteError(rec, req, fmt.Errorf("boom"))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail": "Internal server error"}`, rec.Body.String())
		assert.Equal(t, 1, log.errorCount)
	})
}
