// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorHandler writes registry errors to HTTP responses with standardized
// error handling.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// WriteError normalizes err, logs it, and writes the {"detail": ...}
// failure body with the mapped status code.
func (h *ErrorHandler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	regErr := h.normalizeError(err)
	status := HTTPStatus(regErr.Code)

	fields := map[string]interface{}{
		"code":   string(regErr.Code),
		"status": status,
		"path":   r.URL.Path,
		"method": r.Method,
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields)
	} else {
		h.logger.Warn("request rejected", fields)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": regErr.Message})
}

// normalizeError ensures we always have a RegistryError
func (h *ErrorHandler) normalizeError(err error) *RegistryError {
	if regErr, ok := err.(*RegistryError); ok {
		return regErr
	}
	return &RegistryError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Timestamp: time.Now().UTC(),
	}
}
