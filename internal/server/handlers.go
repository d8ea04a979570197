package server

import (
	"fmt"
	"net/http"
	"time"

	errs "activity-registry/internal/common/errors"
	"activity-registry/internal/common/metrics"
	"activity-registry/internal/events"
	"activity-registry/internal/registry"
)

// handleRoot redirects the bare root to the static landing page.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// handleListActivities returns every activity keyed by name.
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	snapshot := s.registry.Snapshot()

	out := make(map[string]registry.Activity, len(snapshot))
	for _, a := range snapshot {
		out[a.Name] = a
	}

	s.writeJSON(w, http.StatusOK, out)
}

// handleSignup adds a student to an activity roster.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activity")
	email := r.URL.Query().Get("email")

	if email == "" {
		metrics.RegistryOperationFailures.WithLabelValues("signup", string(errs.ErrCodeMissingEmail)).Inc()
		s.errHandler.WriteError(w, r, errs.NewMissingEmail())
		return
	}

	if err := s.registry.Signup(activityName, email); err != nil {
		if regErr, ok := err.(*errs.RegistryError); ok {
			metrics.RegistryOperationFailures.WithLabelValues("signup", string(regErr.Code)).Inc()
		}
		s.errHandler.WriteError(w, r, err)
		return
	}

	metrics.ActivitySignups.WithLabelValues(activityName).Inc()
	s.publishEvent(r, events.EventTypeSignup, activityName, email)

	s.logger.Info("Student signed up", map[string]interface{}{
		"activity": activityName,
		"email":    email,
	})

	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

// handleUnregister removes a student from an activity roster.
func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activity")
	email := r.URL.Query().Get("email")

	if email == "" {
		metrics.RegistryOperationFailures.WithLabelValues("unregister", string(errs.ErrCodeMissingEmail)).Inc()
		s.errHandler.WriteError(w, r, errs.NewMissingEmail())
		return
	}

	if err := s.registry.Unregister(activityName, email); err != nil {
		if regErr, ok := err.(*errs.RegistryError); ok {
			metrics.RegistryOperationFailures.WithLabelValues("unregister", string(regErr.Code)).Inc()
		}
		s.errHandler.WriteError(w, r, err)
		return
	}

	metrics.ActivityUnregisters.WithLabelValues(activityName).Inc()
	s.publishEvent(r, events.EventTypeUnregister, activityName, email)

	s.logger.Info("Student unregistered", map[string]interface{}{
		"activity": activityName,
		"email":    email,
	})

	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Unregistered %s from %s", email, activityName),
	})
}

// publishEvent emits a roster event after the mutation has committed.
// Failures are logged and never surfaced to the caller.
func (s *Server) publishEvent(r *http.Request, eventType, activityName, email string) {
	err := s.publisher.Publish(r.Context(), events.RosterEvent{
		Type:      eventType,
		Activity:  activityName,
		Email:     email,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("Failed to publish roster event", map[string]interface{}{
			"type":     eventType,
			"activity": activityName,
			"error":    err.Error(),
		})
	}
}
