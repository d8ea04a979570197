// Package registry holds the in-memory activity registry, the single
// source of truth for rosters during the process lifetime.
package registry

import (
	"fmt"
	"sync"

	errs "activity-registry/internal/common/errors"
)

// Activity is one extracurricular offering with its roster. Participants
// are kept in signup order; MaxParticipants is informational and never
// enforced on signup.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Registry maps activity names to records. All access goes through the
// registry-wide lock; critical sections are short and never perform I/O.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
	names      []string // insertion order
}

// New constructs a registry seeded with the given activities.
func New(seed []Activity) (*Registry, error) {
	r := &Registry{
		activities: make(map[string]*Activity, len(seed)),
	}

	for _, a := range seed {
		if a.Name == "" {
			return nil, fmt.Errorf("activity name cannot be empty")
		}
		if _, exists := r.activities[a.Name]; exists {
			return nil, fmt.Errorf("activity %q already registered", a.Name)
		}

		record := a
		record.Participants = append([]string{}, a.Participants...)

		r.activities[a.Name] = &record
		r.names = append(r.names, a.Name)
	}

	return r, nil
}

// Snapshot returns deep copies of all activities in seed order. Callers
// may mutate the result freely.
func (r *Registry) Snapshot() []Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Activity, 0, len(r.names))
	for _, name := range r.names {
		a := r.activities[name]
		copied := *a
		copied.Participants = append([]string{}, a.Participants...)
		out = append(out, copied)
	}
	return out
}

// Get returns a deep copy of a single activity.
func (r *Registry) Get(name string) (Activity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return Activity{}, false
	}
	copied := *a
	copied.Participants = append([]string{}, a.Participants...)
	return copied, true
}

// Signup appends email to the activity's roster. It fails if the
// activity does not exist or the email is already on the roster.
func (r *Registry) Signup(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return errs.NewActivityNotFound()
	}

	for _, p := range a.Participants {
		if p == email {
			return errs.NewAlreadySignedUp(email, activityName)
		}
	}

	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the activity's roster. It fails if the
// activity does not exist or the email is not on the roster.
func (r *Registry) Unregister(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return errs.NewActivityNotFound()
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}

	return errs.NewNotRegistered(email, activityName)
}

// Len reports the number of registered activities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}
