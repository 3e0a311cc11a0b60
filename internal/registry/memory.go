// Package registry holds the in-memory activity registry. It is the only
// store in the service: activities live for the process lifetime and are
// seeded at startup.
package registry

import (
	"context"
	"fmt"
	"sync"

	"mergington-activities/internal/domain"
)

// InMemoryRegistry stores activities in a map guarded by a RWMutex. Every
// check-then-act sequence (duplicate and capacity checks before a signup,
// membership check before an unregister) runs under one write lock, so the
// roster invariants hold under concurrent requests.
type InMemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewInMemoryRegistry returns an empty registry.
func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{
		activities: make(map[string]*domain.Activity),
	}
}

// NewSeededRegistry returns a registry populated with the school's initial
// activity set.
func NewSeededRegistry() *InMemoryRegistry {
	r := NewInMemoryRegistry()
	ctx := context.Background()
	seed := []struct {
		name     string
		activity *domain.Activity
	}{
		{"Chess Club", &domain.Activity{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		}},
		{"Programming Class", &domain.Activity{
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		}},
		{"Gym Class", &domain.Activity{
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		}},
	}
	for _, s := range seed {
		if err := r.Add(ctx, s.name, s.activity); err != nil {
			// Seed data is static and validated by tests; this cannot happen at runtime.
			panic(fmt.Sprintf("seed activity %q: %v", s.name, err))
		}
	}
	return r
}

// List implements domain.ActivityRegistry. The result is a deep copy.
func (r *InMemoryRegistry) List(ctx context.Context) (map[string]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*domain.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = copyActivity(a)
	}
	return out, nil
}

// Get implements domain.ActivityRegistry. The result is a deep copy.
func (r *InMemoryRegistry) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyActivity(a), nil
}

// Add implements domain.ActivityRegistry. Capacity must be positive and the
// initial roster must already satisfy the invariants.
func (r *InMemoryRegistry) Add(ctx context.Context, name string, activity *domain.Activity) error {
	if name == "" {
		return fmt.Errorf("%w: activity name is empty", domain.ErrInvalidInput)
	}
	if activity == nil {
		return fmt.Errorf("%w: activity is nil", domain.ErrInvalidInput)
	}
	if activity.MaxParticipants <= 0 {
		return fmt.Errorf("%w: max_participants must be positive", domain.ErrInvalidInput)
	}
	if len(activity.Participants) > activity.MaxParticipants {
		return fmt.Errorf("%w: roster exceeds max_participants", domain.ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(activity.Participants))
	for _, email := range activity.Participants {
		if _, dup := seen[email]; dup {
			return fmt.Errorf("%w: duplicate participant %s", domain.ErrInvalidInput, email)
		}
		seen[email] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.activities[name]; exists {
		return fmt.Errorf("%w: activity %q already exists", domain.ErrInvalidInput, name)
	}
	r.activities[name] = copyActivity(activity)
	return nil
}

// SignUp implements domain.ActivityRegistry. Check order: existence,
// duplicate, capacity. Nothing is mutated on failure.
func (r *InMemoryRegistry) SignUp(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrNotFound
	}
	if a.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}
	if a.SpotsLeft() <= 0 {
		return domain.ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister implements domain.ActivityRegistry. The order of the remaining
// participants is preserved.
func (r *InMemoryRegistry) Unregister(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotRegistered
}

func copyActivity(a *domain.Activity) *domain.Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	return &domain.Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}
