package domain

import (
	"context"
	"errors"
)

// Sentinel errors for registry operations. Services and controllers match on
// these with errors.Is to pick status codes and detail strings.
var (
	ErrNotFound        = errors.New("activity not found")
	ErrAlreadySignedUp = errors.New("student already signed up")
	ErrActivityFull    = errors.New("activity is full")
	ErrNotRegistered   = errors.New("student is not registered for this activity")
	ErrInvalidInput    = errors.New("invalid input")
)

// Activity represents one extracurricular offering. The activity name is the
// registry key and is not repeated inside the record.
// swagger:model Activity
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the number of open spots on the roster.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// HasParticipant reports whether email is on the roster. Emails are compared
// as exact case-sensitive strings.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// ActivityRegistry defines storage operations for activities. Implementations
// must keep the roster invariants (unique emails, len <= max) across
// concurrent calls: the duplicate and capacity checks happen atomically with
// the mutation.
type ActivityRegistry interface {
	// List returns a snapshot of every activity keyed by name. Mutating the
	// result must not affect the registry.
	List(ctx context.Context) (map[string]*Activity, error)
	// Get returns a snapshot of one activity, or ErrNotFound.
	Get(ctx context.Context, name string) (*Activity, error)
	// Add inserts a new activity. There is no HTTP surface for this; it exists
	// for seeding and tests. Returns ErrInvalidInput for empty names,
	// non-positive capacity, duplicate activity names, or rosters that already
	// violate the invariants.
	Add(ctx context.Context, name string, activity *Activity) error
	// SignUp appends email to the activity's roster. Checks run in order:
	// existence (ErrNotFound), duplicate (ErrAlreadySignedUp), capacity
	// (ErrActivityFull).
	SignUp(ctx context.Context, name, email string) error
	// Unregister removes email from the activity's roster. Returns ErrNotFound
	// for unknown activities and ErrNotRegistered when email is absent.
	Unregister(ctx context.Context, name, email string) error
}

// ActivityService defines the application-level operations exposed over HTTP.
// SignUp and Unregister return the confirmation message shown to the student.
type ActivityService interface {
	ListActivities(ctx context.Context) (map[string]*Activity, error)
	SignUp(ctx context.Context, activityName, email string) (string, error)
	Unregister(ctx context.Context, activityName, email string) (string, error)
}
