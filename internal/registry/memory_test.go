package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-activities/internal/domain"
)

func TestNewSeededRegistry(t *testing.T) {
	r := NewSeededRegistry()
	ctx := context.Background()

	activities, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 3)

	chess, ok := activities["Chess Club"]
	require.True(t, ok)
	assert.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	assert.Contains(t, activities, "Programming Class")
	assert.Contains(t, activities, "Gym Class")
}

func TestAdd_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		actName  string
		activity *domain.Activity
	}{
		{"empty name", "", &domain.Activity{MaxParticipants: 5}},
		{"nil activity", "Drama Club", nil},
		{"zero capacity", "Drama Club", &domain.Activity{MaxParticipants: 0}},
		{"negative capacity", "Drama Club", &domain.Activity{MaxParticipants: -1}},
		{"roster over capacity", "Drama Club", &domain.Activity{
			MaxParticipants: 1,
			Participants:    []string{"a@mergington.edu", "b@mergington.edu"},
		}},
		{"duplicate participant", "Drama Club", &domain.Activity{
			MaxParticipants: 5,
			Participants:    []string{"a@mergington.edu", "a@mergington.edu"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewInMemoryRegistry()
			err := r.Add(ctx, tt.actName, tt.activity)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAdd_DuplicateName(t *testing.T) {
	r := NewInMemoryRegistry()
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "Drama Club", &domain.Activity{MaxParticipants: 5}))
	err := r.Add(ctx, "Drama Club", &domain.Activity{MaxParticipants: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_NotFound(t *testing.T) {
	r := NewSeededRegistry()
	_, err := r.Get(context.Background(), "NonExistentActivity")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_ReturnsDeepCopy(t *testing.T) {
	r := NewSeededRegistry()
	ctx := context.Background()

	first, err := r.List(ctx)
	require.NoError(t, err)
	first["Chess Club"].Participants[0] = "tampered@mergington.edu"
	first["Chess Club"].MaxParticipants = 1
	delete(first, "Gym Class")

	second, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "michael@mergington.edu", second["Chess Club"].Participants[0])
	assert.Equal(t, 12, second["Chess Club"].MaxParticipants)
	assert.Contains(t, second, "Gym Class")
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown activity", func(t *testing.T) {
		r := NewSeededRegistry()
		err := r.SignUp(ctx, "NonExistentActivity", "test@mergington.edu")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("appends in signup order", func(t *testing.T) {
		r := NewSeededRegistry()
		require.NoError(t, r.SignUp(ctx, "Chess Club", "alice@mergington.edu"))
		require.NoError(t, r.SignUp(ctx, "Chess Club", "bob@mergington.edu"))

		a, err := r.Get(ctx, "Chess Club")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"michael@mergington.edu",
			"daniel@mergington.edu",
			"alice@mergington.edu",
			"bob@mergington.edu",
		}, a.Participants)
	})

	t.Run("duplicate signup does not mutate", func(t *testing.T) {
		r := NewSeededRegistry()
		err := r.SignUp(ctx, "Chess Club", "michael@mergington.edu")
		assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)

		a, _ := r.Get(ctx, "Chess Club")
		assert.Len(t, a.Participants, 2)
	})

	t.Run("fill to capacity then reject", func(t *testing.T) {
		r := NewSeededRegistry()
		require.NoError(t, r.Add(ctx, "Test Activity", &domain.Activity{
			Description:     "Test",
			Schedule:        "Test",
			MaxParticipants: 3,
			Participants:    []string{"user1@mergington.edu", "user2@mergington.edu"},
		}))

		require.NoError(t, r.SignUp(ctx, "Test Activity", "user3@mergington.edu"))

		err := r.SignUp(ctx, "Test Activity", "user4@mergington.edu")
		assert.ErrorIs(t, err, domain.ErrActivityFull)

		a, _ := r.Get(ctx, "Test Activity")
		assert.Len(t, a.Participants, 3)
	})

	t.Run("duplicate check precedes capacity check", func(t *testing.T) {
		r := NewInMemoryRegistry()
		require.NoError(t, r.Add(ctx, "Small Club", &domain.Activity{
			MaxParticipants: 2,
			Participants:    []string{"user1@mergington.edu", "user2@mergington.edu"},
		}))

		// Already-registered student on a full activity gets the duplicate error.
		err := r.SignUp(ctx, "Small Club", "user1@mergington.edu")
		assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)
	})
}

func TestUnregister(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown activity", func(t *testing.T) {
		r := NewSeededRegistry()
		err := r.Unregister(ctx, "NonExistentActivity", "test@mergington.edu")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("not registered", func(t *testing.T) {
		r := NewSeededRegistry()
		err := r.Unregister(ctx, "Chess Club", "notregistered@mergington.edu")
		assert.ErrorIs(t, err, domain.ErrNotRegistered)
	})

	t.Run("removes and preserves order of the rest", func(t *testing.T) {
		r := NewSeededRegistry()
		require.NoError(t, r.Unregister(ctx, "Chess Club", "michael@mergington.edu"))

		a, err := r.Get(ctx, "Chess Club")
		require.NoError(t, err)
		assert.Equal(t, []string{"daniel@mergington.edu"}, a.Participants)
	})

	t.Run("unregister then re-signup round trip", func(t *testing.T) {
		r := NewSeededRegistry()
		require.NoError(t, r.Unregister(ctx, "Chess Club", "michael@mergington.edu"))
		require.NoError(t, r.SignUp(ctx, "Chess Club", "michael@mergington.edu"))

		a, _ := r.Get(ctx, "Chess Club")
		count := 0
		for _, p := range a.Participants {
			if p == "michael@mergington.edu" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestSignUp_ConcurrentSameEmail(t *testing.T) {
	r := NewSeededRegistry()
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = r.SignUp(ctx, "Gym Class", "race@mergington.edu")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)
		}
	}
	assert.Equal(t, 1, successes)

	a, _ := r.Get(ctx, "Gym Class")
	count := 0
	for _, p := range a.Participants {
		if p == "race@mergington.edu" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSignUp_ConcurrentCapacity(t *testing.T) {
	r := NewInMemoryRegistry()
	ctx := context.Background()
	require.NoError(t, r.Add(ctx, "Tiny Club", &domain.Activity{MaxParticipants: 5}))

	const workers = 40
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = r.SignUp(ctx, "Tiny Club", fmt.Sprintf("student%d@mergington.edu", i))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, domain.ErrActivityFull)
		}
	}
	assert.Equal(t, 5, successes)

	a, _ := r.Get(ctx, "Tiny Club")
	assert.Len(t, a.Participants, 5)
}
