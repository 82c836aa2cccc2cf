package session

import (
	"context"
	"testing"
	"time"

	"talentscout-backend/internal/mcq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	run := &Run{
		Token:       "tok-1",
		CandidateID: 42,
		Questions:   mcq.Fallback(),
		Index:       2,
		State:       StateInProgress,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, store.Save(ctx, run))

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, uint(42), got.CandidateID)
	assert.Equal(t, 2, got.Index)
	assert.Len(t, got.Questions, 5)

	// Mutations are invisible until saved again.
	got.Index = 4
	again, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Index)

	require.NoError(t, store.Delete(ctx, "tok-1"))
	_, err = store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreMissingToken(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunCurrent(t *testing.T) {
	questions := mcq.Fallback()

	tests := []struct {
		name string
		run  Run
		ok   bool
	}{
		{"first question", Run{Questions: questions, Index: 0, State: StateInProgress}, true},
		{"last question", Run{Questions: questions, Index: 4, State: StateInProgress}, true},
		{"past the end", Run{Questions: questions, Index: 5, State: StateInProgress}, false},
		{"completed", Run{Questions: questions, Index: 5, State: StateCompleted}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := tt.run.Current()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.NoError(t, q.Validate())
			}
		})
	}
}
