package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwalters/jobtrack/internal/store"
	"github.com/kwalters/jobtrack/internal/types"
)

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", shortID("1234567890abcdef"))
	assert.Equal(t, "short", shortID("short"))
}

func TestStatusLabel(t *testing.T) {
	job := types.JobApplication{Status: types.StatusOffer}
	assert.Equal(t, "Offer", statusLabel(job))

	job.IsArchived = true
	assert.Equal(t, "Offer (archived)", statusLabel(job))
}

func TestResolveJobID(t *testing.T) {
	st := store.New(store.Options{})
	a := &app{store: st}

	id1, err := st.AddJob(context.Background(), store.AddInput{Title: "A", Description: "d"})
	require.NoError(t, err)
	id2, err := st.AddJob(context.Background(), store.AddInput{Title: "B", Description: "d"})
	require.NoError(t, err)

	resolved, err := resolveJobID(a, id1)
	require.NoError(t, err)
	assert.Equal(t, id1, resolved)

	// UUIDs differ early; an 8-char prefix is unambiguous in practice.
	resolved, err = resolveJobID(a, id2[:8])
	require.NoError(t, err)
	assert.Equal(t, id2, resolved)

	_, err = resolveJobID(a, "")
	assert.Error(t, err)

	_, err = resolveJobID(a, "zzzz")
	assert.Error(t, err)
}

func TestTodoPhase(t *testing.T) {
	todoPost = false
	assert.Equal(t, store.PhasePre, todoPhase())
	todoPost = true
	assert.Equal(t, store.PhasePost, todoPhase())
	todoPost = false
}
