package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwalters/jobtrack/internal/types"
)

func addInterview(t *testing.T, s *Store, jobID, stage string) string {
	t.Helper()
	id, err := s.AddInterview(jobID, InterviewInput{Stage: stage, Mode: types.ModeRemote})
	require.NoError(t, err)
	return id
}

func TestAddInterview_AttachesRoundAndBumpsParent(t *testing.T) {
	env := newTestStore(t, Options{})
	jobID := mustAdd(t, env.store, "Backend Engineer")
	before, _ := env.store.Job(jobID)

	ivID, err := env.store.AddInterview(jobID, InterviewInput{
		Stage:       "Phone Screen",
		Interviewer: "Sam",
		Date:        "2026-09-01T15:00:00Z",
		Mode:        types.ModeRemote,
		Link:        "https://meet.example.com/x",
	})
	require.NoError(t, err)

	job, _ := env.store.Job(jobID)
	require.Len(t, job.Interviews, 1)
	assert.Equal(t, ivID, job.Interviews[0].ID)
	assert.Equal(t, "Phone Screen", job.Interviews[0].Stage)
	assert.Greater(t, job.DateModified, before.DateModified)
}

func TestAddInterview_RequiresStage(t *testing.T) {
	env := newTestStore(t, Options{})
	jobID := mustAdd(t, env.store, "Backend Engineer")
	_, err := env.store.AddInterview(jobID, InterviewInput{})
	assert.Error(t, err)
}

func TestAddInterview_ArchivedParentRejected(t *testing.T) {
	env := newTestStore(t, Options{})
	jobID := mustAdd(t, env.store, "Backend Engineer")
	env.store.ArchiveJob(jobID)

	_, err := env.store.AddInterview(jobID, InterviewInput{Stage: "Onsite"})
	assert.ErrorIs(t, err, ErrArchived)
}

func TestUpdateInterview_KeepsTodosAndID(t *testing.T) {
	env := newTestStore(t, Options{})
	jobID := mustAdd(t, env.store, "Backend Engineer")
	ivID := addInterview(t, env.store, jobID, "Phone Screen")
	_, err := env.store.AddTodo(jobID, ivID, PhasePre, "Review notes")
	require.NoError(t, err)

	require.NoError(t, env.store.UpdateInterview(jobID, ivID, InterviewInput{
		Stage: "Onsite", Mode: types.ModeInPerson,
	}))

	job, _ := env.store.Job(jobID)
	require.Len(t, job.Interviews, 1)
	assert.Equal(t, ivID, job.Interviews[0].ID)
	assert.Equal(t, "Onsite", job.Interviews[0].Stage)
	assert.Equal(t, types.ModeInPerson, job.Interviews[0].Mode)
	assert.Len(t, job.Interviews[0].PreTodos, 1)
}

func TestRemoveInterview_DropsRoundAndChecklists(t *testing.T) {
	env := newTestStore(t, Options{})
	jobID := mustAdd(t, env.store, "Backend Engineer")
	keep := addInterview(t, env.store, jobID, "Phone Screen")
	drop := addInterview(t, env.store, jobID, "Onsite")

	require.NoError(t, env.store.RemoveInterview(jobID, drop))

	job, _ := env.store.Job(jobID)
	require.Len(t, job.Interviews, 1)
	assert.Equal(t, keep, job.Interviews[0].ID)

	assert.Error(t, env.store.RemoveInterview(jobID, drop))
}

func TestSetReminders_FlagOnly(t *testing.T) {
	env := newTestStore(t, Options{})
	jobID := mustAdd(t, env.store, "Backend Engineer")
	ivID := addInterview(t, env.store, jobID, "Phone Screen")

	require.NoError(t, env.store.SetReminders(jobID, ivID, true))
	job, _ := env.store.Job(jobID)
	assert.True(t, job.Interviews[0].RemindersSet)
}

func TestAddToggleTodo_BothPhases(t *testing.T) {
	env := newTestStore(t, Options{})
	jobID := mustAdd(t, env.store, "Backend Engineer")
	ivID := addInterview(t, env.store, jobID, "Phone Screen")

	preID, err := env.store.AddTodo(jobID, ivID, PhasePre, "Review system design notes")
	require.NoError(t, err)
	postID, err := env.store.AddTodo(jobID, ivID, PhasePost, "Send thank-you note")
	require.NoError(t, err)

	require.NoError(t, env.store.ToggleTodo(jobID, ivID, PhasePre, preID))
	require.NoError(t, env.store.ToggleTodo(jobID, ivID, PhasePost, postID))
	require.NoError(t, env.store.ToggleTodo(jobID, ivID, PhasePost, postID))

	job, _ := env.store.Job(jobID)
	require.Len(t, job.Interviews[0].PreTodos, 1)
	require.Len(t, job.Interviews[0].PostTodos, 1)
	assert.True(t, job.Interviews[0].PreTodos[0].Completed)
	// Toggled twice, back to incomplete.
	assert.False(t, job.Interviews[0].PostTodos[0].Completed)
}

func TestAddTodo_Validation(t *testing.T) {
	env := newTestStore(t, Options{})
	jobID := mustAdd(t, env.store, "Backend Engineer")
	ivID := addInterview(t, env.store, jobID, "Phone Screen")

	_, err := env.store.AddTodo(jobID, ivID, PhasePre, "")
	assert.Error(t, err)

	_, err = env.store.AddTodo(jobID, ivID, TodoPhase("during"), "x")
	assert.Error(t, err)

	assert.Error(t, env.store.ToggleTodo(jobID, ivID, PhasePre, "missing"))
}

func TestNestedMutations_ArchivedParentRejected(t *testing.T) {
	env := newTestStore(t, Options{})
	jobID := mustAdd(t, env.store, "Backend Engineer")
	ivID := addInterview(t, env.store, jobID, "Phone Screen")
	todoID, err := env.store.AddTodo(jobID, ivID, PhasePre, "Prep")
	require.NoError(t, err)

	env.store.ArchiveJob(jobID)

	assert.ErrorIs(t, env.store.UpdateInterview(jobID, ivID, InterviewInput{Stage: "Onsite"}), ErrArchived)
	assert.ErrorIs(t, env.store.RemoveInterview(jobID, ivID), ErrArchived)
	assert.ErrorIs(t, env.store.SetReminders(jobID, ivID, true), ErrArchived)
	_, err = env.store.AddTodo(jobID, ivID, PhasePre, "x")
	assert.ErrorIs(t, err, ErrArchived)
	assert.ErrorIs(t, env.store.ToggleTodo(jobID, ivID, PhasePre, todoID), ErrArchived)
}

func TestAgenda_SortedByDateActiveOnly(t *testing.T) {
	env := newTestStore(t, Options{})
	late := mustAdd(t, env.store, "Late Role")
	early := mustAdd(t, env.store, "Early Role")
	hidden := mustAdd(t, env.store, "Hidden Role")
	undated := mustAdd(t, env.store, "Undated Role")

	_, err := env.store.AddInterview(late, InterviewInput{Stage: "Onsite", Date: "2026-09-20T09:00:00Z"})
	require.NoError(t, err)
	_, err = env.store.AddInterview(early, InterviewInput{Stage: "Phone Screen", Date: "2026-09-05T09:00:00Z"})
	require.NoError(t, err)
	_, err = env.store.AddInterview(hidden, InterviewInput{Stage: "Onsite", Date: "2026-09-01T09:00:00Z"})
	require.NoError(t, err)
	_, err = env.store.AddInterview(undated, InterviewInput{Stage: "Follow-up"})
	require.NoError(t, err)

	env.store.ArchiveJob(hidden)

	agenda := env.store.Agenda()
	require.Len(t, agenda, 3)
	assert.Equal(t, early, agenda[0].JobID)
	assert.Equal(t, late, agenda[1].JobID)
	assert.Equal(t, undated, agenda[2].JobID)
}
