package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwalters/jobtrack/internal/confirm"
	"github.com/kwalters/jobtrack/internal/types"
)

func TestAddJob_CreatesAppliedWithPlaceholders(t *testing.T) {
	env := newTestStore(t, Options{})
	id, err := env.store.AddJob(context.Background(), AddInput{
		Title:       "Backend Engineer",
		Description: "Build Go services",
		URL:         "https://example.com/jobs/1",
	})
	require.NoError(t, err)

	job, ok := env.store.Job(id)
	require.True(t, ok)
	assert.Equal(t, types.StatusApplied, job.Status)
	assert.Equal(t, PlaceholderPending, job.Company)
	assert.Equal(t, PlaceholderPending, job.SalaryRange)
	assert.Equal(t, job.DateAdded, job.DateModified)
	assert.Equal(t, "https://example.com/jobs/1", job.Link)
}

func TestAddJob_RejectsMissingFields(t *testing.T) {
	env := newTestStore(t, Options{})

	_, err := env.store.AddJob(context.Background(), AddInput{Description: "no title"})
	assert.Error(t, err)

	_, err = env.store.AddJob(context.Background(), AddInput{Title: "no description"})
	assert.Error(t, err)

	_, err = env.store.AddJob(context.Background(), AddInput{
		Title: "T", Description: "D", URL: "not a url",
	})
	assert.Error(t, err)
}

func TestAddJob_NewestFirst(t *testing.T) {
	env := newTestStore(t, Options{})
	mustAdd(t, env.store, "First")
	mustAdd(t, env.store, "Second")

	jobs := env.store.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "Second", jobs[0].Title)
	assert.Equal(t, "First", jobs[1].Title)
}

func TestAddJob_EnrichmentPatchesFields(t *testing.T) {
	enricher := &fakeEnricher{company: "Acme", salary: "$150k-$180k"}
	env := newTestStore(t, Options{Enricher: enricher})

	id := mustAdd(t, env.store, "Backend Engineer")
	env.store.Wait()

	job, ok := env.store.Job(id)
	require.True(t, ok)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "$150k-$180k", job.SalaryRange)
	assert.Greater(t, job.DateModified, job.DateAdded)
}

func TestAddJob_EnrichmentFailureWritesSentinels(t *testing.T) {
	enricher := &fakeEnricher{err: errors.New("model unavailable")}
	env := newTestStore(t, Options{Enricher: enricher})

	id := mustAdd(t, env.store, "Backend Engineer")
	env.store.Wait()

	// The record must never be stuck on the placeholder.
	job, ok := env.store.Job(id)
	require.True(t, ok)
	assert.Equal(t, SentinelCompany, job.Company)
	assert.Equal(t, SentinelSalary, job.SalaryRange)
}

func TestAddJob_EnrichmentForDeletedRecordIsDiscarded(t *testing.T) {
	// Block the enrichment until the record is gone, then let it land.
	release := make(chan struct{})
	env := newTestStore(t, Options{
		Enricher: enricherFunc(func(context.Context, string) (Enrichment, error) {
			<-release
			return Enrichment{Company: "Late Corp", SalaryRange: "$1"}, nil
		}),
		Confirm: confirm.Always,
	})

	id := mustAdd(t, env.store, "Short-lived Role")
	require.NoError(t, env.store.DeleteJob(id))
	close(release)
	env.store.Wait()

	_, ok := env.store.Job(id)
	assert.False(t, ok)
	assert.Empty(t, env.store.Jobs())
}

type enricherFunc func(context.Context, string) (Enrichment, error)

func (f enricherFunc) Enrich(ctx context.Context, d string) (Enrichment, error) { return f(ctx, d) }

func TestUpdateJob_MergesPartialFields(t *testing.T) {
	env := newTestStore(t, Options{})
	id := mustAdd(t, env.store, "Backend Engineer")
	before, _ := env.store.Job(id)

	company := "Initech"
	env.store.UpdateJob(id, JobUpdate{Company: &company})

	job, _ := env.store.Job(id)
	assert.Equal(t, "Initech", job.Company)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Greater(t, job.DateModified, before.DateModified)
}

func TestSetStatus_AnyDirectionBetweenStates(t *testing.T) {
	env := newTestStore(t, Options{})
	id := mustAdd(t, env.store, "Backend Engineer")

	for _, status := range []types.JobStatus{
		types.StatusInterviewing,
		types.StatusOffer,
		types.StatusApplied, // corrections roll backward freely
		types.StatusRejected,
		types.StatusInterviewing, // rejection is revertible
	} {
		require.NoError(t, env.store.SetStatus(id, status))
		job, _ := env.store.Job(id)
		assert.Equal(t, status, job.Status)
	}
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	env := newTestStore(t, Options{})
	id := mustAdd(t, env.store, "Backend Engineer")
	assert.Error(t, env.store.SetStatus(id, types.JobStatus("Ghosted")))
}

func TestSetStatus_RejectedLeavesActiveFunnel(t *testing.T) {
	env := newTestStore(t, Options{})
	id := mustAdd(t, env.store, "Backend Engineer")

	require.NoError(t, env.store.SetStatus(id, types.StatusRejected))
	assert.Empty(t, env.store.FilterActive(""))

	archived := env.store.Archived()
	require.Len(t, archived, 1)
	assert.Equal(t, id, archived[0].ID)
	// Still a full record, not deleted.
	assert.Len(t, env.store.Jobs(), 1)
}

func TestArchiveJob_HidesWithoutDeleting(t *testing.T) {
	env := newTestStore(t, Options{})
	id := mustAdd(t, env.store, "Backend Engineer")
	require.NoError(t, env.store.SetStatus(id, types.StatusOffer))

	env.store.ArchiveJob(id)
	assert.Empty(t, env.store.FilterActive(""))
	assert.Len(t, env.store.Jobs(), 1)

	// Archival does not rewrite the status.
	job, _ := env.store.Job(id)
	assert.Equal(t, types.StatusOffer, job.Status)
	assert.True(t, job.IsArchived)
}

func TestRestoreJob_ReentersFunnelAsApplied(t *testing.T) {
	env := newTestStore(t, Options{})
	id := mustAdd(t, env.store, "Backend Engineer")
	require.NoError(t, env.store.SetStatus(id, types.StatusOffer))
	env.store.ArchiveJob(id)

	env.store.RestoreJob(id)
	job, _ := env.store.Job(id)
	assert.False(t, job.IsArchived)
	assert.Equal(t, types.StatusApplied, job.Status)

	active := env.store.FilterActive("")
	require.Len(t, active, 1)
}

func TestDeleteJob_PermanentAndConfirmGated(t *testing.T) {
	env := newTestStore(t, Options{Confirm: confirm.Never})
	id := mustAdd(t, env.store, "Backend Engineer")

	assert.ErrorIs(t, env.store.DeleteJob(id), ErrNotConfirmed)
	assert.Len(t, env.store.Jobs(), 1)

	env.store.confirm = confirm.Always
	require.NoError(t, env.store.DeleteJob(id))
	assert.Empty(t, env.store.Jobs())
	// Deletion removes the record from statistics too.
	assert.Equal(t, 0, env.store.Stats().TotalApplied)
}

func TestFilterActive_CaseInsensitiveTitleOrCompany(t *testing.T) {
	env := newTestStore(t, Options{})
	a := mustAdd(t, env.store, "Backend Engineer")
	b := mustAdd(t, env.store, "Data Scientist")
	company := "Acme Robotics"
	env.store.UpdateJob(b, JobUpdate{Company: &company})

	byTitle := env.store.FilterActive("backend")
	require.Len(t, byTitle, 1)
	assert.Equal(t, a, byTitle[0].ID)

	byCompany := env.store.FilterActive("ROBOTICS")
	require.Len(t, byCompany, 1)
	assert.Equal(t, b, byCompany[0].ID)

	assert.Len(t, env.store.FilterActive(""), 2)
	assert.Empty(t, env.store.FilterActive("nonexistent"))
}

func TestSetAnalysis_ReplacesWholesale(t *testing.T) {
	env := newTestStore(t, Options{})
	id := mustAdd(t, env.store, "Backend Engineer")

	env.store.SetAnalysis(id, types.MatchAnalysis{Score: 40, Gaps: []string{"Rust"}})
	env.store.SetAnalysis(id, types.MatchAnalysis{Score: 85, Strengths: []string{"Go"}})

	job, _ := env.store.Job(id)
	require.NotNil(t, job.Analysis)
	assert.Equal(t, 85, job.Analysis.Score)
	assert.Equal(t, []string{"Go"}, job.Analysis.Strengths)
	assert.Empty(t, job.Analysis.Gaps)
}
