package store

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/kwalters/jobtrack/internal/types"
)

// Placeholder and sentinel field values. The placeholder marks enrichment
// in flight; the sentinels mark enrichment that failed, so a record never
// stays on "Analyzing..." forever.
const (
	PlaceholderPending = "Analyzing..."
	SentinelCompany    = "Unknown"
	SentinelSalary     = "Not found"
)

// AddInput is the validated input for AddJob.
type AddInput struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	URL         string `validate:"omitempty,url"`
}

// AddJob creates a record with status Applied and placeholder company and
// salary fields, returning its id immediately. When an enricher is wired,
// an asynchronous enrichment later patches the fields in place; creation
// never blocks on the network.
func (s *Store) AddJob(ctx context.Context, in AddInput) (string, error) {
	if err := s.validate.Struct(in); err != nil {
		return "", fmt.Errorf("invalid job input: %w", err)
	}

	id := types.NewID()
	now := s.now()
	job := types.JobApplication{
		ID:           id,
		Title:        in.Title,
		Company:      PlaceholderPending,
		Description:  in.Description,
		SalaryRange:  PlaceholderPending,
		Status:       types.StatusApplied,
		DateAdded:    now,
		DateModified: now,
		Link:         in.URL,
	}

	s.mu.Lock()
	// Newest first, matching the primary list order.
	s.jobs = append([]types.JobApplication{job}, s.jobs...)
	s.persistLocked()
	s.mu.Unlock()

	if s.enricher != nil {
		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			enr, err := s.enricher.Enrich(ctx, in.Description)
			if err != nil {
				// Explicit sentinels rather than leaving the placeholder.
				s.patchEnrichment(id, SentinelCompany, SentinelSalary)
				return
			}
			s.patchEnrichment(id, enr.Company, enr.SalaryRange)
		}()
	}

	return id, nil
}

// patchEnrichment applies an enrichment result to a record. The record may
// have been deleted while the call was in flight; that is a silent no-op
// (the eventual result is discarded, not an error).
func (s *Store) patchEnrichment(id, company, salaryRange string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.findLocked(id)
	if job == nil {
		return
	}
	job.Company = company
	job.SalaryRange = salaryRange
	job.DateModified = s.now()
	s.persistLocked()
}

// JobUpdate carries the partial fields of an update; nil pointers leave
// the field untouched.
type JobUpdate struct {
	Title       *string
	Company     *string
	Description *string
	SalaryRange *string
	Link        *string
}

// UpdateJob merges the provided fields into the record and bumps
// dateModified. An unknown id is a silent no-op: that signals a caller
// bug, not a user-facing failure, so it is logged rather than surfaced.
func (s *Store) UpdateJob(id string, update JobUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.findLocked(id)
	if job == nil {
		log.Printf("store: update for unknown record %s dropped", id)
		return
	}
	if update.Title != nil {
		job.Title = *update.Title
	}
	if update.Company != nil {
		job.Company = *update.Company
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	if update.SalaryRange != nil {
		job.SalaryRange = *update.SalaryRange
	}
	if update.Link != nil {
		job.Link = *update.Link
	}
	job.DateModified = s.now()
	s.persistLocked()
}

// SetStatus moves a record through the funnel. Transitions between
// Applied, Interviewing and Offer are free in any direction so the user
// can correct mistakes; Rejected removes the record from active views but
// stays revertible. No transition is auto-triggered.
func (s *Store) SetStatus(id string, status types.JobStatus) error {
	if !types.ValidStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.findLocked(id)
	if job == nil {
		log.Printf("store: status change for unknown record %s dropped", id)
		return nil
	}
	job.Status = status
	job.DateModified = s.now()
	s.persistLocked()
	return nil
}

// SetAnalysis replaces the record's match analysis wholesale; no history
// is kept.
func (s *Store) SetAnalysis(id string, analysis types.MatchAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.findLocked(id)
	if job == nil {
		log.Printf("store: analysis for unknown record %s dropped", id)
		return
	}
	job.Analysis = &analysis
	job.DateModified = s.now()
	s.persistLocked()
}

// ArchiveJob hides a record from active views without deleting it or its
// history. Distinct from DeleteJob.
func (s *Store) ArchiveJob(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.findLocked(id)
	if job == nil {
		return
	}
	job.IsArchived = true
	s.persistLocked()
}

// RestoreJob returns an archived record to the active funnel. Status is
// deliberately reset to Applied: restored records re-enter at the start of
// the funnel, not at their prior stage.
func (s *Store) RestoreJob(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.findLocked(id)
	if job == nil {
		return
	}
	job.IsArchived = false
	job.Status = types.StatusApplied
	job.DateModified = s.now()
	s.persistLocked()
}

// DeleteJob permanently removes the record and all nested data. It is
// confirm-gated and intended only from an archive/trash view, never the
// primary list, to prevent accidental data loss.
func (s *Store) DeleteJob(id string) error {
	if !s.confirmed("Permanently delete this application and all its interview history?") {
		return ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return nil
}

// Job returns a copy of one record.
func (s *Store) Job(id string) (types.JobApplication, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.findLocked(id)
	if job == nil {
		return types.JobApplication{}, false
	}
	return job.Clone(), true
}

// Jobs returns a copy of every record, including archived and rejected
// ones.
func (s *Store) Jobs() []types.JobApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked().Clone().Jobs
}

// FilterActive returns the active funnel: records that are not archived
// and not rejected, whose title or company contains the query
// case-insensitively. An empty query matches everything.
func (s *Store) FilterActive(query string) []types.JobApplication {
	query = strings.ToLower(query)

	s.mu.Lock()
	defer s.mu.Unlock()
	var active []types.JobApplication
	for _, job := range s.snapshotLocked().Clone().Jobs {
		if !job.InActiveFunnel() {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(job.Title), query) &&
			!strings.Contains(strings.ToLower(job.Company), query) {
			continue
		}
		active = append(active, job)
	}
	return active
}

// Archived returns records hidden from the active funnel: archived or
// rejected.
func (s *Store) Archived() []types.JobApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	var archived []types.JobApplication
	for _, job := range s.snapshotLocked().Clone().Jobs {
		if !job.InActiveFunnel() {
			archived = append(archived, job)
		}
	}
	return archived
}

func (s *Store) findLocked(id string) *types.JobApplication {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return &s.jobs[i]
		}
	}
	return nil
}

func (s *Store) indexLocked(id string) int {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return i
		}
	}
	return -1
}
