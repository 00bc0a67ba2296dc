package store

import (
	"fmt"
	"sort"

	"github.com/kwalters/jobtrack/internal/types"
)

// TodoPhase selects which checklist of an interview a todo belongs to.
type TodoPhase string

const (
	PhasePre  TodoPhase = "pre"
	PhasePost TodoPhase = "post"
)

// InterviewInput carries the fields for a new or updated interview round.
type InterviewInput struct {
	Stage       string `validate:"required"`
	Interviewer string
	Date        string
	Mode        types.InterviewMode
	Link        string
}

// AddInterview appends an interview round to a record and returns the new
// interview id. Archived records reject nested mutations; restore first.
func (s *Store) AddInterview(jobID string, in InterviewInput) (string, error) {
	if err := s.validate.Struct(in); err != nil {
		return "", fmt.Errorf("invalid interview input: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.findLocked(jobID)
	if job == nil {
		return "", fmt.Errorf("unknown record %s", jobID)
	}
	if job.IsArchived {
		return "", ErrArchived
	}

	iv := types.Interview{
		ID:          types.NewID(),
		Stage:       in.Stage,
		Interviewer: in.Interviewer,
		Date:        in.Date,
		Mode:        in.Mode,
		Link:        in.Link,
	}
	job.Interviews = append(job.Interviews, iv)
	job.DateModified = s.now()
	s.persistLocked()
	return iv.ID, nil
}

// UpdateInterview replaces the editable fields of an interview round in
// place, keeping its id and todo checklists.
func (s *Store) UpdateInterview(jobID, interviewID string, in InterviewInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("invalid interview input: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	job, iv, err := s.interviewLocked(jobID, interviewID)
	if err != nil {
		return err
	}

	iv.Stage = in.Stage
	iv.Interviewer = in.Interviewer
	iv.Date = in.Date
	iv.Mode = in.Mode
	iv.Link = in.Link
	job.DateModified = s.now()
	s.persistLocked()
	return nil
}

// RemoveInterview deletes an interview round and both of its checklists.
func (s *Store) RemoveInterview(jobID, interviewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.findLocked(jobID)
	if job == nil {
		return fmt.Errorf("unknown record %s", jobID)
	}
	if job.IsArchived {
		return ErrArchived
	}

	for i := range job.Interviews {
		if job.Interviews[i].ID == interviewID {
			job.Interviews = append(job.Interviews[:i], job.Interviews[i+1:]...)
			job.DateModified = s.now()
			s.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("unknown interview %s", interviewID)
}

// SetReminders flags whether calendar reminders were created for a round.
// The flag is informational only; no scheduling happens here.
func (s *Store) SetReminders(jobID, interviewID string, set bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, iv, err := s.interviewLocked(jobID, interviewID)
	if err != nil {
		return err
	}

	iv.RemindersSet = set
	job.DateModified = s.now()
	s.persistLocked()
	return nil
}

// AddTodo appends a checklist item to the chosen phase of an interview and
// returns the new item id.
func (s *Store) AddTodo(jobID, interviewID string, phase TodoPhase, text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("todo text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	job, iv, err := s.interviewLocked(jobID, interviewID)
	if err != nil {
		return "", err
	}

	item := types.TodoItem{ID: types.NewID(), Text: text}
	switch phase {
	case PhasePre:
		iv.PreTodos = append(iv.PreTodos, item)
	case PhasePost:
		iv.PostTodos = append(iv.PostTodos, item)
	default:
		return "", fmt.Errorf("unknown todo phase %q", phase)
	}
	job.DateModified = s.now()
	s.persistLocked()
	return item.ID, nil
}

// ToggleTodo flips the completion state of a checklist item.
func (s *Store) ToggleTodo(jobID, interviewID string, phase TodoPhase, todoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, iv, err := s.interviewLocked(jobID, interviewID)
	if err != nil {
		return err
	}

	var list []types.TodoItem
	switch phase {
	case PhasePre:
		list = iv.PreTodos
	case PhasePost:
		list = iv.PostTodos
	default:
		return fmt.Errorf("unknown todo phase %q", phase)
	}
	for i := range list {
		if list[i].ID == todoID {
			list[i].Completed = !list[i].Completed
			job.DateModified = s.now()
			s.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("unknown todo %s", todoID)
}

// AgendaEntry is one upcoming interview, flattened with its parent record's
// identity for display.
type AgendaEntry struct {
	JobID     string
	Title     string
	Company   string
	Interview types.Interview
}

// Agenda returns every interview of every active-funnel record, sorted by
// date ascending. Undated rounds sort last. RFC3339 UTC timestamps make the
// lexicographic sort chronological.
func (s *Store) Agenda() []AgendaEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var agenda []AgendaEntry
	for i := range s.jobs {
		job := &s.jobs[i]
		if !job.InActiveFunnel() {
			continue
		}
		for _, iv := range job.Interviews {
			agenda = append(agenda, AgendaEntry{
				JobID:     job.ID,
				Title:     job.Title,
				Company:   job.Company,
				Interview: iv.Clone(),
			})
		}
	}
	sort.SliceStable(agenda, func(a, b int) bool {
		da, db := agenda[a].Interview.Date, agenda[b].Interview.Date
		if (da == "") != (db == "") {
			return da != ""
		}
		return da < db
	})
	return agenda
}

// interviewLocked resolves a (job, interview) pair, rejecting archived
// parents. Callers must hold the mutex.
func (s *Store) interviewLocked(jobID, interviewID string) (*types.JobApplication, *types.Interview, error) {
	job := s.findLocked(jobID)
	if job == nil {
		return nil, nil, fmt.Errorf("unknown record %s", jobID)
	}
	if job.IsArchived {
		return nil, nil, ErrArchived
	}
	for i := range job.Interviews {
		if job.Interviews[i].ID == interviewID {
			return job, &job.Interviews[i], nil
		}
	}
	return nil, nil, fmt.Errorf("unknown interview %s", interviewID)
}
