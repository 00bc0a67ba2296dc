// Package types defines the core data model for the job application tracker.
package types

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents where an application sits in the hiring funnel.
type JobStatus string

const (
	// StatusApplied is the initial status of every new application
	StatusApplied JobStatus = "Applied"
	// StatusInterviewing indicates at least one interview has been scheduled
	StatusInterviewing JobStatus = "Interviewing"
	// StatusOffer indicates an offer has been extended
	StatusOffer JobStatus = "Offer"
	// StatusRejected is terminal for the active funnel but remains revertible
	StatusRejected JobStatus = "Rejected"
)

// ValidStatus reports whether s is one of the four known statuses.
func ValidStatus(s JobStatus) bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// InterviewMode is how an interview is conducted.
type InterviewMode string

const (
	// ModeRemote is a remote/video interview
	ModeRemote InterviewMode = "Remote"
	// ModeInPerson is an on-site interview
	ModeInPerson InterviewMode = "In-Person"
)

// TodoItem is a single checklist entry attached to an interview.
type TodoItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Interview is one scheduled event owned by a JobApplication. It has no
// identity outside its parent and is always persisted embedded in it.
type Interview struct {
	ID           string        `json:"id"`
	Stage        string        `json:"stage"`
	Interviewer  string        `json:"interviewer,omitempty"`
	Date         string        `json:"date"`
	Mode         InterviewMode `json:"mode"`
	Link         string        `json:"link,omitempty"` // meaningful only when Mode is Remote
	PreTodos     []TodoItem    `json:"preTodos"`
	PostTodos    []TodoItem    `json:"postTodos"`
	RemindersSet bool          `json:"remindersSet"`
}

// MatchAnalysis is the result of scoring a resume against a job description.
// It is replaced wholesale on every analysis run; no history is kept.
type MatchAnalysis struct {
	Score     int      `json:"score"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

// JobApplication is the aggregate root: one tracked application and all of
// its nested data. Timestamps are RFC3339 UTC strings so that encoded
// snapshots round-trip byte-for-byte.
type JobApplication struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Company      string         `json:"company"`
	Description  string         `json:"description"`
	SalaryRange  string         `json:"salaryRange"`
	Status       JobStatus      `json:"status"`
	DateAdded    string         `json:"dateAdded"`
	DateModified string         `json:"dateModified"`
	Link         string         `json:"link,omitempty"`
	Interviews   []Interview    `json:"interviews,omitempty"`
	Analysis     *MatchAnalysis `json:"analysis,omitempty"`
	IsArchived   bool           `json:"isArchived"`
}

// InActiveFunnel reports whether the record belongs in the primary list:
// not archived and not rejected.
func (j *JobApplication) InActiveFunnel() bool {
	return !j.IsArchived && j.Status != StatusRejected
}

// CareerStats is fully derived from the record collection on every read and
// never persisted, so it cannot drift from the source records.
type CareerStats struct {
	TotalApplied    int `json:"totalApplied"`
	TotalRejections int `json:"totalRejections"`
	TotalOffers     int `json:"totalOffers"`
	SuccessRate     int `json:"successRate"`
}

// NewID mints an opaque unique record id.
func NewID() string {
	return uuid.NewString()
}

// NowISO returns the current time as an RFC3339 UTC string.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
