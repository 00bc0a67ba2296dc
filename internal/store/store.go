// Package store holds the authoritative in-memory collection of job
// application records: the single source of truth for status, archival and
// derived statistics. All mutations are serialized through one mutex and
// every settled mutation persists the full snapshot through the injected
// key-value adapter.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kwalters/jobtrack/internal/confirm"
	"github.com/kwalters/jobtrack/internal/persist"
	"github.com/kwalters/jobtrack/internal/types"
)

// ErrNotConfirmed is returned when a destructive operation was refused by
// the confirmation capability.
var ErrNotConfirmed = errors.New("action not confirmed")

// ErrArchived is returned when mutating nested data of an archived record.
var ErrArchived = errors.New("record is archived")

// Enrichment is the asynchronous patch applied to a freshly added record.
type Enrichment struct {
	Company     string
	SalaryRange string
}

// Enricher produces company/salary fields from a job description. The
// extraction adapter satisfies this; the store only needs the capability.
type Enricher interface {
	Enrich(ctx context.Context, description string) (Enrichment, error)
}

// Options configures a Store.
type Options struct {
	KV       persist.KV
	Enricher Enricher
	Confirm  confirm.Func
	// Debounce coalesces persistence writes. Zero writes immediately;
	// debouncing is an optimization, not a correctness requirement, since
	// writes are idempotent full-snapshot overwrites.
	Debounce time.Duration
	Verbose  bool
	// Now is injectable for tests; nil means RFC3339 UTC of time.Now.
	Now func() string
}

// Store is the record store. Create with New, load persisted state with
// Load.
type Store struct {
	mu     sync.Mutex
	jobs   []types.JobApplication
	resume *types.ResumeData

	kv       persist.KV
	enricher Enricher
	confirm  confirm.Func
	debounce time.Duration
	verbose  bool
	now      func() string

	validate  *validator.Validate
	saveTimer *time.Timer
	inflight  sync.WaitGroup
}

// New creates an empty store.
func New(opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = types.NowISO
	}
	return &Store{
		jobs:     []types.JobApplication{},
		kv:       opts.KV,
		enricher: opts.Enricher,
		confirm:  opts.Confirm,
		debounce: opts.Debounce,
		verbose:  opts.Verbose,
		now:      now,
		validate: validator.New(),
	}
}

// Load reads the persisted snapshot. A missing key (first run) or a
// corrupt blob resets to an empty state rather than failing; the tracker
// must always start.
func (s *Store) Load() error {
	if s.kv == nil {
		return nil
	}
	blob, ok, err := s.kv.Load(persist.SnapshotKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var snapshot types.Snapshot
	if err := json.Unmarshal(blob, &snapshot); err != nil {
		log.Printf("store: persisted state is corrupt, starting empty: %v", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = snapshot.Jobs
	if s.jobs == nil {
		s.jobs = []types.JobApplication{}
	}
	s.resume = snapshot.Resume
	return nil
}

// Snapshot returns a deep copy of the full store state.
func (s *Store) Snapshot() types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked().Clone()
}

func (s *Store) snapshotLocked() types.Snapshot {
	return types.Snapshot{Jobs: s.jobs, Resume: s.resume}
}

// ReplaceAll overwrites the entire store with an imported snapshot. There
// is no merge algorithm; this is last-write-wins at the granularity of the
// whole store, so it is confirm-gated.
func (s *Store) ReplaceAll(snapshot types.Snapshot) error {
	if !s.confirmed("Overwrite current data with the imported snapshot?") {
		return ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	clone := snapshot.Clone()
	s.jobs = clone.Jobs
	if s.jobs == nil {
		s.jobs = []types.JobApplication{}
	}
	s.resume = clone.Resume
	s.persistLocked()
	return nil
}

// ResetAll clears every record and the resume, and removes the persisted
// blob. Confirm-gated.
func (s *Store) ResetAll() error {
	if !s.confirmed("Erase all tracked applications and resume data?") {
		return ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = []types.JobApplication{}
	s.resume = nil
	if s.kv != nil {
		if err := s.kv.Remove(persist.SnapshotKey); err != nil {
			log.Printf("store: failed to remove persisted state: %v", err)
		}
	}
	return nil
}

// SetResume replaces the single global resume.
func (s *Store) SetResume(data types.ResumeData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = &data
	s.persistLocked()
}

// Resume returns the stored resume, if any.
func (s *Store) Resume() (types.ResumeData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resume == nil {
		return types.ResumeData{}, false
	}
	return *s.resume, true
}

// Wait blocks until all in-flight enrichment patch-backs have settled.
func (s *Store) Wait() {
	s.inflight.Wait()
}

// Close flushes any pending debounced write.
func (s *Store) Close() {
	s.mu.Lock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
	s.flushLocked()
	s.mu.Unlock()
	s.inflight.Wait()
}

func (s *Store) confirmed(prompt string) bool {
	// A nil confirm capability refuses destructive actions; callers must
	// wire one deliberately.
	return s.confirm != nil && s.confirm(prompt)
}

// persistLocked schedules (or performs) a full-snapshot write. Callers must
// hold the mutex.
func (s *Store) persistLocked() {
	if s.kv == nil {
		return
	}
	if s.debounce <= 0 {
		s.flushLocked()
		return
	}
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.flushLocked()
	})
}

func (s *Store) flushLocked() {
	if s.kv == nil {
		return
	}
	blob, err := json.Marshal(s.snapshotLocked())
	if err != nil {
		log.Printf("store: failed to serialize state: %v", err)
		return
	}
	if err := s.kv.Save(persist.SnapshotKey, blob); err != nil {
		// Persistence failures must not break the in-memory store; the
		// next mutation writes the same full snapshot again.
		log.Printf("store: failed to persist state: %v", err)
	}
}
