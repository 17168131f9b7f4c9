// Package store holds the in-memory authoritative state for the tracked
// jobs, the résumé, and settings. Every mutation is synchronously pushed
// to the persistence adapter as a whole-collection snapshot, and
// subscribers are notified so derived views can recompute.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/entrhq/jobflow/pkg/logging"
	"github.com/entrhq/jobflow/pkg/storage"
	"github.com/entrhq/jobflow/pkg/types"
)

// ErrValidation marks a rejected mutation: a required identity field
// (company, role) was absent or malformed. No partial mutation occurs.
var ErrValidation = errors.New("validation failed")

// Collection names a store-owned collection in change notifications.
type Collection string

const (
	CollectionJobs     Collection = storage.KeyJobs
	CollectionResume   Collection = storage.KeyResume
	CollectionSettings Collection = storage.KeySettings
)

// Subscriber receives the name of a collection after it has been mutated
// and persisted. Callbacks run on the mutating goroutine and may read the
// store, so they must not block.
type Subscriber func(Collection)

// Store is the single-writer entity store. It is constructed explicitly
// and passed to callers; there is no package-level instance.
type Store struct {
	mu       sync.RWMutex
	adapter  storage.Adapter
	validate *validator.Validate
	log      *logging.Logger

	jobs     []types.Job
	resume   types.Resume
	settings types.Settings

	subsMu      sync.Mutex
	subscribers []Subscriber
}

// New creates a store seeded from the adapter. Absent or corrupt
// snapshots degrade to empty defaults; they are logged and never fatal.
func New(adapter storage.Adapter) *Store {
	log, _ := logging.NewLogger("store")

	s := &Store{
		adapter:  adapter,
		validate: validator.New(),
		log:      log,
	}

	if _, err := adapter.Load(storage.KeyJobs, &s.jobs); err != nil {
		s.log.Warnf("jobs snapshot unreadable, starting empty: %v", err)
		s.jobs = nil
	}
	if _, err := adapter.Load(storage.KeyResume, &s.resume); err != nil {
		s.log.Warnf("resume snapshot unreadable, starting empty: %v", err)
		s.resume = types.Resume{}
	}
	if _, err := adapter.Load(storage.KeySettings, &s.settings); err != nil {
		s.log.Warnf("settings snapshot unreadable, starting empty: %v", err)
		s.settings = types.Settings{}
	}

	return s
}

// Subscribe registers a change callback. There is no unsubscribe; the
// store and its subscribers share the process lifetime.
func (s *Store) Subscribe(fn Subscriber) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// notify runs outside the state lock so subscribers can read the store.
func (s *Store) notify(c Collection) {
	s.subsMu.Lock()
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.subsMu.Unlock()

	for _, fn := range subs {
		fn(c)
	}
}

// persist helpers run with the state lock held. Persistence failures are
// logged, not propagated: the in-memory state stays authoritative.

func (s *Store) persistJobsLocked() {
	if err := s.adapter.Save(storage.KeyJobs, s.jobs); err != nil {
		s.log.Errorf("failed to persist jobs: %v", err)
	}
}

func (s *Store) persistResumeLocked() {
	if err := s.adapter.Save(storage.KeyResume, s.resume); err != nil {
		s.log.Errorf("failed to persist resume: %v", err)
	}
}

func (s *Store) persistSettingsLocked() {
	if err := s.adapter.Save(storage.KeySettings, s.settings); err != nil {
		s.log.Errorf("failed to persist settings: %v", err)
	}
}

func (s *Store) validateStruct(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
