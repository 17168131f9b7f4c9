package store

import (
	"github.com/google/uuid"

	"github.com/entrhq/jobflow/pkg/types"
)

// Jobs returns a snapshot of the job collection, newest first.
func (s *Store) Jobs() []types.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]types.Job, len(s.jobs))
	copy(jobs, s.jobs)
	return jobs
}

// AddJob inserts a new job at the head of the collection so newest-first
// ordering holds. Any caller-supplied ID is discarded; a fresh one is
// generated. Company and Role are required; a validation failure leaves
// the collection untouched.
func (s *Store) AddJob(job types.Job) (types.Job, error) {
	if err := s.validateStruct(job); err != nil {
		return types.Job{}, err
	}

	job.ID = uuid.New().String()
	if job.Origin == "" {
		job.Origin = types.OriginApplication
	}

	s.mu.Lock()
	s.jobs = append([]types.Job{job}, s.jobs...)
	s.persistJobsLocked()
	s.mu.Unlock()

	s.notify(CollectionJobs)
	return job, nil
}

// UpdateJob applies a partial update to the job with the given id. Only
// supplied fields change; origin can never be changed this way. An
// absent id is a silent no-op.
func (s *Store) UpdateJob(id string, patch types.JobPatch) {
	s.mu.Lock()
	found := false
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			patch.Apply(&s.jobs[i])
			found = true
			break
		}
	}
	if found {
		s.persistJobsLocked()
	}
	s.mu.Unlock()

	if found {
		s.notify(CollectionJobs)
	}
}

// RemoveJob deletes the job with the given id. Removing an absent id is
// a silent no-op, so deletes are idempotent.
func (s *Store) RemoveJob(id string) {
	s.mu.Lock()
	found := false
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			found = true
			break
		}
	}
	if found {
		s.persistJobsLocked()
	}
	s.mu.Unlock()

	if found {
		s.notify(CollectionJobs)
	}
}
