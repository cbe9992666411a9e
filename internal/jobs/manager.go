// Package jobs tracks asynchronous work (composite image generation) in
// memory. Jobs do not survive a restart; callers poll by job ID.
package jobs

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status values a job moves through.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// ErrNotFound is returned when a job ID is unknown.
var ErrNotFound = errors.New("job not found")

// Job is a snapshot of one asynchronous task.
type Job struct {
	ID          string     `json:"jobId"`
	Status      string     `json:"status"`
	Result      any        `json:"result,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Manager is a concurrency-safe in-memory job registry.
type Manager struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	now  func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		jobs: make(map[string]*Job),
		now:  time.Now,
	}
}

// Create registers a new pending job and returns its ID.
func (m *Manager) Create() string {
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id] = &Job{
		ID:        id,
		Status:    StatusPending,
		CreatedAt: m.now().UTC(),
	}
	return id
}

// Start marks a job as processing.
func (m *Manager) Start(id string) error {
	return m.update(id, func(j *Job) {
		j.Status = StatusProcessing
	})
}

// Complete stores a job's result and marks it completed.
func (m *Manager) Complete(id string, result any) error {
	return m.update(id, func(j *Job) {
		j.Status = StatusCompleted
		j.Result = result
		done := m.now().UTC()
		j.CompletedAt = &done
	})
}

// Fail records a job failure.
func (m *Manager) Fail(id string, cause error) error {
	return m.update(id, func(j *Job) {
		j.Status = StatusFailed
		if cause != nil {
			j.Error = cause.Error()
		}
		done := m.now().UTC()
		j.CompletedAt = &done
	})
}

// Get returns a copy of the job, or ErrNotFound.
func (m *Manager) Get(id string) (Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return *job, nil
}

func (m *Manager) update(id string, apply func(*Job)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return ErrNotFound
	}
	apply(job)
	return nil
}
