package job

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry is the in-memory store of job records, keyed by job id. Jobs are
// stored and returned by value: readers always see either the state before an
// update or the state after it, never a half-applied one. Distinct jobs are
// fully independent.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]Job)}
}

// Create stores a new job in the uploaded state and returns it.
func (r *Registry) Create(filename, documentText string) Job {
	j := Job{
		ID:           uuid.NewString(),
		Filename:     filename,
		DocumentText: documentText,
		Status:       StatusUploaded,
		CreatedAt:    time.Now().UTC(),
	}
	r.mu.Lock()
	r.jobs[j.ID] = j
	r.mu.Unlock()
	return j
}

// Get returns a point-in-time snapshot of the job.
func (r *Registry) Get(id string) (Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.jobs[id]
	return j, ok
}

// Update applies fn to the job under the registry lock, making the whole
// mutation visible to readers atomically.
func (r *Registry) Update(id string, fn func(*Job)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return ErrNotFound
	}
	fn(&j)
	r.jobs[id] = j
	return nil
}
