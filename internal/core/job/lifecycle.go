package job

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("job not found")
	ErrAlreadyProcessing = errors.New("analysis already in progress")
	ErrAlreadyFinished   = errors.New("analysis already completed")
	ErrNotProcessing     = errors.New("job is not processing")
)

// Lifecycle owns job state transitions. Begin moves a job into processing
// exactly once; Complete performs the single aggregation write into a
// terminal state. Everything else reads snapshots through the registry.
type Lifecycle struct {
	registry *Registry
}

func NewLifecycle(r *Registry) *Lifecycle {
	return &Lifecycle{registry: r}
}

// Begin transitions uploaded -> processing. A job that is already processing
// or finished is rejected, never restarted.
func (l *Lifecycle) Begin(id string) error {
	var stateErr error
	err := l.registry.Update(id, func(j *Job) {
		switch {
		case j.Status == StatusProcessing:
			stateErr = ErrAlreadyProcessing
		case j.Status.IsTerminal():
			stateErr = ErrAlreadyFinished
		default:
			j.Status = StatusProcessing
			j.StartedAt = time.Now().UTC()
		}
	})
	if err != nil {
		return err
	}
	return stateErr
}

// Complete writes the aggregate and the terminal status as one atomic update.
// Only a processing job can be completed.
func (l *Lifecycle) Complete(id string, agg Aggregate) error {
	var stateErr error
	err := l.registry.Update(id, func(j *Job) {
		if j.Status != StatusProcessing {
			stateErr = ErrNotProcessing
			return
		}
		j.Status = agg.Status
		j.Results = agg.Results
		j.AgentsCompleted = agg.AgentsCompleted
		j.AgentsFailed = agg.AgentsFailed
		j.TotalProcessingTime = agg.TotalProcessingTime
		j.Warning = agg.Warning
		j.FinishedAt = time.Now().UTC()
	})
	if err != nil {
		return err
	}
	return stateErr
}
