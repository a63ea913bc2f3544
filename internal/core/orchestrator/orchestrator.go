package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/event"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/job"
	"github.com/rs/zerolog/log"
)

const (
	warningPartial   = "Partial results available - one or more agents failed."
	warningAllFailed = "All analyses failed."
)

// Orchestrator fans a document out to every configured task runner, waits for
// all of them to settle, and writes the aggregated outcome into the job as a
// single atomic update.
type Orchestrator struct {
	runners   []*TaskRunner
	lifecycle *job.Lifecycle
	bus       event.Bus
}

func New(runners []*TaskRunner, lifecycle *job.Lifecycle, bus event.Bus) *Orchestrator {
	return &Orchestrator{
		runners:   runners,
		lifecycle: lifecycle,
		bus:       bus,
	}
}

// Start transitions the job into processing and launches the parallel phase
// in the background. The transition error (unknown job, already started or
// finished) is returned synchronously; results arrive later through the
// registry, never through this call.
func (o *Orchestrator) Start(ctx context.Context, jobID, documentText string) error {
	if err := o.lifecycle.Begin(jobID); err != nil {
		return err
	}

	o.bus.Publish(ctx, event.Event{
		Type: event.EventJobStarted,
		Job: event.JobEvent{
			JobID:  jobID,
			Status: string(job.StatusProcessing),
		},
	})

	go o.process(context.WithoutCancel(ctx), jobID, documentText)
	return nil
}

func (o *Orchestrator) process(ctx context.Context, jobID, documentText string) {
	agg := Execute(ctx, o.runners, documentText)

	if err := o.lifecycle.Complete(jobID, agg); err != nil {
		log.Error().Err(err).Str("job_id", jobID).Msg("failed to record aggregation")
		return
	}

	o.bus.Publish(ctx, event.Event{
		Type: eventFor(agg.Status),
		Job: event.JobEvent{
			JobID:           jobID,
			Status:          string(agg.Status),
			AgentsCompleted: agg.AgentsCompleted,
			AgentsFailed:    agg.AgentsFailed,
			Elapsed:         agg.TotalProcessingTime,
			Warning:         agg.Warning,
		},
	})
}

// Execute runs every runner against the same text concurrently and blocks
// until all of them have settled; it never short-circuits on the first
// completion or first failure. TotalProcessingTime is the wall time of the
// parallel phase, so it tracks the slowest task rather than the sum.
func Execute(ctx context.Context, runners []*TaskRunner, documentText string) job.Aggregate {
	outcomes := make([]job.TaskOutcome, len(runners))
	start := time.Now()

	var wg sync.WaitGroup
	for i, r := range runners {
		wg.Add(1)
		go func(i int, r *TaskRunner) {
			defer wg.Done()
			outcomes[i] = r.Run(ctx, documentText)
		}(i, r)
	}
	wg.Wait()
	elapsed := time.Since(start)

	results := make(map[string]job.TaskOutcome, len(outcomes))
	completed, failed := 0, 0
	for _, out := range outcomes {
		results[out.Task] = out
		if out.OK() {
			completed++
		} else {
			failed++
		}
	}

	status := job.StatusCompleted
	warning := ""
	switch {
	case completed == 0:
		status = job.StatusFailed
		warning = warningAllFailed
	case failed > 0:
		status = job.StatusPartial
		warning = warningPartial
	}

	return job.Aggregate{
		Status:              status,
		Results:             results,
		AgentsCompleted:     completed,
		AgentsFailed:        failed,
		TotalProcessingTime: elapsed,
		Warning:             warning,
	}
}

func eventFor(status job.Status) event.EventType {
	switch status {
	case job.StatusPartial:
		return event.EventJobPartial
	case job.StatusFailed:
		return event.EventJobFailed
	default:
		return event.EventJobCompleted
	}
}
