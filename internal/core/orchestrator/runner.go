package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/analysis"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/job"
)

// TaskRunner wraps a single analyzer call. It never lets a failure escape:
// returned errors and panics both become a TaskOutcome with Err set, so one
// task can never abort its siblings. Elapsed is recorded from invocation to
// settlement whether the task succeeds or fails.
type TaskRunner struct {
	analyzer analysis.Analyzer
}

func NewRunner(a analysis.Analyzer) *TaskRunner {
	return &TaskRunner{analyzer: a}
}

// NewRunners wraps each analyzer in a TaskRunner.
func NewRunners(analyzers []analysis.Analyzer) []*TaskRunner {
	runners := make([]*TaskRunner, len(analyzers))
	for i, a := range analyzers {
		runners[i] = NewRunner(a)
	}
	return runners
}

func (r *TaskRunner) Name() string { return r.analyzer.Name() }

func (r *TaskRunner) Run(ctx context.Context, documentText string) (outcome job.TaskOutcome) {
	outcome = job.TaskOutcome{Task: r.analyzer.Name()}
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			outcome.Value = nil
			outcome.Err = fmt.Sprintf("analyzer %s panicked: %v", r.analyzer.Name(), p)
		}
		outcome.Elapsed = time.Since(start)
	}()

	value, err := r.analyzer.Analyze(ctx, documentText)
	if err != nil {
		outcome.Err = err.Error()
		return outcome
	}
	outcome.Value = value
	return outcome
}
