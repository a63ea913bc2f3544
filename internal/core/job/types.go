package job

import (
	"time"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/analysis"
)

// Status is the job state machine position:
// uploaded -> processing -> completed | partial | failed.
// Terminal states have no outgoing transitions.
type Status string

const (
	StatusUploaded   Status = "uploaded"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusPartial    Status = "partial"
	StatusFailed     Status = "failed"
)

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusPartial, StatusFailed:
		return true
	}
	return false
}

// TaskOutcome is the settled result of one analysis task. Exactly one of
// Value and Err is populated; Elapsed is recorded either way.
type TaskOutcome struct {
	Task    string
	Value   analysis.Result
	Err     string
	Elapsed time.Duration
}

func (o TaskOutcome) OK() bool { return o.Err == "" }

// Job is one document's analysis request and its accumulated state. ID and
// DocumentText never change after creation. Results, counts, timing, warning
// and the terminal status are written together in one aggregation step; the
// results map is never mutated after that write.
type Job struct {
	ID           string
	Filename     string
	DocumentText string
	Status       Status

	Results             map[string]TaskOutcome
	AgentsCompleted     int
	AgentsFailed        int
	TotalProcessingTime time.Duration
	Warning             string

	CreatedAt  time.Time
	StartedAt  time.Time
	FinishedAt time.Time
}

// Aggregate is everything the orchestrator writes into a job when all of its
// tasks have settled.
type Aggregate struct {
	Status              Status
	Results             map[string]TaskOutcome
	AgentsCompleted     int
	AgentsFailed        int
	TotalProcessingTime time.Duration
	Warning             string
}
