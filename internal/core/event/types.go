package event

import "time"

type EventType string

const (
	EventJobStarted   EventType = "job.started"
	EventJobCompleted EventType = "job.completed"
	EventJobPartial   EventType = "job.partial"
	EventJobFailed    EventType = "job.failed"
)

// Event is one job lifecycle change. The payload is typed: every event on
// this bus is about a job, so subscribers read Job directly instead of
// asserting on an opaque value.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Job       JobEvent
}

// JobEvent describes the job the event is about.
type JobEvent struct {
	JobID           string
	Status          string
	AgentsCompleted int
	AgentsFailed    int
	Elapsed         time.Duration
	Warning         string
}
