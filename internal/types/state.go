package types

import "time"

// RunStatus represents the lifecycle of a submitted job run
type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// RunKind names the MapReduce application a run executed
type RunKind string

const (
	KindWordCount RunKind = "wordcount"
	KindGrep      RunKind = "grep"
)

// Run is the record kept for every job submitted to the coordinator
type Run struct {
	ID        string    `json:"id"`
	Kind      RunKind   `json:"kind"`
	Status    RunStatus `json:"status"`
	Detail    string    `json:"detail,omitempty"`
	Error     string    `json:"error,omitempty"`
	Inputs    int       `json:"inputs"`
	Outputs   int       `json:"outputs"`
	CreatedAt time.Time `json:"created_at"`
}

// Pair is a persisted output row of a run
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
