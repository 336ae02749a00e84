package teibow

// ProgressEvent reports progress while a corpus is processed. Progress is
// an observability side channel, not part of the data contract.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Err       error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressDuplicate
	ProgressFinished
)

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)
