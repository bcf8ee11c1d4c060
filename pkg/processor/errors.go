package processor

import "fmt"

// Pipeline stages reported by ProcessingError
const (
	StageOpen     = "open"
	StagePage     = "page"
	StageBlocks   = "blocks"
	StageImages   = "images"
	StageCanceled = "canceled"
	StagePanic    = "panic"
)

// ProcessingError reports a failure inside the pipeline for one document
type ProcessingError struct {
	Path  string
	Stage string
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("process %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
