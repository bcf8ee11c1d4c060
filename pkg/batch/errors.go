package batch

import (
	"errors"
	"fmt"
)

// ErrInputDir is returned when the input directory cannot be listed
var ErrInputDir = errors.New("batch: cannot read input directory")

// SerializationError reports that a result could not be encoded or written
type SerializationError struct {
	Path string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
