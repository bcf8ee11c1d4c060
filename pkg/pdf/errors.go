package pdf

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBackend is returned when no extraction library could open the file
	ErrNoBackend = errors.New("pdf: no backend could open the document")

	// ErrPageOutOfRange is returned by GetPage for an invalid index
	ErrPageOutOfRange = errors.New("pdf: page index out of range")
)

// DecodeError reports that the document could not be opened or parsed
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
