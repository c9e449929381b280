package goolog

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrAlreadyInitialized is returned by Init when the logger has already
// been configured. The first caller's configuration wins; later calls
// must not silently reconfigure a running process.
var ErrAlreadyInitialized = errors.New("goolog: logger already initialized")

// SinkUnavailableError is returned by Init when the requested log file
// could not be opened for writing.
type SinkUnavailableError struct {
	Path string
	Err  error
}

func (e *SinkUnavailableError) Error() string {
	return fmt.Sprintf("goolog: log file %q unavailable: %v", e.Path, e.Err)
}

func (e *SinkUnavailableError) Unwrap() error {
	return e.Err
}
