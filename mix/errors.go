package mix

import (
	"errors"
	"fmt"
)

var (
	ErrDestinationOpenFailed = errors.New("destination open failed")
	ErrSourceReadFailed      = errors.New("source read failed")
	ErrFormatLimitExceeded   = errors.New("format limit exceeded")
)

type DestinationError struct {
	Err  error
	Path string
}

func (err *DestinationError) Error() string {
	return fmt.Sprintf("mix: destination: %s: %s", err.Path, err.Err.Error())
}

func (err *DestinationError) Unwrap() error {
	return err.Err
}

func (err *DestinationError) Is(target error) bool {
	switch target.(type) {
	case *DestinationError:
		return true
	default:
		return target == ErrDestinationOpenFailed || errors.Is(err.Err, target)
	}
}

// A SourceError means the archive being written no longer matches its
// entry table and must not be used.
type SourceError struct {
	Err  error
	Name string
}

func (err *SourceError) Error() string {
	return fmt.Sprintf("mix: source: %s: %s", err.Name, err.Err.Error())
}

func (err *SourceError) Unwrap() error {
	return err.Err
}

func (err *SourceError) Is(target error) bool {
	switch target.(type) {
	case *SourceError:
		return true
	default:
		return target == ErrSourceReadFailed || errors.Is(err.Err, target)
	}
}

type LimitError struct {
	Field string
	Value uint64
	Max   uint64
}

func (err *LimitError) Error() string {
	return fmt.Sprintf("mix: %s: %d exceeds maximum of %d", err.Field, err.Value, err.Max)
}

func (err *LimitError) Is(target error) bool {
	switch target.(type) {
	case *LimitError:
		return true
	default:
		return target == ErrFormatLimitExceeded
	}
}
