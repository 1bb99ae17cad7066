package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/store"
)

// ErrStoreUnavailable wraps every persistence failure.
var ErrStoreUnavailable = store.ErrUnavailable

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// MissingModulesError lists modules that are absent or unfinished.
type MissingModulesError struct {
	Modules []catalog.Module
}

func (e *MissingModulesError) Error() string {
	names := make([]string, len(e.Modules))
	for i, m := range e.Modules {
		names[i] = string(m)
	}
	return "Please complete all assessments first. Missing: " + strings.Join(names, ", ")
}

// GenerationFailedError means the completion call produced no usable
// report. Nothing was persisted and the request may be retried.
type GenerationFailedError struct {
	Err error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("report generation failed: %v", e.Err)
}

func (e *GenerationFailedError) Unwrap() error { return e.Err }

// Retryable reports whether the caller may try again.
func (e *GenerationFailedError) Retryable() bool { return true }
