package compare

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery rejects a comparison before any provider call is made.
var ErrEmptyQuery = errors.New("query is required")

// ProviderError is the fatal search outcome: the provider call failed and
// produced no results to fall back on. An errored call that still returned
// results never raises it; those comparisons proceed with the error recorded
// as advisory data.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("Exa API error: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
