package swimrankings

import (
	"errors"
	"fmt"
)

// Err is the base error of the package. every error returned by this
// package matches it with errors.Is, so callers can catch broadly or
// pick one of the specific categories below.
var Err = errors.New("swimrankings")

var (
	// transport failure or a non-2xx response. never retried here,
	// retry policy belongs to the caller.
	ErrNetwork = fmt.Errorf("%w: network", Err)
	// a syntactically successful search that matched zero athletes.
	ErrAthleteNotFound = fmt.Errorf("%w: athlete not found", Err)
	// a gender token outside of "all", "male", "female". raised before
	// any network call is made.
	ErrInvalidGender = fmt.Errorf("%w: invalid gender", Err)
	// a required structural anchor is missing from an otherwise
	// successful response, which means the markup changed shape.
	ErrParse = fmt.Errorf("%w: parse", Err)
	// out-of-bounds access on an athlete collection.
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", Err)
)

func networkError(cause error) error {
	return fmt.Errorf("%w: %w", ErrNetwork, cause)
}

func networkStatusError(status string) error {
	return fmt.Errorf("%w: unexpected status %s", ErrNetwork, status)
}

func parseError(detail string) error {
	return fmt.Errorf("%w: %s", ErrParse, detail)
}
