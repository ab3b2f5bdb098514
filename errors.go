package hypocycloid

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments is the only error kind returned by the generators.
// Bad radii, non-finite parameters, bad dot counts and bad resolutions are
// all reported as this error; use [errors.Is] to test for it. The wrapped
// message carries the detail for humans but is not meant to be parsed.
var ErrInvalidArguments = errors.New("check arguments")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArguments, fmt.Sprintf(format, args...))
}
