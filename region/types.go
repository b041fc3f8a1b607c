// Package region defines tunable options and sentinel errors for
// connected-component scanning over a grid.Grid.
package region

import (
	"context"
	"errors"
	"fmt"
)

// Default inclusive bounds of the accepted cell-value domain. Cells are
// byte-like pixel values unless the caller widens or lifts the bound.
const (
	MinValue = 0
	MaxValue = 255
)

// Sentinel errors for scanner execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("region: grid is nil")

	// ErrValueDomain is returned when a cell value lies outside the accepted
	// domain. The whole call aborts before any counting; there is no partial
	// result.
	ErrValueDomain = errors.New("region: cell value outside accepted domain")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("region: invalid option supplied")
)

// Option configures scanner behavior via functional arguments.
// If an Option is invalid (e.g. a negative value bound), it is recorded
// internally and surfaced as ErrOptionViolation when the scan is invoked.
type Option func(*Options)

// Options holds parameters customizing a scan.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per seeded region.
	Ctx context.Context

	// MaxCellValue is the inclusive upper bound of the accepted value domain.
	// MinValue (0) is always the lower bound while the domain check is on.
	MaxCellValue int

	// Unbounded disables the value-domain check entirely; any int value is
	// countable, including negatives.
	Unbounded bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - value domain [MinValue, MaxValue] enforced
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MaxCellValue: MaxValue,
		Unbounded:    false,
		err:          nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithValueBound raises (or lowers) the inclusive upper bound of the accepted
// value domain.
//
//	max >= 0: domain becomes [0, max]
//	max < 0:  invalid option → ErrOptionViolation
func WithValueBound(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: value bound cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCellValue = max
	}
}

// WithUnboundedValues lifts the value-domain check; every int cell value is
// accepted and counted on its own equality class.
func WithUnboundedValues() Option {
	return func(o *Options) {
		o.Unbounded = true
	}
}
