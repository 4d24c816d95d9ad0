package interpolate

import (
	"errors"
	"fmt"

	"github.com/phil-mansfield/gridinterp/logging"
)

var (
	// ErrEmptyAxis is returned when an axis has no coordinates.
	ErrEmptyAxis = errors.New("interpolate: axis has no values")
	// ErrNotIncreasing is returned when axis coordinates are not strictly
	// increasing.
	ErrNotIncreasing = errors.New("interpolate: axis values not strictly increasing")
	// ErrInvalidMethod is returned when a method is not allowed in the
	// requested role (e.g. constant interpolation or cubic extrapolation).
	ErrInvalidMethod = errors.New("interpolate: invalid method")
	ErrEmptyGrid     = errors.New("interpolate: grid has no axes")
	// ErrSizeMismatch is returned when a data set does not have one value per
	// grid point.
	ErrSizeMismatch      = errors.New("interpolate: data set size mismatch")
	ErrDimensionMismatch = errors.New("interpolate: dimension mismatch")
	ErrInvalidTarget     = errors.New("interpolate: invalid target")
	// ErrOutsideLimits is returned when a target lies beyond an axis's
	// extrapolation limits.
	ErrOutsideLimits     = errors.New("interpolate: target outside extrapolation limits")
	ErrNoTarget          = errors.New("interpolate: no target set")
	ErrNoDataSets        = errors.New("interpolate: no data sets")
	ErrZeroNormalization = errors.New("interpolate: normalization by zero")
	ErrIndexOutOfRange   = errors.New("interpolate: index out of range")
)

// fail reports a message at error level and returns it as an error wrapping
// sentinel. Every error returned by this package goes through fail, so the
// logger sees everything the caller sees.
func fail(
	l logging.Logger, context string, sentinel error,
	format string, args ...interface{},
) error {
	msg := withContext(context, fmt.Sprintf(format, args...))
	l.Error(msg)
	return fmt.Errorf("%s: %w", msg, sentinel)
}

func warn(l logging.Logger, context, format string, args ...interface{}) {
	l.Warning(withContext(context, fmt.Sprintf(format, args...)))
}

func withContext(context, msg string) string {
	if context == "" { return msg }
	return context + ": " + msg
}
