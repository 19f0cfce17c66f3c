package internal

import "github.com/pkg/errors"

// Threading errors through every step of the arc construction would bury the
// geometry under bookkeeping. Instead, we use panics, and the public API
// recovers to convert to an error.

// A PoincareError is an error whose cause is one of the sentinels below. Any
// other panic, including runtime errors, is a bug and keeps propagating.
type PoincareError error

var (
	// Two points that coincide, or a point at the origin.
	ErrDegenerateInput = errors.New("degenerate input")
	// A point which is not on the boundary circle.
	ErrInvalidBoundaryPoint = errors.New("invalid boundary point")
	ErrInvalidSampleCount   = errors.New("invalid sample count")
	ErrInvalidRadius        = errors.New("invalid disk radius")
)

// Panic with a PoincareError wrapping one of the sentinels above.
func throwf(cause error, format string, args ...interface{}) {
	panic(errors.Wrapf(cause, format, args...))
}

func HandlePoincarePanicRecover(r interface{}) error {
	if r != nil {
		if poincareError, ok := r.(PoincareError); ok && isSentinel(errors.Cause(poincareError)) {
			return poincareError
		}
		panic(r)
	}
	return nil
}

func isSentinel(err error) bool {
	switch err {
	case ErrDegenerateInput, ErrInvalidBoundaryPoint, ErrInvalidSampleCount, ErrInvalidRadius:
		return true
	}
	return false
}

// Run fn, converting a thrown error back into a return value.
func catch(fn func()) (err error) {
	defer func() {
		err = HandlePoincarePanicRecover(recover())
	}()
	fn()
	return nil
}
