package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandlePoincarePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePoincarePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			throwf(ErrDegenerateInput, "kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!: degenerate input")
		assert.Equal(t, ErrDegenerateInput, errors.Cause(err))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestCatch(t *testing.T) {
	err := catch(func() {
		throwf(ErrInvalidRadius, "radius %g", -1.0)
	})
	assert.EqualError(t, err, "radius -1: invalid disk radius")

	assert.NoError(t, catch(func() {}))

	assert.Panics(t, func() {
		_ = catch(func() { panic(42) })
	})
}

func TestCatch_RuntimeErrorsPropagate(t *testing.T) {
	assert.Panics(t, func() {
		_ = catch(func() {
			var samples []Point
			_ = samples[3]
		})
	})

	assert.Panics(t, func() {
		_ = catch(func() { panic(errors.New("not one of ours")) })
	})

	// Extra wrapping keeps the sentinel as the cause
	err := catch(func() {
		panic(errors.Wrap(errors.Wrapf(ErrInvalidSampleCount, "got %d", 1), "side 0"))
	})
	assert.Equal(t, ErrInvalidSampleCount, errors.Cause(err))
}
