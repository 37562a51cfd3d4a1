package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with wrapped throw", func(t *testing.T) {
		err := func() (err error) {
			defer func() {
				err = HandlePanicRecover(recover())
			}()
			fatalWrapf(ErrIndexOutOfRange, "point %d", 7)
			return nil
		}()
		assert.EqualError(t, err, "point 7: index out of range")
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.Panics(t, func() {
			defer func() {
				HandlePanicRecover(recover())
			}()
			var points []*AnchorPoint
			_ = points[3]
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}
