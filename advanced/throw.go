package advanced

import "github.com/pkg/errors"

// Some invariants (well formed redundant groups, mostly) are checked deep
// inside loops where threading an error back out would obscure the geometry.
// Those checks panic through fatalf, and the public API recovers to convert to
// an error. Checks always run before anything is mutated.

type TidyError struct {
	error
}

func (e TidyError) Unwrap() error {
	return e.error
}

// Panic with a TidyError.
func fatalf(format string, args ...interface{}) {
	panic(TidyError{errors.Errorf(format, args...)})
}

// Panic with a TidyError wrapping err.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(TidyError{errors.Wrapf(err, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if tidyError, ok := r.(TidyError); ok {
			return tidyError.error
		}
		panic(r)
	}
	return nil
}
