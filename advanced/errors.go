package advanced

import "github.com/pkg/errors"

var (
	// A point or segment index lies outside the path.
	ErrIndexOutOfRange = errors.New("index out of range")
	// The landmark point used to pick an arc is one of the arc's endpoints, so
	// neither arc can be chosen. Callers should skip the path.
	ErrAmbiguousSelection = errors.New("ambiguous selection")
	// The path or selection can't support the requested operation.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")
	// SVG path data could not be parsed.
	ErrInvalidPathData = errors.New("invalid path data")
)
