package advanced

import "github.com/pkg/errors"

type SelectionFilter int

const (
	// Every redundant group counts, regardless of selection.
	FilterIgnore SelectionFilter = iota
	// Only groups with at least one selected point count.
	FilterAnySelected
	// Groups are cut down to their runs of selected points.
	FilterAllSelected
)

func (f SelectionFilter) String() string {
	return [...]string{"ignore", "any", "all"}[f]
}

// ParseSelectionFilter converts "ignore", "any" or "all" into a filter.
func ParseSelectionFilter(s string) (SelectionFilter, error) {
	for _, f := range []SelectionFilter{FilterIgnore, FilterAnySelected, FilterAllSelected} {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedConfiguration, "unknown selection filter %q", s)
}

// Options for finding and collapsing redundant points. Passed by value, and
// never modified by the operations that take it.
type Options struct {
	// Points closer than this (after rounding to hundredths) coincide.
	Tolerance float64
	Filter    SelectionFilter
	// Which ends of each group survive the collapse.
	KeepLeading  bool
	KeepTrailing bool
	// When keeping both ends of a group of three or more, also keep a smooth
	// point at the group's centroid.
	KeepAveraged bool
}

func DefaultOptions() Options {
	return Options{Tolerance: 0.5}
}
