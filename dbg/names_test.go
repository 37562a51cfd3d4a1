package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type thing struct{ n int }

func TestName(t *testing.T) {
	Reset()
	a, b := &thing{1}, &thing{2}

	assert.Equal(t, Name(a), Name(a), "names are stable for the same pointer")
	assert.NotEmpty(t, Name(b))

	var missing *thing
	assert.Equal(t, "Ø", Name(missing))
	assert.Equal(t, "Ø", Name(nil))
}
