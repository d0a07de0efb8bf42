package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct {
	code int
}

func (e *codedError) Error() string {
	return fmt.Sprintf("code %d", e.code)
}

func TestAsType(t *testing.T) {
	base := &codedError{code: 7}
	wrapped := Wrap(Wrapf(base, "layer %d", 1), "outer")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsIdentity(t *testing.T) {
	sentinel := New("sentinel")

	assert.True(t, Is(Wrap(sentinel, "context"), sentinel))
	assert.True(t, Is(WithStack(sentinel), sentinel))
	assert.True(t, Is(Join(New("other"), sentinel), sentinel))
	assert.Nil(t, Wrap(nil, "nothing"))
}
