package errno

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapfKeepsKind(t *testing.T) {
	err := ErrInvalidArgument.Wrapf("bad length %d", 31)

	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrInvalidState))
	assert.Equal(t, "invalid argument: bad length 31", err.Error())
	assert.True(t, IsArgument(fmt.Errorf("outer: %w", err)))
}

func TestDecode(t *testing.T) {
	code, msg := Decode(nil)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Success", msg)

	code, msg = Decode(ErrInvalidState.Wrapf("mac mismatch"))
	assert.Equal(t, 40901, code)
	assert.Equal(t, "invalid state: mac mismatch", msg)

	code, _ = Decode(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, code)
}
