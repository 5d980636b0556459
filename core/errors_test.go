package core

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(fmt.Errorf("plain")))
	err := Error(EMISSING, "font %s not found", "Arial")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "font Arial not found", UserMessage(err))
	assert.Equal(t, "[122] not found", err.Error())
}

func TestWrappedCodes(t *testing.T) {
	cause := errors.New("disk on fire")
	err := WrapError(cause, EINVALID, "cannot read %s", "x.ttf")
	wrapped := errors.Wrap(err, "loading")
	assert.Equal(t, EINVALID, Code(wrapped))
	assert.True(t, Is(wrapped, EINVALID))
	assert.False(t, Is(wrapped, ESTALE))
	assert.Equal(t, cause, errors.Cause(err.(codedError).Unwrap()))
	assert.True(t, Is(nil, NOERROR))
	assert.False(t, Is(cause, NOERROR))
}

func TestErrorWithCodeOnNil(t *testing.T) {
	err := ErrorWithCode(nil, ENOSURFACE)
	assert.Equal(t, ENOSURFACE, Code(err))
	assert.Equal(t, "no surface", UserMessage(err))
}

func TestUndefinedCode(t *testing.T) {
	err := Error(999, "odd")
	assert.Equal(t, 999, Code(err))
	assert.Equal(t, "[999] undefined error", err.Error())
	assert.Equal(t, "invalid", UserMessage(ErrorWithCode(fmt.Errorf("x"), EINVALID)))
}
