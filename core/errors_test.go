package core

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EMALFORMED, "line %d", 7)
	assert.Equal(t, EMALFORMED, Code(err))
	assert.Equal(t, "line 7", UserMessage(err))
	assert.Equal(t, "[124] malformed table data: line 7", err.Error())
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, EINTERNAL, Code(io.EOF))
	assert.Equal(t, "internal error", UserMessage(io.EOF))
}

func TestWrappedErrors(t *testing.T) {
	err := WrapError(io.ErrUnexpectedEOF, EMISSING, "reading %s", "table")
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, EMISSING, Code(err))
	// codes survive further wrapping
	outer := fmt.Errorf("override: %w", err)
	assert.Equal(t, EMISSING, Code(outer))
	assert.Equal(t, "reading table", UserMessage(outer))
	//
	err = WrapError(nil, EINVALID, "no cause")
	assert.Equal(t, "[123] invalid: no cause", err.Error())
}
