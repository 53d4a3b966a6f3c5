package cliutil_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/queuectl/queuectl/cmd/cliutil"
)

func TestCode(t *testing.T) {
	assert.Equal(t, 0, cliutil.Code(nil))
	assert.Equal(t, 1, cliutil.Code(errors.New("plain")))
	assert.Equal(t, 2, cliutil.Code(cliutil.Exitf(2, "bad input")))

	wrapped := fmt.Errorf("context: %w", cliutil.Exit(2, errors.New("inner")))
	assert.Equal(t, 2, cliutil.Code(wrapped))
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := cliutil.Exit(1, inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "inner", err.Error())
}
