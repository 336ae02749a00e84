package teibow_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/teibow"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := teibow.Errorf(teibow.ENOTFOUND, "run %q not found", "test")

	assert.Equal(t, teibow.ENOTFOUND, teibow.ErrorCode(err))
	assert.Equal(t, "run \"test\" not found", teibow.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, teibow.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, teibow.EINTERNAL, teibow.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, teibow.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", teibow.ErrorMessage(errors.New("boom")))
}
