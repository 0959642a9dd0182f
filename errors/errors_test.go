package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmapper/errors"
)

func TestInvalid_WrapsRootClass(t *testing.T) {
	sentinel := errors.Invalid("cover: overlap must be in [0,1)")
	wrapped := errors.Wrapf(sentinel, "overlap=%v", 1.5)

	assert.True(t, errors.IsInvalidConfiguration(wrapped))
	assert.False(t, errors.IsEmptyInput(wrapped))
	// stdlib errors.Is walks the same Unwrap chain
	assert.True(t, stderrors.Is(wrapped, sentinel))
	assert.True(t, stderrors.Is(wrapped, errors.ErrInvalidConfiguration))
	assert.Contains(t, wrapped.Error(), "cover: overlap must be in [0,1)")
}

func TestClassHelpers_Nil(t *testing.T) {
	assert.False(t, errors.IsInvalidConfiguration(nil))
	assert.False(t, errors.IsEmptyInput(nil))
}

func TestHints(t *testing.T) {
	err := errors.WithHint(errors.ErrEmptyInput, "pass a CSV with at least one row")
	assert.True(t, errors.IsEmptyInput(err))
	assert.Equal(t, "pass a CSV with at least one row", errors.FlattenHints(err))
}
