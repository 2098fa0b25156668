package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	err := NotFound("FetchVault", "vault %s not initialized", "abc")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrTransient))
	assert.Equal(t, KindNotFound, KindOf(err))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Contains(t, err.Error(), "FetchVault: NotFound: vault abc not initialized")
}

func TestWrapKeepsExistingKind(t *testing.T) {
	inner := InvalidInput("GetPythOracle", "bad feed")
	assert.Equal(t, KindInvalidInput, KindOf(Wrap(KindTransient, "outer", inner)))

	plain := errors.New("connection reset")
	wrapped := Wrap(KindTransient, "FetchAccount", plain)
	assert.True(t, IsKind(wrapped, KindTransient))
	assert.True(t, errors.Is(wrapped, plain))
	assert.Nil(t, Wrap(KindTransient, "noop", nil))
}

func TestErrorStack(t *testing.T) {
	err := InvalidParameter("Repay", "target health %d", 101)
	assert.Contains(t, err.ErrorStack(), "target health 101")
	assert.Equal(t, KindUnknown, KindOf(errors.New("x")))
	assert.Equal(t, "Unknown", KindUnknown.String())
}
