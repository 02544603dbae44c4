package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapPreservesChain(t *testing.T) {
	wrapped := Wrap(errSentinel, "loading user")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, errSentinel, Cause(wrapped))
	assert.Equal(t, "loading user: sentinel", wrapped.Error())
}

func TestWrapfFormatsMessage(t *testing.T) {
	wrapped := Wrapf(errSentinel, "user %s", "u-1")

	assert.Equal(t, "user u-1: sentinel", wrapped.Error())
	assert.True(t, Is(wrapped, errSentinel))
}

func TestJoinMatchesEveryMember(t *testing.T) {
	other := New("other")
	joined := Join(errSentinel, other)

	assert.True(t, Is(joined, errSentinel))
	assert.True(t, Is(joined, other))
}

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsFindsTypedError(t *testing.T) {
	err := WithMessage(&codedError{code: "X"}, "context")

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, "X", target.code)
}
