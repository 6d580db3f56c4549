package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("no historical data for term")
	err := Wrap(cause, CodeUnprocessable, "resolve vote role")

	assert.True(t, HasCode(err, CodeUnprocessable))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "resolve vote role: no historical data for term", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, CodeInternal, "nothing"))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(New(CodeNotFound, "missing")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
	assert.False(t, Is(errors.New("plain"), CodeNotFound))
}
