package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClientFault(t *testing.T) {
	assert.True(t, IsClientFault(ErrInvalidInput))
	assert.True(t, IsClientFault(ErrDuplicateIdentity))
	assert.True(t, IsClientFault(ErrInvalidCredentials))
	assert.False(t, IsClientFault(ErrOrderPlacementFailed))
	assert.False(t, IsClientFault(errors.New("connection reset")))
	assert.False(t, IsClientFault(nil))
}

func TestIsClientFault_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	assert.True(t, IsClientFault(wrapped))

	doubleWrapped := fmt.Errorf("%w: %w", ErrOrderPlacementFailed, errors.New("connection reset"))
	assert.False(t, IsClientFault(doubleWrapped))
	assert.True(t, errors.Is(doubleWrapped, ErrOrderPlacementFailed))
}
