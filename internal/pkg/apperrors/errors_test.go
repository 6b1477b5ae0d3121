package apperrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictSentinelsWrapConflict(t *testing.T) {
	assert.ErrorIs(t, ErrUsernameAlreadyExists, ErrConflict)
	assert.ErrorIs(t, fmt.Errorf("register: %w", ErrEmailAlreadyExists), ErrConflict)
}

func TestCustomErrorChain(t *testing.T) {
	err := fmt.Errorf("create course: %w", NewReferenceError("instructor", 42))

	assert.ErrorIs(t, err, ErrReferenceNotFound)
	assert.Equal(t, `create course: Invalid pk "42" - object does not exist.`, err.Error())

	ce, ok := AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, "instructor", ce.Field)
}

func TestCustomErrorMessageFallback(t *testing.T) {
	assert.Equal(t, "resource not found", (&CustomError{Err: ErrResourceNotFound}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}
