package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `json:"username" validate:"username"`
	Status   string `json:"status" validate:"omitempty,enrollment_status"`
}

func TestIsValidUsername(t *testing.T) {
	for _, ok := range []string{"juan", "maria.santos", "a@b", "x+y-z_1"} {
		assert.True(t, IsValidUsername(ok), ok)
	}
	for _, bad := range []string{"", "has space", "semi;colon", strings.Repeat("a", 151)} {
		assert.False(t, IsValidUsername(bad), bad)
	}
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	assert.NoError(t, v.Struct(sample{Username: "juan", Status: "Completed"}))
	assert.NoError(t, v.Struct(sample{Username: "juan"}))

	err := v.Struct(sample{Username: "bad name", Status: "Failed"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, "username", verrs[0].Field())
	assert.Equal(t, TagUsername, verrs[0].Tag())
	assert.Equal(t, "status", verrs[1].Field())
	assert.Equal(t, TagEnrollmentStatus, verrs[1].Tag())
}
