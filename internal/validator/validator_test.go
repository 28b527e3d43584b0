package validator

import (
	"testing"

	"devconnect_backend/internal/services/dto"
	"devconnect_backend/pkg/webnorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	t.Parallel()
	v := New()

	err := v.Validate(&dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "super_password123",
	})
	assert.NoError(t, err)

	err = v.Validate(&dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "x",
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// Field names come from the json tags.
	assert.Equal(t, "This field is required", verr.Errors["name"])
	assert.Equal(t, "Must be a valid email address", verr.Errors["email"])
	assert.Contains(t, verr.Errors["password"], "at least 6")
}

func TestValidateProfileRequest(t *testing.T) {
	t.Parallel()
	v := New()

	err := v.Validate(&dto.UpsertProfileRequest{})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors, "status")
	assert.Contains(t, verr.Errors, "skills")

	err = v.Validate(&dto.UpsertProfileRequest{
		Status: "Developer",
		Skills: webnorm.SkillList{"Go"},
	})
	assert.NoError(t, err)
}
