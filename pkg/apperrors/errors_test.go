package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("row not found")
	appErr := Wrap(cause, CodeNotFound, "posts", "Post not found", http.StatusNotFound)

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "Post not found")
	assert.Contains(t, appErr.Error(), "row not found")
}

func TestMarshalHidesInternals(t *testing.T) {
	t.Parallel()

	appErr := Wrap(errors.New("pq: connection refused"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "connection refused")
	assert.Contains(t, string(data), "INTERNAL_ERROR")
}

func TestHandleErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", ErrInvalidCredentials, http.StatusBadRequest},
		{"duplicate email", ErrEmailAlreadyExists, http.StatusBadRequest},
		{"profile missing", ErrProfileNotFound, http.StatusNotFound},
		{"not owner", ErrNotOwner, http.StatusForbidden},
		{"already liked", ErrAlreadyLiked, http.StatusBadRequest},
		{"github failure", ErrGithubProfileNotFound, http.StatusNotFound},
		{"plain error becomes 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleError(c, tc.err)
			assert.Equal(t, tc.code, w.Code)

			var envelope ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			require.NotNil(t, envelope.Error)
			assert.NotEmpty(t, envelope.Error.Message)
		})
	}
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	t.Parallel()

	appErr := ValidationError(map[string]string{"email": "Must be a valid email address"})
	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Must be a valid email address")
}
