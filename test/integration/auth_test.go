package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"devconnect_backend/internal/models"
	"devconnect_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLoadUser(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"name":     "Ada Lovelace",
		"email":    "ada_register@test.com",
		"password": "super_password123",
	}
	regRes, regBodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/users", "", registerBody)
	require.Equal(t, http.StatusOK, regRes.Code, regBodyStr)

	var tokenResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(regBodyStr), &tokenResponse))
	require.NotEmpty(t, tokenResponse.Token)

	// The token immediately authenticates GET /api/auth.
	meRes, meBodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/auth", tokenResponse.Token, nil)
	assert.Equal(t, http.StatusOK, meRes.Code)
	assert.Contains(t, meBodyStr, "ada_register@test.com")
	assert.Contains(t, meBodyStr, "gravatar.com/avatar")
	assert.NotContains(t, meBodyStr, "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Name:         "User One",
		Email:        "duplicate@test.com",
		PasswordHash: "super_password123",
	})
	require.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"name":     "User Two",
		"email":    "duplicate@test.com",
		"password": "another_password123",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/users", "", duplicateBody)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, bodyStr, "User already exists")
}

func TestRegisterValidation(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	badBody := map[string]interface{}{
		"email":    "not-an-email",
		"password": "x",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/users", "", badBody)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, bodyStr, "name")
	assert.Contains(t, bodyStr, "email")
	assert.Contains(t, bodyStr, "password")
}

func TestLoginBadCredentials(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, user := helpers.CreateAndLoginUser(t, ts, tx, "ada")

	// Wrong password and unknown email produce the identical response.
	wrongPassword := map[string]interface{}{"email": user.Email, "password": "wrong_password"}
	res1, body1 := ts.SendRequest(t, tx, http.MethodPost, "/api/auth", "", wrongPassword)

	unknownEmail := map[string]interface{}{"email": "nobody@test.com", "password": "super_password123"}
	res2, body2 := ts.SendRequest(t, tx, http.MethodPost, "/api/auth", "", unknownEmail)

	assert.Equal(t, http.StatusBadRequest, res1.Code)
	assert.Equal(t, http.StatusBadRequest, res2.Code)
	assert.Contains(t, body1, "Invalid Credentials")
	assert.Equal(t, body1, body2)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/auth", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, bodyStr, "No token, authorization denied")

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/auth", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, bodyStr, "Token is not valid")
}
