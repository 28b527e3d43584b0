package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"devconnect_backend/internal/gravatar"
	"devconnect_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user directly into tx, hashing the raw password
// passed in PasswordHash.
func CreateUser(t *testing.T, tx *gorm.DB, user *models.User) error {
	t.Helper()

	raw := user.PasswordHash
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user.PasswordHash = string(hashed)
	if user.Avatar == "" {
		user.Avatar = gravatar.URL(user.Email)
	}

	if err := tx.Create(user).Error; err != nil {
		return err
	}

	// Hand the raw password back for the login step.
	user.PasswordHash = raw
	return nil
}

// CreateAndLoginUser creates a user with a unique email and logs in
// through the API, returning the session token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, name string) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s_%d@test.com", name, time.Now().UnixNano()),
		PasswordHash: "super_password123",
	}
	require.NoError(t, CreateUser(t, tx, user))

	loginBody := map[string]interface{}{
		"email":    user.Email,
		"password": "super_password123",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/auth", "", loginBody)
	require.Equal(t, http.StatusOK, res.Code, "login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	assert.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateProfileFor gives the user a minimal profile through the API.
func CreateProfileFor(t *testing.T, ts *TestServer, tx *gorm.DB, token string) {
	t.Helper()

	body := map[string]interface{}{
		"status": "Developer",
		"skills": "Go,SQL",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/profile", token, body)
	require.Equal(t, http.StatusOK, res.Code, "profile upsert should succeed, got: "+bodyStr)
}
