package services_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"devconnect_backend/internal/app"
	"devconnect_backend/internal/config"
	"devconnect_backend/internal/models"
	"devconnect_backend/internal/repositories"
	"devconnect_backend/internal/services"
	"devconnect_backend/internal/services/dto"
	"devconnect_backend/pkg/webnorm"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test_secret_key"
	config.AppConfig.JWT.TTL = config.DefaultTokenTTLHours
	os.Exit(m.Run())
}

// newTestDB opens a fresh in-memory database with the full schema. One
// open connection, so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, app.Migrate(db))
	return db
}

func newServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	postRepo := repositories.NewPostRepository()

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo),
		UserService:    services.NewUserService(userRepo, profileRepo, postRepo),
		ProfileService: services.NewProfileService(profileRepo, userRepo),
		PostService:    services.NewPostService(postRepo, userRepo),
	}
}

var userSeq int64

// registerUser creates an account through the real registration path and
// returns the stored user.
func registerUser(t *testing.T, svc *services.ServiceContainer, db *gorm.DB, name string) *models.User {
	t.Helper()

	userSeq++
	resp, err := svc.AuthService.Register(db, &dto.RegisterRequest{
		Name:     name,
		Email:    fmt.Sprintf("%s_%d_%d@test.com", name, userSeq, time.Now().UnixNano()),
		Password: "super_password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return resp.User
}

func createProfile(t *testing.T, svc *services.ServiceContainer, db *gorm.DB, userID string) *models.Profile {
	t.Helper()

	profile, err := svc.ProfileService.Upsert(db, userID, &dto.UpsertProfileRequest{
		Status: "Developer",
		Skills: webnorm.SkillList{"Go"},
	})
	require.NoError(t, err)
	return profile
}
