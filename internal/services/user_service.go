package services

import (
	"devconnect_backend/internal/logger"
	"devconnect_backend/internal/repositories"
	"devconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	DeleteAccount(db *gorm.DB, userID string) error
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	postRepo    repositories.PostRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	postRepo repositories.PostRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		postRepo:    postRepo,
	}
}

// DeleteAccount removes the user's posts, then the profile, then the user
// record itself. The three deletes are sequential and not wrapped in a
// transaction; a partial failure leaves earlier deletes in place.
func (s *UserServiceImpl) DeleteAccount(db *gorm.DB, userID string) error {
	if err := s.postRepo.DeleteByAuthor(db, userID); err != nil {
		logger.Error("failed to delete user posts", "user_id", userID, "error", err)
		return apperrors.InternalError(err)
	}

	if err := s.profileRepo.DeleteByUserID(db, userID); err != nil {
		logger.Error("failed to delete user profile", "user_id", userID, "error", err)
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.Delete(db, userID); err != nil {
		logger.Error("failed to delete user", "user_id", userID, "error", err)
		return apperrors.InternalError(err)
	}

	return nil
}
