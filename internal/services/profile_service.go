package services

import (
	"devconnect_backend/internal/models"
	"devconnect_backend/internal/repositories"
	"devconnect_backend/internal/services/dto"
	"devconnect_backend/pkg/apperrors"
	"devconnect_backend/pkg/webnorm"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ProfileService interface {
	Upsert(db *gorm.DB, userID string, req *dto.UpsertProfileRequest) (*models.Profile, error)
	GetByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	List(db *gorm.DB) ([]models.Profile, error)

	AddExperience(db *gorm.DB, userID string, req *dto.AddExperienceRequest) (*models.Profile, error)
	RemoveExperience(db *gorm.DB, userID, entryID string) (*models.Profile, error)
	AddEducation(db *gorm.DB, userID string, req *dto.AddEducationRequest) (*models.Profile, error)
	RemoveEducation(db *gorm.DB, userID, entryID string) (*models.Profile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Upsert creates or replaces the profile's top-level fields. URL-shaped
// fields are forced to canonical https form; skills arrive already
// normalized by the SkillList decoder.
func (s *ProfileServiceImpl) Upsert(db *gorm.DB, userID string, req *dto.UpsertProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:         userID,
		Company:        req.Company,
		Website:        webnorm.NormalizeURL(req.Website),
		Location:       req.Location,
		Status:         req.Status,
		Skills:         pq.StringArray(req.Skills),
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social: models.SocialLinks{
			Youtube:   webnorm.NormalizeURL(req.Youtube),
			Twitter:   webnorm.NormalizeURL(req.Twitter),
			Instagram: webnorm.NormalizeURL(req.Instagram),
			Linkedin:  webnorm.NormalizeURL(req.Linkedin),
			Facebook:  webnorm.NormalizeURL(req.Facebook),
		},
	}

	updated, err := s.profileRepo.Upsert(db, profile)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *ProfileServiceImpl) GetByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) List(db *gorm.DB) ([]models.Profile, error) {
	profiles, err := s.profileRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profiles, nil
}

func (s *ProfileServiceImpl) AddExperience(db *gorm.DB, userID string, req *dto.AddExperienceRequest) (*models.Profile, error) {
	entry := &models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}

	profile, err := s.profileRepo.AddExperience(db, userID, entry)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) RemoveExperience(db *gorm.DB, userID, entryID string) (*models.Profile, error) {
	profile, err := s.profileRepo.RemoveExperience(db, userID, entryID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) AddEducation(db *gorm.DB, userID string, req *dto.AddEducationRequest) (*models.Profile, error) {
	entry := &models.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}

	profile, err := s.profileRepo.AddEducation(db, userID, entry)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) RemoveEducation(db *gorm.DB, userID, entryID string) (*models.Profile, error) {
	profile, err := s.profileRepo.RemoveEducation(db, userID, entryID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
