package repositories

import (
	"errors"

	"devconnect_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Upsert(db *gorm.DB, profile *models.Profile) (*models.Profile, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	FindAll(db *gorm.DB) ([]models.Profile, error)

	AddExperience(db *gorm.DB, userID string, entry *models.Experience) (*models.Profile, error)
	RemoveExperience(db *gorm.DB, userID, entryID string) (*models.Profile, error)
	AddEducation(db *gorm.DB, userID string, entry *models.Education) (*models.Profile, error)
	RemoveEducation(db *gorm.DB, userID, entryID string) (*models.Profile, error)

	DeleteByUserID(db *gorm.DB, userID string) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// newestFirst orders child collections so prepended entries come back first.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func (r *ProfileRepositoryImpl) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Experience", newestFirst).
		Preload("Education", newestFirst)
}

// Upsert creates the profile on first submission and afterwards replaces the
// top-level fields in place. It never touches the experience or education
// collections.
func (r *ProfileRepositoryImpl) Upsert(db *gorm.DB, profile *models.Profile) (*models.Profile, error) {
	var existing models.Profile
	err := db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err := db.Create(profile).Error; err != nil {
			return nil, err
		}
		return r.FindByUserID(db, profile.UserID)
	}

	updates := map[string]interface{}{
		"company":          profile.Company,
		"website":          profile.Website,
		"location":         profile.Location,
		"status":           profile.Status,
		"skills":           profile.Skills,
		"bio":              profile.Bio,
		"github_username":  profile.GithubUsername,
		"social_youtube":   profile.Social.Youtube,
		"social_twitter":   profile.Social.Twitter,
		"social_instagram": profile.Social.Instagram,
		"social_linkedin":  profile.Social.Linkedin,
		"social_facebook":  profile.Social.Facebook,
	}
	if err := db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByUserID(db, profile.UserID)
}

func (r *ProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.withAssociations(db).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindAll(db *gorm.DB) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.withAssociations(db).Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) AddExperience(db *gorm.DB, userID string, entry *models.Experience) (*models.Profile, error) {
	profile, err := r.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	entry.ProfileID = profile.ID
	if err := db.Create(entry).Error; err != nil {
		return nil, err
	}
	return r.FindByUserID(db, userID)
}

// RemoveExperience deletes the entry by id within the owner's profile.
// An absent id is a no-op: the unchanged profile is returned.
func (r *ProfileRepositoryImpl) RemoveExperience(db *gorm.DB, userID, entryID string) (*models.Profile, error) {
	profile, err := r.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	err = db.Where("id = ? AND profile_id = ?", entryID, profile.ID).
		Delete(&models.Experience{}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByUserID(db, userID)
}

func (r *ProfileRepositoryImpl) AddEducation(db *gorm.DB, userID string, entry *models.Education) (*models.Profile, error) {
	profile, err := r.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	entry.ProfileID = profile.ID
	if err := db.Create(entry).Error; err != nil {
		return nil, err
	}
	return r.FindByUserID(db, userID)
}

func (r *ProfileRepositoryImpl) RemoveEducation(db *gorm.DB, userID, entryID string) (*models.Profile, error) {
	profile, err := r.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	err = db.Where("id = ? AND profile_id = ?", entryID, profile.ID).
		Delete(&models.Education{}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByUserID(db, userID)
}

// DeleteByUserID removes the profile and its child collections. Missing
// profile is not an error so account deletion stays idempotent.
func (r *ProfileRepositoryImpl) DeleteByUserID(db *gorm.DB, userID string) error {
	var profile models.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := db.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
		return err
	}
	if err := db.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
		return err
	}
	return db.Delete(&profile).Error
}
