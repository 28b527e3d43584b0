package repositories

import (
	"errors"

	"devconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrLikeNotFound    = errors.New("like not found")
)

type PostRepository interface {
	Create(db *gorm.DB, post *models.Post) error
	FindAll(db *gorm.DB) ([]models.Post, error)
	FindByID(db *gorm.DB, id string) (*models.Post, error)
	Delete(db *gorm.DB, id string) error

	HasLike(db *gorm.DB, postID, userID string) (bool, error)
	AddLike(db *gorm.DB, like *models.Like) error
	RemoveLike(db *gorm.DB, postID, userID string) error
	ListLikes(db *gorm.DB, postID string) ([]models.Like, error)

	AddComment(db *gorm.DB, comment *models.Comment) error
	FindComment(db *gorm.DB, postID, commentID string) (*models.Comment, error)
	RemoveComment(db *gorm.DB, postID, commentID, userID string) error
	ListComments(db *gorm.DB, postID string) ([]models.Comment, error)

	DeleteByAuthor(db *gorm.DB, userID string) error
}

type PostRepositoryImpl struct{}

func NewPostRepository() PostRepository {
	return &PostRepositoryImpl{}
}

func (r *PostRepositoryImpl) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Likes", newestFirst).
		Preload("Comments", newestFirst)
}

func (r *PostRepositoryImpl) Create(db *gorm.DB, post *models.Post) error {
	return db.Create(post).Error
}

func (r *PostRepositoryImpl) FindAll(db *gorm.DB) ([]models.Post, error) {
	var posts []models.Post
	err := r.withAssociations(db).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Post, error) {
	var post models.Post
	err := r.withAssociations(db).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) Delete(db *gorm.DB, id string) error {
	if err := db.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
		return err
	}
	if err := db.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Post{}, "id = ?", id).Error
}

func (r *PostRepositoryImpl) HasLike(db *gorm.DB, postID, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *PostRepositoryImpl) AddLike(db *gorm.DB, like *models.Like) error {
	return db.Create(like).Error
}

// RemoveLike is a conditional single-row delete; zero rows affected means
// the user never liked the post.
func (r *PostRepositoryImpl) RemoveLike(db *gorm.DB, postID, userID string) error {
	result := db.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) ListLikes(db *gorm.DB, postID string) ([]models.Like, error) {
	var likes []models.Like
	err := db.Where("post_id = ?", postID).Order("created_at DESC").Find(&likes).Error
	return likes, err
}

func (r *PostRepositoryImpl) AddComment(db *gorm.DB, comment *models.Comment) error {
	return db.Create(comment).Error
}

func (r *PostRepositoryImpl) FindComment(db *gorm.DB, postID, commentID string) (*models.Comment, error) {
	var comment models.Comment
	err := db.Where("id = ? AND post_id = ?", commentID, postID).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// RemoveComment deletes by id, post and author in one conditional statement,
// mirroring a pull-by-id-and-owner update.
func (r *PostRepositoryImpl) RemoveComment(db *gorm.DB, postID, commentID, userID string) error {
	result := db.Where("id = ? AND post_id = ? AND user_id = ?", commentID, postID, userID).
		Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) ListComments(db *gorm.DB, postID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// DeleteByAuthor removes every post the user wrote together with the likes
// and comments embedded in those posts.
func (r *PostRepositoryImpl) DeleteByAuthor(db *gorm.DB, userID string) error {
	var postIDs []string
	err := db.Model(&models.Post{}).Where("user_id = ?", userID).
		Pluck("id", &postIDs).Error
	if err != nil {
		return err
	}
	if len(postIDs) == 0 {
		return nil
	}

	if err := db.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
		return err
	}
	if err := db.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return db.Where("user_id = ?", userID).Delete(&models.Post{}).Error
}
