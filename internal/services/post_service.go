package services

import (
	"devconnect_backend/internal/models"
	"devconnect_backend/internal/repositories"
	"devconnect_backend/internal/services/dto"
	"devconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PostService interface {
	Create(db *gorm.DB, userID string, req *dto.CreatePostRequest) (*models.Post, error)
	List(db *gorm.DB) ([]models.Post, error)
	Get(db *gorm.DB, postID string) (*models.Post, error)
	Delete(db *gorm.DB, postID, requesterID string) error

	Like(db *gorm.DB, postID, userID string) ([]models.Like, error)
	Unlike(db *gorm.DB, postID, userID string) ([]models.Like, error)

	AddComment(db *gorm.DB, postID, userID string, req *dto.AddCommentRequest) ([]models.Comment, error)
	RemoveComment(db *gorm.DB, postID, commentID, requesterID string) ([]models.Comment, error)
}

type PostServiceImpl struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
) PostService {
	return &PostServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create snapshots the author's name and avatar onto the post.
func (s *PostServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreatePostRequest) (*models.Post, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	post := &models.Post{
		UserID: userID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(db, post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *PostServiceImpl) List(db *gorm.DB) ([]models.Post, error) {
	posts, err := s.postRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posts, nil
}

func (s *PostServiceImpl) Get(db *gorm.DB, postID string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(db, postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

// Delete removes the post. Only the author may delete it.
func (s *PostServiceImpl) Delete(db *gorm.DB, postID, requesterID string) error {
	post, err := s.postRepo.FindByID(db, postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.InternalError(err)
	}

	if post.UserID != requesterID {
		return apperrors.ErrNotOwner
	}

	if err := s.postRepo.Delete(db, postID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Like adds the user to the post's like list; at most one like per user.
func (s *PostServiceImpl) Like(db *gorm.DB, postID, userID string) ([]models.Like, error) {
	if _, err := s.Get(db, postID); err != nil {
		return nil, err
	}

	liked, err := s.postRepo.HasLike(db, postID, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if liked {
		return nil, apperrors.ErrAlreadyLiked
	}

	if err := s.postRepo.AddLike(db, &models.Like{PostID: postID, UserID: userID}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	likes, err := s.postRepo.ListLikes(db, postID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return likes, nil
}

func (s *PostServiceImpl) Unlike(db *gorm.DB, postID, userID string) ([]models.Like, error) {
	if _, err := s.Get(db, postID); err != nil {
		return nil, err
	}

	if err := s.postRepo.RemoveLike(db, postID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrLikeNotFound) {
			return nil, apperrors.ErrNotLiked
		}
		return nil, apperrors.InternalError(err)
	}

	likes, err := s.postRepo.ListLikes(db, postID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return likes, nil
}

// AddComment prepends a comment with the commenter's name/avatar snapshot
// and returns the newest-first comment list.
func (s *PostServiceImpl) AddComment(db *gorm.DB, postID, userID string, req *dto.AddCommentRequest) ([]models.Comment, error) {
	if _, err := s.Get(db, postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.AddComment(db, comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	comments, err := s.postRepo.ListComments(db, postID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return comments, nil
}

// RemoveComment deletes a comment; only its own author may remove it.
func (s *PostServiceImpl) RemoveComment(db *gorm.DB, postID, commentID, requesterID string) ([]models.Comment, error) {
	comment, err := s.postRepo.FindComment(db, postID, commentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if comment.UserID != requesterID {
		return nil, apperrors.ErrNotOwner
	}

	if err := s.postRepo.RemoveComment(db, postID, commentID, requesterID); err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comments, err := s.postRepo.ListComments(db, postID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return comments, nil
}
