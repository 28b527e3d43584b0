package dto

// CreatePostRequest adds a short text post.
type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

// AddCommentRequest adds a comment under a post.
type AddCommentRequest struct {
	Text string `json:"text" validate:"required"`
}
