package apperrors

import (
	"net/http"
)

// Predefined domain errors. Messages are part of the wire contract: the
// login failure message is identical for unknown email and wrong password
// so that responses do not reveal which accounts exist.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid Credentials",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusBadRequest,
)

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

var ErrPostNotFound = New(
	CodeNotFound,
	"posts",
	"Post not found",
	http.StatusNotFound,
)

var ErrCommentNotFound = New(
	CodeNotFound,
	"posts",
	"Comment not found",
	http.StatusNotFound,
)

var ErrAlreadyLiked = New(
	CodeConflict,
	"posts",
	"Post already liked",
	http.StatusBadRequest,
)

var ErrNotLiked = New(
	CodeConflict,
	"posts",
	"Post has not yet been liked",
	http.StatusBadRequest,
)

// ErrNotOwner covers both post and comment ownership violations.
var ErrNotOwner = New(
	CodeForbidden,
	"posts",
	"User not authorized",
	http.StatusForbidden,
)

var ErrGithubProfileNotFound = New(
	CodeExternalServiceError,
	"github",
	"No Github profile found",
	http.StatusNotFound,
)

// ErrNotFound wraps a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}
