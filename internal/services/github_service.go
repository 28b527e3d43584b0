package services

import (
	"context"

	"devconnect_backend/internal/github"
	"devconnect_backend/internal/logger"
	"devconnect_backend/pkg/apperrors"
)

type GithubService interface {
	ListUserRepos(ctx context.Context, username string) ([]github.Repo, error)
}

type GithubServiceImpl struct {
	client *github.Client
}

func NewGithubService(client *github.Client) GithubService {
	return &GithubServiceImpl{client: client}
}

// ListUserRepos proxies the upstream API. Any upstream failure surfaces as
// the same "no profile" error the UI expects.
func (s *GithubServiceImpl) ListUserRepos(ctx context.Context, username string) ([]github.Repo, error) {
	repos, err := s.client.ListUserRepos(ctx, username)
	if err != nil {
		logger.CtxWarn(ctx, "github repos lookup failed", "username", username, "error", err.Error())
		return nil, apperrors.ErrGithubProfileNotFound
	}
	return repos, nil
}
