// Package github is a thin client for the public GitHub REST API, used to
// proxy a user's most recent repositories onto their profile page.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Repo is the subset of repository fields the profile page renders.
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}

type Client struct {
	apiBase    string
	token      string
	httpClient *http.Client
}

func NewClient(apiBase, token string) *Client {
	return &Client{
		apiBase: apiBase,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListUserRepos fetches the user's 5 most recently created public repos.
func (c *Client) ListUserRepos(ctx context.Context, username string) ([]Repo, error) {
	uri := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		c.apiBase, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "devconnect-backend")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github responded with status %d", resp.StatusCode)
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, err
	}
	return repos, nil
}
