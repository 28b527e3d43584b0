package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// TokenHeader carries the JWT on authenticated requests.
const TokenHeader = "X-Auth-Token"

// APIError is a decoded server error envelope.
type APIError struct {
	StatusCode int
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

type errorEnvelope struct {
	Error APIError `json:"error"`
}

// Client talks to the devconnect API and keeps the Store in sync. Every
// call dispatches the matching success or failure actions into the store.
type Client struct {
	baseURL string
	http    *http.Client
	store   *Store
	tokens  TokenStorage
}

// NewClient builds a client against baseURL ("http://host:port", no
// trailing slash needed). storage may be nil, in which case the token
// lives only in memory.
func NewClient(baseURL string, store *Store, storage TokenStorage) *Client {
	if storage == nil {
		storage = NewMemoryTokenStorage()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		store:   store,
		tokens:  storage,
	}
}

func (c *Client) Store() *Store { return c.store }

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, _ := c.tokens.Load(); token != "" {
		req.Header.Set(TokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env errorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr == nil {
			env.Error.StatusCode = resp.StatusCode
			apiErr = &env.Error
		}
		return apiErr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// alertFailure pushes one alert per server validation message, or a single
// alert with the error message when no field details came back.
func (c *Client) alertFailure(err error) {
	apiErr, ok := err.(*APIError)
	if !ok {
		c.store.SetAlert(err.Error(), AlertDanger)
		return
	}
	if len(apiErr.Details) == 0 {
		c.store.SetAlert(apiErr.Error(), AlertDanger)
		return
	}
	fields := make([]string, 0, len(apiErr.Details))
	for field := range apiErr.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		c.store.SetAlert(apiErr.Details[field], AlertDanger)
	}
}

// --- auth -------------------------------------------------------------

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates an account, stores the returned token and loads the
// current user.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/users", body, &resp); err != nil {
		c.alertFailure(err)
		c.store.Dispatch(authFailed{})
		return err
	}
	c.tokens.Save(resp.Token)
	c.store.Dispatch(registerSucceeded{token: resp.Token})
	return c.LoadUser(ctx)
}

// Login exchanges credentials for a token, stores it and loads the
// current user.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth", body, &resp); err != nil {
		c.alertFailure(err)
		c.store.Dispatch(authFailed{})
		return err
	}
	c.tokens.Save(resp.Token)
	c.store.Dispatch(loginSucceeded{token: resp.Token})
	return c.LoadUser(ctx)
}

// LoadUser fetches the authenticated user for the stored token.
func (c *Client) LoadUser(ctx context.Context) error {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth", nil, &user); err != nil {
		c.store.Dispatch(authFailed{})
		return err
	}
	c.store.Dispatch(userLoaded{user: &user})
	return nil
}

// Logout drops the stored token and clears auth and profile state.
func (c *Client) Logout() error {
	err := c.tokens.Clear()
	c.store.Dispatch(profileCleared{})
	c.store.Dispatch(authFailed{})
	return err
}

// --- profiles ---------------------------------------------------------

// GetCurrentProfile loads the authenticated user's profile.
func (c *Client) GetCurrentProfile(ctx context.Context) error {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/profile/me", nil, &profile); err != nil {
		c.store.Dispatch(profileCleared{})
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(profileLoaded{profile: &profile})
	return nil
}

// GetProfiles loads every profile.
func (c *Client) GetProfiles(ctx context.Context) error {
	var profiles []Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &profiles); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(profilesLoaded{profiles: profiles})
	return nil
}

// GetProfileByUserID loads the profile belonging to one user.
func (c *Client) GetProfileByUserID(ctx context.Context, userID string) error {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/profile/user/"+userID, nil, &profile); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(profileLoaded{profile: &profile})
	return nil
}

// GetGithubRepos loads the latest repositories for a GitHub username.
func (c *Client) GetGithubRepos(ctx context.Context, username string) error {
	var repos []Repo
	if err := c.do(ctx, http.MethodGet, "/profile/github/"+username, nil, &repos); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(reposLoaded{repos: repos})
	return nil
}

// ProfileInput is the upsert payload. Skills accepts a comma separated
// string or a list on the server, the SDK always sends a list.
type ProfileInput struct {
	Company        string   `json:"company,omitempty"`
	Website        string   `json:"website,omitempty"`
	Location       string   `json:"location,omitempty"`
	Status         string   `json:"status"`
	Skills         []string `json:"skills"`
	Bio            string   `json:"bio,omitempty"`
	GithubUsername string   `json:"githubusername,omitempty"`
	Youtube        string   `json:"youtube,omitempty"`
	Twitter        string   `json:"twitter,omitempty"`
	Instagram      string   `json:"instagram,omitempty"`
	Linkedin       string   `json:"linkedin,omitempty"`
	Facebook       string   `json:"facebook,omitempty"`
}

// UpsertProfile creates or updates the authenticated user's profile.
func (c *Client) UpsertProfile(ctx context.Context, input ProfileInput) error {
	var profile Profile
	if err := c.do(ctx, http.MethodPost, "/profile", input, &profile); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(profileLoaded{profile: &profile})
	c.store.SetAlert("Profile Updated", AlertSuccess)
	return nil
}

// ExperienceInput is the add-experience payload.
type ExperienceInput struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// AddExperience prepends an experience entry to the profile.
func (c *Client) AddExperience(ctx context.Context, input ExperienceInput) error {
	var profile Profile
	if err := c.do(ctx, http.MethodPut, "/profile/experience", input, &profile); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(profileLoaded{profile: &profile})
	c.store.SetAlert("Experience Added", AlertSuccess)
	return nil
}

// DeleteExperience removes an experience entry from the profile.
func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	var profile Profile
	if err := c.do(ctx, http.MethodDelete, "/profile/experience/"+id, nil, &profile); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(profileLoaded{profile: &profile})
	c.store.SetAlert("Experience Removed", AlertSuccess)
	return nil
}

// EducationInput is the add-education payload.
type EducationInput struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// AddEducation prepends an education entry to the profile.
func (c *Client) AddEducation(ctx context.Context, input EducationInput) error {
	var profile Profile
	if err := c.do(ctx, http.MethodPut, "/profile/education", input, &profile); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(profileLoaded{profile: &profile})
	c.store.SetAlert("Education Added", AlertSuccess)
	return nil
}

// DeleteEducation removes an education entry from the profile.
func (c *Client) DeleteEducation(ctx context.Context, id string) error {
	var profile Profile
	if err := c.do(ctx, http.MethodDelete, "/profile/education/"+id, nil, &profile); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(profileLoaded{profile: &profile})
	c.store.SetAlert("Education Removed", AlertSuccess)
	return nil
}

// DeleteAccount removes the account, its profile and its posts, then
// clears local auth state.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/profile", nil, nil); err != nil {
		c.alertFailure(err)
		return err
	}
	c.tokens.Clear()
	c.store.Dispatch(profileCleared{})
	c.store.Dispatch(authFailed{})
	c.store.SetAlert("Your account has been permanently deleted", AlertSuccess)
	return nil
}

// --- posts ------------------------------------------------------------

// GetPosts loads the feed, newest first.
func (c *Client) GetPosts(ctx context.Context) error {
	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(postsLoaded{posts: posts})
	return nil
}

// GetPost loads one post.
func (c *Client) GetPost(ctx context.Context, id string) error {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+id, nil, &post); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(postLoaded{post: &post})
	return nil
}

// AddPost creates a post and prepends it to the feed.
func (c *Client) AddPost(ctx context.Context, text string) error {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/posts", map[string]string{"text": text}, &post); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(postAdded{post: post})
	c.store.SetAlert("Post Created", AlertSuccess)
	return nil
}

// DeletePost removes the caller's own post.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/posts/"+id, nil, nil); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(postRemoved{id: id})
	c.store.SetAlert("Post Removed", AlertSuccess)
	return nil
}

// LikePost records a like and patches the post's like list.
func (c *Client) LikePost(ctx context.Context, id string) error {
	var likes []Like
	if err := c.do(ctx, http.MethodPut, "/posts/like/"+id, nil, &likes); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(likesUpdated{postID: id, likes: likes})
	return nil
}

// UnlikePost removes a like and patches the post's like list.
func (c *Client) UnlikePost(ctx context.Context, id string) error {
	var likes []Like
	if err := c.do(ctx, http.MethodPut, "/posts/unlike/"+id, nil, &likes); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(likesUpdated{postID: id, likes: likes})
	return nil
}

// AddComment attaches a comment and patches the post's comment list.
func (c *Client) AddComment(ctx context.Context, postID, text string) error {
	var comments []Comment
	if err := c.do(ctx, http.MethodPost, "/posts/comment/"+postID, map[string]string{"text": text}, &comments); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(commentsUpdated{postID: postID, comments: comments})
	c.store.SetAlert("Comment Added", AlertSuccess)
	return nil
}

// DeleteComment removes the caller's own comment and patches the post's
// comment list.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID string) error {
	var comments []Comment
	if err := c.do(ctx, http.MethodDelete, "/posts/comment/"+postID+"/"+commentID, nil, &comments); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.Dispatch(commentsUpdated{postID: postID, comments: comments})
	c.store.SetAlert("Comment Removed", AlertSuccess)
	return nil
}
