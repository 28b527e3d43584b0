// Package client is a Go SDK for the devconnect API. It pairs an HTTP
// client with a predictable state container: three independent slices
// (alerts, auth, data) updated only through pure reduction functions.
package client

import "time"

// AlertSeverity classifies an alert for display.
type AlertSeverity string

const (
	AlertDanger  AlertSeverity = "danger"
	AlertSuccess AlertSeverity = "success"
)

// Alert is a transient notification. It self-expires after a fixed delay.
type Alert struct {
	ID       string
	Message  string
	Severity AlertSeverity
}

// User mirrors the server's user representation.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// SocialLinks mirrors the profile's social URLs.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// Experience mirrors one experience entry.
type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// Education mirrors one education entry.
type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// Profile mirrors the server's profile representation.
type Profile struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user_id"`
	Company        string       `json:"company"`
	Website        string       `json:"website"`
	Location       string       `json:"location"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Bio            string       `json:"bio"`
	GithubUsername string       `json:"githubusername"`
	Social         SocialLinks  `json:"social"`
	User           *User        `json:"user,omitempty"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
}

// Repo mirrors one proxied GitHub repository.
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
}

// Like mirrors one like entry.
type Like struct {
	ID     string `json:"id"`
	UserID string `json:"user"`
}

// Comment mirrors one comment entry.
type Comment struct {
	ID     string `json:"id"`
	UserID string `json:"user"`
	Text   string `json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Post mirrors the server's post representation.
type Post struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user"`
	Text     string    `json:"text"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`
}

// AuthState is the authentication slice.
type AuthState struct {
	Token           string
	IsAuthenticated bool
	Loading         bool
	User            *User
}

// ProfileState is the profile data slice.
type ProfileState struct {
	Profile  *Profile
	Profiles []Profile
	Repos    []Repo
	Loading  bool
}

// PostState is the post data slice.
type PostState struct {
	Posts   []Post
	Post    *Post
	Loading bool
}

// State is the full application state. Reducers never mutate it in place;
// every dispatch produces a fresh value.
type State struct {
	Alerts  []Alert
	Auth    AuthState
	Profile ProfileState
	Posts   PostState
}
