package client

// Action is a state transition request handled by the reducers.
type Action interface {
	actionType() string
}

type alertSet struct{ alert Alert }

type alertRemoved struct{ id string }

type loginSucceeded struct{ token string }

type registerSucceeded struct{ token string }

type userLoaded struct{ user *User }

// authFailed covers AUTH_ERROR, LOGIN_FAIL, REGISTER_FAIL, LOGOUT and
// ACCOUNT_DELETED: the token is dropped either way.
type authFailed struct{}

type profileLoaded struct{ profile *Profile }

type profilesLoaded struct{ profiles []Profile }

type reposLoaded struct{ repos []Repo }

type profileCleared struct{}

type postsLoaded struct{ posts []Post }

type postLoaded struct{ post *Post }

type postAdded struct{ post Post }

type postRemoved struct{ id string }

type likesUpdated struct {
	postID string
	likes  []Like
}

type commentsUpdated struct {
	postID   string
	comments []Comment
}

func (alertSet) actionType() string          { return "SET_ALERT" }
func (alertRemoved) actionType() string      { return "REMOVE_ALERT" }
func (loginSucceeded) actionType() string    { return "LOGIN_SUCCESS" }
func (registerSucceeded) actionType() string { return "REGISTER_SUCCESS" }
func (userLoaded) actionType() string        { return "USER_LOADED" }
func (authFailed) actionType() string        { return "AUTH_ERROR" }
func (profileLoaded) actionType() string     { return "GET_PROFILE" }
func (profilesLoaded) actionType() string    { return "GET_PROFILES" }
func (reposLoaded) actionType() string       { return "GET_REPOS" }
func (profileCleared) actionType() string    { return "CLEAR_PROFILE" }
func (postsLoaded) actionType() string       { return "GET_POSTS" }
func (postLoaded) actionType() string        { return "GET_POST" }
func (postAdded) actionType() string         { return "ADD_POST" }
func (postRemoved) actionType() string       { return "DELETE_POST" }
func (likesUpdated) actionType() string      { return "UPDATE_LIKES" }
func (commentsUpdated) actionType() string   { return "UPDATE_COMMENTS" }
