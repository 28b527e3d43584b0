package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceAlerts(t *testing.T) {
	t.Parallel()

	state := State{}
	state = reduce(state, alertSet{alert: Alert{ID: "a1", Message: "one", Severity: AlertDanger}})
	state = reduce(state, alertSet{alert: Alert{ID: "a2", Message: "two", Severity: AlertSuccess}})
	assert.Len(t, state.Alerts, 2)

	state = reduce(state, alertRemoved{id: "a1"})
	assert.Len(t, state.Alerts, 1)
	assert.Equal(t, "a2", state.Alerts[0].ID)

	// Removing an id that already expired is a no-op.
	state = reduce(state, alertRemoved{id: "a1"})
	assert.Len(t, state.Alerts, 1)
}

func TestReduceAuth(t *testing.T) {
	t.Parallel()

	state := State{Auth: AuthState{Loading: true}}
	state = reduce(state, loginSucceeded{token: "jwt"})
	assert.True(t, state.Auth.IsAuthenticated)
	assert.Equal(t, "jwt", state.Auth.Token)
	assert.False(t, state.Auth.Loading)

	state = reduce(state, userLoaded{user: &User{ID: "u1", Name: "Ada"}})
	assert.Equal(t, "Ada", state.Auth.User.Name)

	state = reduce(state, authFailed{})
	assert.False(t, state.Auth.IsAuthenticated)
	assert.Empty(t, state.Auth.Token)
	assert.Nil(t, state.Auth.User)
}

func TestReduceProfileClear(t *testing.T) {
	t.Parallel()

	state := State{}
	state = reduce(state, profileLoaded{profile: &Profile{ID: "p1"}})
	state = reduce(state, reposLoaded{repos: []Repo{{Name: "repo"}}})
	assert.NotNil(t, state.Profile.Profile)
	assert.Len(t, state.Profile.Repos, 1)

	state = reduce(state, profileCleared{})
	assert.Nil(t, state.Profile.Profile)
	assert.Nil(t, state.Profile.Repos)
}

func TestReducePosts(t *testing.T) {
	t.Parallel()

	state := State{}
	state = reduce(state, postsLoaded{posts: []Post{{ID: "p1"}, {ID: "p2"}}})

	// New posts go to the front of the feed.
	state = reduce(state, postAdded{post: Post{ID: "p3"}})
	assert.Equal(t, []string{"p3", "p1", "p2"}, postIDs(state.Posts.Posts))

	state = reduce(state, postRemoved{id: "p1"})
	assert.Equal(t, []string{"p3", "p2"}, postIDs(state.Posts.Posts))
}

func TestReduceLikesPatchesFeedAndDetail(t *testing.T) {
	t.Parallel()

	detail := &Post{ID: "p1"}
	state := State{Posts: PostState{
		Posts: []Post{{ID: "p1"}, {ID: "p2"}},
		Post:  detail,
	}}

	likes := []Like{{ID: "l1", UserID: "u1"}}
	next := reduce(state, likesUpdated{postID: "p1", likes: likes})

	assert.Equal(t, likes, next.Posts.Posts[0].Likes)
	assert.Nil(t, next.Posts.Posts[1].Likes)
	assert.Equal(t, likes, next.Posts.Post.Likes)

	// The previous snapshot is untouched.
	assert.Nil(t, state.Posts.Posts[0].Likes)
	assert.Nil(t, detail.Likes)
}

func TestReduceComments(t *testing.T) {
	t.Parallel()

	state := State{Posts: PostState{Post: &Post{ID: "p1"}}}
	comments := []Comment{{ID: "c1", Text: "hi"}}
	next := reduce(state, commentsUpdated{postID: "p1", comments: comments})

	assert.Equal(t, comments, next.Posts.Post.Comments)
	assert.Nil(t, state.Posts.Post.Comments)
}

func postIDs(posts []Post) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}
