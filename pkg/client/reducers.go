package client

// reduce applies an action to the state and returns the next state. The
// input state is never mutated: slices are copied before changing.
func reduce(old State, action Action) State {
	next := old
	next.Alerts = reduceAlerts(old.Alerts, action)
	next.Auth = reduceAuth(old.Auth, action)
	next.Profile = reduceProfile(old.Profile, action)
	next.Posts = reducePosts(old.Posts, action)
	return next
}

func reduceAlerts(old []Alert, action Action) []Alert {
	switch a := action.(type) {
	case alertSet:
		next := make([]Alert, 0, len(old)+1)
		next = append(next, old...)
		return append(next, a.alert)
	case alertRemoved:
		// Filter-based removal: removing an id that already expired is a
		// harmless no-op.
		next := make([]Alert, 0, len(old))
		for _, alert := range old {
			if alert.ID != a.id {
				next = append(next, alert)
			}
		}
		return next
	default:
		return old
	}
}

func reduceAuth(old AuthState, action Action) AuthState {
	switch a := action.(type) {
	case loginSucceeded:
		next := old
		next.Token = a.token
		next.IsAuthenticated = true
		next.Loading = false
		return next
	case registerSucceeded:
		next := old
		next.Token = a.token
		next.IsAuthenticated = true
		next.Loading = false
		return next
	case userLoaded:
		next := old
		next.IsAuthenticated = true
		next.Loading = false
		next.User = a.user
		return next
	case authFailed:
		next := old
		next.Token = ""
		next.IsAuthenticated = false
		next.Loading = false
		next.User = nil
		return next
	default:
		return old
	}
}

func reduceProfile(old ProfileState, action Action) ProfileState {
	switch a := action.(type) {
	case profileLoaded:
		next := old
		next.Profile = a.profile
		next.Loading = false
		return next
	case profilesLoaded:
		next := old
		next.Profiles = a.profiles
		next.Loading = false
		return next
	case reposLoaded:
		next := old
		next.Repos = a.repos
		next.Loading = false
		return next
	case profileCleared:
		next := old
		next.Profile = nil
		next.Repos = nil
		next.Loading = false
		return next
	default:
		return old
	}
}

func reducePosts(old PostState, action Action) PostState {
	switch a := action.(type) {
	case postsLoaded:
		next := old
		next.Posts = a.posts
		next.Loading = false
		return next
	case postLoaded:
		next := old
		next.Post = a.post
		next.Loading = false
		return next
	case postAdded:
		next := old
		posts := make([]Post, 0, len(old.Posts)+1)
		posts = append(posts, a.post)
		posts = append(posts, old.Posts...)
		next.Posts = posts
		next.Loading = false
		return next
	case postRemoved:
		next := old
		posts := make([]Post, 0, len(old.Posts))
		for _, post := range old.Posts {
			if post.ID != a.id {
				posts = append(posts, post)
			}
		}
		next.Posts = posts
		next.Loading = false
		return next
	case likesUpdated:
		next := old
		posts := make([]Post, len(old.Posts))
		copy(posts, old.Posts)
		for i := range posts {
			if posts[i].ID == a.postID {
				posts[i].Likes = a.likes
			}
		}
		next.Posts = posts
		if old.Post != nil && old.Post.ID == a.postID {
			post := *old.Post
			post.Likes = a.likes
			next.Post = &post
		}
		return next
	case commentsUpdated:
		next := old
		if old.Post != nil && old.Post.ID == a.postID {
			post := *old.Post
			post.Comments = a.comments
			next.Post = &post
		}
		return next
	default:
		return old
	}
}
