package services

// ServiceContainer holds every service in the application.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	ProfileService ProfileService
	PostService    PostService
	GithubService  GithubService
}
