package handlers

// AppHandlers holds every handler in the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	PostHandler    *PostHandler
}
