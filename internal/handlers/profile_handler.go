package handlers

import (
	"net/http"

	"devconnect_backend/internal/middleware"
	"devconnect_backend/internal/services"
	"devconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
	userService    services.UserService
	githubService  services.GithubService
}

func NewProfileHandler(
	base *BaseHandler,
	profileService services.ProfileService,
	userService services.UserService,
	githubService services.GithubService,
) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
		userService:    userService,
		githubService:  githubService,
	}
}

// RegisterRoutes wires the profile endpoints. Reads are public, writes
// require a token.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	{
		profile.GET("", h.ListProfiles)
		profile.GET("/user/:user_id", h.GetProfileByUser)
		profile.GET("/github/:username", h.GetGithubRepos)

		authed := profile.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/me", h.GetMyProfile)
			authed.POST("", h.UpsertProfile)
			authed.DELETE("", h.DeleteAccount)
			authed.PUT("/experience", h.AddExperience)
			authed.DELETE("/experience/:exp_id", h.RemoveExperience)
			authed.PUT("/education", h.AddEducation)
			authed.DELETE("/education/:edu_id", h.RemoveEducation)
		}
	}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.GetByUserID(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.Upsert(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	db := h.GetDB(c)

	profiles, err := h.profileService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) GetProfileByUser(c *gin.Context) {
	db := h.GetDB(c)

	profile, err := h.profileService.GetByUserID(db, c.Param("user_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteAccount removes the user, their profile and their posts.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.DeleteAccount(db, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User deleted"})
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.AddExperience(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.RemoveExperience(db, userID, c.Param("exp_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddEducationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.AddEducation(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.RemoveEducation(db, userID, c.Param("edu_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetGithubRepos proxies the user's recent repos from the upstream API.
func (h *ProfileHandler) GetGithubRepos(c *gin.Context) {
	repos, err := h.githubService.ListUserRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, repos)
}
