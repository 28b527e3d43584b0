package dto

import (
	"time"

	"devconnect_backend/pkg/webnorm"
)

// UpsertProfileRequest creates or fully replaces the top-level profile
// fields. Skills accepts either a JSON array or a comma-separated string.
type UpsertProfileRequest struct {
	Company        string           `json:"company"`
	Website        string           `json:"website"`
	Location       string           `json:"location"`
	Status         string           `json:"status" validate:"required"`
	Skills         webnorm.SkillList `json:"skills" validate:"required,min=1"`
	Bio            string           `json:"bio"`
	GithubUsername string           `json:"githubusername"`

	Youtube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Linkedin  string `json:"linkedin"`
	Facebook  string `json:"facebook"`
}

// AddExperienceRequest appends a new experience entry.
type AddExperienceRequest struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" validate:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// AddEducationRequest appends a new education entry.
type AddEducationRequest struct {
	School       string     `json:"school" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	FieldOfStudy string     `json:"fieldofstudy" validate:"required"`
	From         time.Time  `json:"from" validate:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}
