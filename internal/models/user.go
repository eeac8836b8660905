package models

import "time"

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleMember    = "member"
)

// User never carries the password hash; the hash lives only in the
// storage layer and in the credentials lookup used by login.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Username        string    `json:"username,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	GithubProfile   string    `json:"github_profile,omitempty"`
	LinkedinProfile string    `json:"linkedin_profile,omitempty"`
	Skills          []string  `json:"skills"`
	IsActive        bool      `json:"is_active"`
	Role            string    `json:"role"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserPatch carries partial profile updates; nil fields are left untouched.
type UserPatch struct {
	FullName        *string  `json:"full_name"`
	Bio             *string  `json:"bio"`
	AvatarURL       *string  `json:"avatar_url"`
	GithubProfile   *string  `json:"github_profile"`
	LinkedinProfile *string  `json:"linkedin_profile"`
	Skills          []string `json:"skills"`
}

// UserSummary is the projection joined onto RSVP listings.
type UserSummary struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
