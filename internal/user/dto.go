package user

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler

// Identity carries the facts the external identity provider asserts
// about the authenticated caller on every request.
type Identity struct {
	TokenIdentifier string
	FullName        string
	Nickname        string
	ProfileImageURL string
}

type PreferencesUpdate struct {
	NotificationsEnabled *bool
	DarkMode             *bool
	ShowOnlineStatus     *bool
}

// Output DTOs
type UserDTO struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name"`
	Title           string    `json:"title,omitempty"`
	About           string    `json:"about,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
}

type PreferencesDTO struct {
	NotificationsEnabled bool `json:"notifications_enabled"`
	DarkMode             bool `json:"dark_mode"`
	ShowOnlineStatus     bool `json:"show_online_status"`
}

// PresenceDTO is the threshold-derived display status, not the raw flag.
type PresenceDTO struct {
	Online     bool       `json:"online"`
	LastActive *time.Time `json:"last_active,omitempty"`
}
