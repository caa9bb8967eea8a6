package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// TokenIdentifier = stable subject issued by the identity provider
	TokenIdentifier string `bun:",unique,notnull"`

	// Username = unique @handle mirrored from the provider nickname
	Username string `bun:",unique,notnull"`

	// FullName = display name shown in chats
	FullName string `bun:",notnull"`

	Title           string `bun:",nullzero"`
	About           string `bun:",nullzero"`
	ProfileImageURL string `bun:",nullzero"`

	// Preference bundle
	NotificationsEnabled bool `bun:",notnull,default:true"`
	DarkMode             bool `bun:",notnull,default:false"`
	ShowOnlineStatus     bool `bun:",notnull,default:true"`

	// Presence
	IsOnline   bool       `bun:",notnull,default:false"`
	LastOnline *time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
