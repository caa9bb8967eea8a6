package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	models "polychat/internal/user/model"
)

type UserRepository interface {
	// UpsertFromIdentity mirrors the identity provider's view of the caller:
	// creates the user on first contact, patches username/profile image only
	// when they changed. Returns the stored row either way.
	UpsertFromIdentity(ctx context.Context, ident Identity) (*models.User, error)

	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByToken(ctx context.Context, tokenIdentifier string) (*models.User, error)

	// SearchUsers runs the two capped sub-searches (full name, username),
	// merges and deduplicates, and caps the merged result at limit.
	SearchUsers(ctx context.Context, query string, limit int) ([]models.User, error)

	UpdateAbout(ctx context.Context, userID uuid.UUID, about string) error
	UpdatePreferences(ctx context.Context, userID uuid.UUID, upd PreferencesUpdate) error

	// DeleteUser removes the user row only. Conversations and messages
	// referencing the user are left in place.
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	SetOnline(ctx context.Context, userID uuid.UUID) error
	SetOffline(ctx context.Context, userID uuid.UUID, at time.Time) error
	// TouchLastOnline refreshes last_online without touching is_online.
	TouchLastOnline(ctx context.Context, userID uuid.UUID, at time.Time) error
}
