package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Store the authenticated identity, creating or refreshing the user row.
	UpsertFromIdentity(ctx context.Context, ident Identity) (*UserDTO, error)

	GetCurrentUser(ctx context.Context, tokenIdentifier string) (*UserDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	GetByUsername(ctx context.Context, username string) (*UserDTO, error)

	// Search users for the search box and @mentions. Empty query returns
	// an empty result, never an error.
	Search(ctx context.Context, query string) ([]*UserDTO, error)

	UpdateAbout(ctx context.Context, userID uuid.UUID, about string) error
	UpdatePreferences(ctx context.Context, userID uuid.UUID, upd PreferencesUpdate) (*PreferencesDTO, error)
	Delete(ctx context.Context, userID uuid.UUID) error

	// Presence. All client offline signals collapse into MarkOffline.
	MarkOnline(ctx context.Context, userID uuid.UUID) error
	MarkOffline(ctx context.Context, userID uuid.UUID) error
	Heartbeat(ctx context.Context, userID uuid.UUID) error
	Status(ctx context.Context, userID uuid.UUID) (*PresenceDTO, error)
}
