package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"polychat/config"
	"polychat/internal/user"
	models "polychat/internal/user/model"
	"polychat/pkg/errors"
	"polychat/pkg/logger"
)

// searchLimit caps each sub-search and the merged result.
const searchLimit = 5

type UserUsecase struct {
	repo   user.UserRepository
	logger logger.Logger
	config config.Config
}

func NewUserUsecase(repo user.UserRepository, logger logger.Logger, config config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger, config: config}
}

func (uc *UserUsecase) UpsertFromIdentity(ctx context.Context, ident user.Identity) (*user.UserDTO, error) {
	if ident.TokenIdentifier == "" {
		return nil, errors.ErrMissingIdentity
	}
	if ident.Nickname == "" {
		return nil, errors.ErrInvalidUsername
	}

	u, err := uc.repo.UpsertFromIdentity(ctx, ident)
	if err != nil {
		uc.logger.Error("failed to upsert user from identity", "err", err)
		return nil, errors.ErrUserUpsertFailed(err)
	}
	return toUserDTO(u), nil
}

func (uc *UserUsecase) GetCurrentUser(ctx context.Context, tokenIdentifier string) (*user.UserDTO, error) {
	if tokenIdentifier == "" {
		return nil, errors.ErrMissingIdentity
	}
	u, err := uc.repo.GetUserByToken(ctx, tokenIdentifier)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return toUserDTO(u), nil
}

func (uc *UserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*user.UserDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return toUserDTO(u), nil
}

func (uc *UserUsecase) GetByUsername(ctx context.Context, username string) (*user.UserDTO, error) {
	if username == "" {
		return nil, errors.ErrInvalidUsername
	}
	u, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return toUserDTO(u), nil
}

func (uc *UserUsecase) Search(ctx context.Context, query string) ([]*user.UserDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*user.UserDTO{}, nil
	}

	found, err := uc.repo.SearchUsers(ctx, query, searchLimit)
	if err != nil {
		uc.logger.Error("user search failed", "query", query, "err", err)
		return nil, errors.Internal("search failed")
	}

	out := make([]*user.UserDTO, 0, len(found))
	for i := range found {
		out = append(out, toUserDTO(&found[i]))
	}
	return out, nil
}

func (uc *UserUsecase) UpdateAbout(ctx context.Context, userID uuid.UUID, about string) error {
	if err := uc.repo.UpdateAbout(ctx, userID, about); err != nil {
		uc.logger.Errorf("error while updating about text: %v", err)
		return errors.Internal("error while updating about text")
	}
	return nil
}

func (uc *UserUsecase) UpdatePreferences(ctx context.Context, userID uuid.UUID, upd user.PreferencesUpdate) (*user.PreferencesDTO, error) {
	if err := uc.repo.UpdatePreferences(ctx, userID, upd); err != nil {
		uc.logger.Errorf("error while updating preferences: %v", err)
		return nil, errors.Internal("error while updating preferences")
	}

	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return &user.PreferencesDTO{
		NotificationsEnabled: u.NotificationsEnabled,
		DarkMode:             u.DarkMode,
		ShowOnlineStatus:     u.ShowOnlineStatus,
	}, nil
}

// Delete removes the user record only. Messages and conversations keep
// their author references; readers render a placeholder for them.
func (uc *UserUsecase) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := uc.repo.DeleteUser(ctx, userID); err != nil {
		return errors.ErrUserNotFound
	}
	return nil
}

func (uc *UserUsecase) MarkOnline(ctx context.Context, userID uuid.UUID) error {
	if err := uc.repo.SetOnline(ctx, userID); err != nil {
		uc.logger.Error("failed to mark user online", "user_id", userID, "err", err)
		return errors.Internal("failed to update presence")
	}
	return nil
}

func (uc *UserUsecase) MarkOffline(ctx context.Context, userID uuid.UUID) error {
	if err := uc.repo.SetOffline(ctx, userID, time.Now()); err != nil {
		uc.logger.Error("failed to mark user offline", "user_id", userID, "err", err)
		return errors.Internal("failed to update presence")
	}
	return nil
}

// Heartbeat refreshes last_online for users who share their status.
func (uc *UserUsecase) Heartbeat(ctx context.Context, userID uuid.UUID) error {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return errors.ErrUserNotFound
	}
	if !u.ShowOnlineStatus {
		return nil
	}
	if err := uc.repo.TouchLastOnline(ctx, userID, time.Now()); err != nil {
		uc.logger.Error("failed to refresh last_online", "user_id", userID, "err", err)
		return errors.Internal("failed to update presence")
	}
	return nil
}

// Status derives display presence from last_online against the configured
// threshold. The stored is_online bit is deliberately ignored so a user
// whose offline signal never arrived ages out.
func (uc *UserUsecase) Status(ctx context.Context, userID uuid.UUID) (*user.PresenceDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	if !u.ShowOnlineStatus {
		return &user.PresenceDTO{Online: false}, nil
	}

	threshold := time.Duration(uc.config.Presence.OnlineThresholdMinutes) * time.Minute
	if threshold == 0 {
		threshold = 5 * time.Minute
	}

	online := u.LastOnline != nil && time.Since(*u.LastOnline) < threshold
	return &user.PresenceDTO{Online: online, LastActive: u.LastOnline}, nil
}

func toUserDTO(u *models.User) *user.UserDTO {
	return &user.UserDTO{
		ID:              u.ID,
		Username:        u.Username,
		FullName:        u.FullName,
		Title:           u.Title,
		About:           u.About,
		ProfileImageURL: u.ProfileImageURL,
	}
}
