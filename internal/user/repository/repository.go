package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"polychat/internal/user"
	models "polychat/internal/user/model"
	"polychat/pkg/logger"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrUserNotFound = errors.New("user not found")

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *UserRepository) UpsertFromIdentity(ctx context.Context, ident user.Identity) (*models.User, error) {
	var out *models.User

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		existing := new(models.User)
		err := tx.NewSelect().Model(existing).
			Where("token_identifier = ?", ident.TokenIdentifier).
			Scan(ctx)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return errors.Wrap(err, "userRepo.UpsertFromIdentity.Select")
		}

		if err == nil {
			// Patch only the columns the provider changed.
			q := tx.NewUpdate().Model(existing).WherePK()
			dirty := false
			if existing.Username != ident.Nickname {
				existing.Username = ident.Nickname
				q = q.Column("username")
				dirty = true
			}
			if ident.ProfileImageURL != "" && existing.ProfileImageURL != ident.ProfileImageURL {
				existing.ProfileImageURL = ident.ProfileImageURL
				q = q.Column("profile_image_url")
				dirty = true
			}
			if dirty {
				if _, err := q.Exec(ctx); err != nil {
					return errors.Wrap(err, "userRepo.UpsertFromIdentity.Update")
				}
			}
			out = existing
			return nil
		}

		now := time.Now()
		created := &models.User{
			TokenIdentifier:      ident.TokenIdentifier,
			Username:             ident.Nickname,
			FullName:             ident.FullName,
			ProfileImageURL:      ident.ProfileImageURL,
			NotificationsEnabled: true,
			DarkMode:             false,
			ShowOnlineStatus:     true,
			IsOnline:             true,
			LastOnline:           &now,
		}
		if _, err := tx.NewInsert().Model(created).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "userRepo.UpsertFromIdentity.Insert")
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u := new(models.User)
	err := r.db.NewSelect().Model(u).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan")
	}
	return u, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u := new(models.User)
	err := r.db.NewSelect().Model(u).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByUsername.Scan")
	}
	return u, nil
}

func (r *UserRepository) GetUserByToken(ctx context.Context, tokenIdentifier string) (*models.User, error) {
	u := new(models.User)
	err := r.db.NewSelect().Model(u).Where("token_identifier = ?", tokenIdentifier).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByToken.Scan")
	}
	return u, nil
}

// SearchUsers merges a match-by-full-name and a match-by-username search,
// each capped at limit before the merge, deduplicated, capped again.
func (r *UserRepository) SearchUsers(ctx context.Context, query string, limit int) ([]models.User, error) {
	var byName []models.User
	err := r.db.NewSelect().Model(&byName).
		Where("full_name ILIKE ?", "%"+query+"%").
		Order("full_name ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.SearchUsers.byName")
	}

	var byUsername []models.User
	err = r.db.NewSelect().Model(&byUsername).
		Where("username ILIKE ?", "%"+query+"%").
		Order("username ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.SearchUsers.byUsername")
	}

	seen := make(map[uuid.UUID]bool, len(byName)+len(byUsername))
	merged := make([]models.User, 0, limit)
	for _, u := range append(byName, byUsername...) {
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		merged = append(merged, u)
		if len(merged) == limit {
			break
		}
	}
	return merged, nil
}

func (r *UserRepository) UpdateAbout(ctx context.Context, userID uuid.UUID, about string) error {
	_, err := r.db.NewUpdate().
		Model(&models.User{About: about}).
		Column("about").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateAbout.Update")
	}
	return nil
}

func (r *UserRepository) UpdatePreferences(ctx context.Context, userID uuid.UUID, upd user.PreferencesUpdate) error {
	patch := new(models.User)
	q := r.db.NewUpdate().Model(patch).Where("id = ?", userID)

	dirty := false
	if upd.NotificationsEnabled != nil {
		patch.NotificationsEnabled = *upd.NotificationsEnabled
		q = q.Column("notifications_enabled")
		dirty = true
	}
	if upd.DarkMode != nil {
		patch.DarkMode = *upd.DarkMode
		q = q.Column("dark_mode")
		dirty = true
	}
	if upd.ShowOnlineStatus != nil {
		patch.ShowOnlineStatus = *upd.ShowOnlineStatus
		q = q.Column("show_online_status")
		dirty = true
	}
	if !dirty {
		return nil
	}

	if _, err := q.Exec(ctx); err != nil {
		return errors.Wrap(err, "userRepo.UpdatePreferences.Update")
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*models.User)(nil)).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.DeleteUser.Exec")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetOnline(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model(&models.User{IsOnline: true}).
		Column("is_online").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.SetOnline.Update")
	}
	return nil
}

func (r *UserRepository) SetOffline(ctx context.Context, userID uuid.UUID, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model(&models.User{IsOnline: false, LastOnline: &at}).
		Column("is_online", "last_online").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.SetOffline.Update")
	}
	return nil
}

func (r *UserRepository) TouchLastOnline(ctx context.Context, userID uuid.UUID, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model(&models.User{LastOnline: &at}).
		Column("last_online").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.TouchLastOnline.Update")
	}
	return nil
}
