package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polychat/config"
	"polychat/internal/user"
	"polychat/internal/user/mocks"
	models "polychat/internal/user/model"
	appErrors "polychat/pkg/errors"
	"polychat/pkg/logger"
)

func newUsecase(t *testing.T) (*UserUsecase, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepository(ctrl)
	cfg := config.Config{}
	cfg.Presence.OnlineThresholdMinutes = 5
	log, _ := logger.NewLogger(&cfg)
	return NewUserUsecase(mockRepo, *log, cfg), mockRepo
}

func Test_UpsertFromIdentity(t *testing.T) {
	userID := uuid.New()
	ident := user.Identity{
		TokenIdentifier: "tok|1",
		FullName:        "Test User",
		Nickname:        "testuser",
	}

	t.Run("happy path - stores identity", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().
			UpsertFromIdentity(gomock.Any(), ident).
			Return(&models.User{ID: userID, Username: "testuser", FullName: "Test User"}, nil)

		dto, err := uc.UpsertFromIdentity(context.Background(), ident)
		require.NoError(t, err)
		assert.Equal(t, userID, dto.ID)
		assert.Equal(t, "testuser", dto.Username)
	})

	t.Run("sad path - missing identity token", func(t *testing.T) {
		uc, _ := newUsecase(t)

		_, err := uc.UpsertFromIdentity(context.Background(), user.Identity{Nickname: "x"})
		assert.ErrorIs(t, err, appErrors.ErrMissingIdentity)
	})

	t.Run("sad path - db down", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().
			UpsertFromIdentity(gomock.Any(), ident).
			Return(nil, errors.New("db down"))

		_, err := uc.UpsertFromIdentity(context.Background(), ident)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}

func Test_Search(t *testing.T) {
	t.Run("empty query returns empty without touching the repo", func(t *testing.T) {
		uc, _ := newUsecase(t)

		out, err := uc.Search(context.Background(), "   ")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("results are mapped and capped upstream", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().
			SearchUsers(gomock.Any(), "bob", 5).
			Return([]models.User{
				{ID: uuid.New(), Username: "bobm", FullName: "Bob Martin"},
				{ID: uuid.New(), Username: "bobfan", FullName: "Charlie Day"},
			}, nil)

		out, err := uc.Search(context.Background(), "bob")
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "bobm", out[0].Username)
	})
}

func Test_Status(t *testing.T) {
	userID := uuid.New()

	t.Run("recent last_online reads as online", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		last := time.Now().Add(-time.Minute)
		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, ShowOnlineStatus: true, LastOnline: &last}, nil)

		st, err := uc.Status(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, st.Online)
		require.NotNil(t, st.LastActive)
	})

	t.Run("stale last_online ages out regardless of stored flag", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		last := time.Now().Add(-10 * time.Minute)
		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, ShowOnlineStatus: true, IsOnline: true, LastOnline: &last}, nil)

		st, err := uc.Status(context.Background(), userID)
		require.NoError(t, err)
		assert.False(t, st.Online)
	})

	t.Run("never-seen user reads as offline", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, ShowOnlineStatus: true}, nil)

		st, err := uc.Status(context.Background(), userID)
		require.NoError(t, err)
		assert.False(t, st.Online)
		assert.Nil(t, st.LastActive)
	})

	t.Run("opted-out user surfaces nothing", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		last := time.Now()
		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, ShowOnlineStatus: false, IsOnline: true, LastOnline: &last}, nil)

		st, err := uc.Status(context.Background(), userID)
		require.NoError(t, err)
		assert.False(t, st.Online)
		assert.Nil(t, st.LastActive)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).
			Return(nil, errors.New("not found"))

		_, err := uc.Status(context.Background(), userID)
		assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
	})
}

func Test_Heartbeat(t *testing.T) {
	userID := uuid.New()

	t.Run("refreshes last_online when status is shared", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, ShowOnlineStatus: true}, nil)
		mockRepo.EXPECT().TouchLastOnline(gomock.Any(), userID, gomock.Any()).Return(nil)

		require.NoError(t, uc.Heartbeat(context.Background(), userID))
	})

	t.Run("no write for opted-out user", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, ShowOnlineStatus: false}, nil)

		require.NoError(t, uc.Heartbeat(context.Background(), userID))
	})
}

func Test_MarkOffline(t *testing.T) {
	uc, mockRepo := newUsecase(t)
	userID := uuid.New()

	mockRepo.EXPECT().SetOffline(gomock.Any(), userID, gomock.Any()).Return(nil)
	require.NoError(t, uc.MarkOffline(context.Background(), userID))
}
