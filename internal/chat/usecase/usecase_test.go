package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polychat/config"
	"polychat/internal/chat"
	chatMocks "polychat/internal/chat/mocks"
	"polychat/internal/chat/model"
	translationMocks "polychat/internal/translation/mocks"
	userMocks "polychat/internal/user/mocks"
	userModels "polychat/internal/user/model"
	appErrors "polychat/pkg/errors"
	"polychat/pkg/logger"
)

type fixture struct {
	uc         *ChatUsecase
	repo       *chatMocks.MockChatRepository
	users      *userMocks.MockUserRepository
	translator *translationMocks.MockTranslator
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	repo := chatMocks.NewMockChatRepository(ctrl)
	users := userMocks.NewMockUserRepository(ctrl)
	translator := translationMocks.NewMockTranslator(ctrl)
	cfg := config.Config{}
	log, _ := logger.NewLogger(&cfg)
	return fixture{
		uc:         NewChatUsecase(repo, users, translator, *log, cfg),
		repo:       repo,
		users:      users,
		translator: translator,
	}
}

func conversationBetween(alice, bob uuid.UUID) *model.Conversation {
	return &model.Conversation{
		ID:                 uuid.New(),
		ParticipantOneID:   alice,
		ParticipantTwoID:   bob,
		ParticipantOneLang: model.LanguageEnglish,
		ParticipantTwoLang: model.LanguageFrench,
		PairKey:            model.PairKeyFor(alice, bob),
	}
}

func Test_SendMessage(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("english source fills the french slot from the translator", func(t *testing.T) {
		f := newFixture(t)
		conv := conversationBetween(alice, bob)

		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)
		f.translator.EXPECT().Translate(gomock.Any(), "Hello", "English").Return("Bonjour", nil)
		f.repo.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *model.Message) error {
				assert.Equal(t, "Hello", msg.EnglishText)
				assert.Equal(t, "Bonjour", msg.FrenchText)
				assert.Equal(t, alice, msg.UserID)
				assert.False(t, msg.Seen)
				msg.ID = uuid.New()
				return nil
			})

		dto, err := f.uc.SendMessage(context.Background(), chat.SendMessageCommand{
			AuthorID:       alice,
			ConversationID: conv.ID,
			Text:           "Hello",
			SourceLang:     model.LanguageEnglish,
		})
		require.NoError(t, err)
		// Alice reads the conversation in English, so her echo is English.
		assert.Equal(t, "Hello", dto.Text)
	})

	t.Run("french source fills the english slot", func(t *testing.T) {
		f := newFixture(t)
		conv := conversationBetween(alice, bob)

		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)
		f.translator.EXPECT().Translate(gomock.Any(), "Bonjour", "French").Return("Hello", nil)
		f.repo.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *model.Message) error {
				assert.Equal(t, "Hello", msg.EnglishText)
				assert.Equal(t, "Bonjour", msg.FrenchText)
				return nil
			})

		dto, err := f.uc.SendMessage(context.Background(), chat.SendMessageCommand{
			AuthorID:       bob,
			ConversationID: conv.ID,
			Text:           "Bonjour",
			SourceLang:     model.LanguageFrench,
		})
		require.NoError(t, err)
		// Bob's slot is French, so he sees his own words untouched.
		assert.Equal(t, "Bonjour", dto.Text)
	})

	t.Run("translator failure degrades to a verbatim copy", func(t *testing.T) {
		f := newFixture(t)
		conv := conversationBetween(alice, bob)

		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)
		f.translator.EXPECT().Translate(gomock.Any(), "Hello", "English").
			Return("", errors.New("gateway timeout"))
		f.repo.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *model.Message) error {
				assert.Equal(t, "Hello", msg.EnglishText)
				assert.Equal(t, "Hello", msg.FrenchText)
				return nil
			})

		_, err := f.uc.SendMessage(context.Background(), chat.SendMessageCommand{
			AuthorID:       alice,
			ConversationID: conv.ID,
			Text:           "Hello",
			SourceLang:     model.LanguageEnglish,
		})
		require.NoError(t, err)
	})

	t.Run("blank text is rejected before any lookup", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.SendMessage(context.Background(), chat.SendMessageCommand{
			AuthorID:       alice,
			ConversationID: uuid.New(),
			Text:           "   \n\t",
			SourceLang:     model.LanguageEnglish,
		})
		assert.ErrorIs(t, err, appErrors.ErrEmptyMessage)
	})

	t.Run("unknown language is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.SendMessage(context.Background(), chat.SendMessageCommand{
			AuthorID:       alice,
			ConversationID: uuid.New(),
			Text:           "hola",
			SourceLang:     model.Language("Spanish"),
		})
		assert.ErrorIs(t, err, appErrors.ErrInvalidLanguage)
	})

	t.Run("outsiders cannot post", func(t *testing.T) {
		f := newFixture(t)
		conv := conversationBetween(alice, bob)

		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)

		_, err := f.uc.SendMessage(context.Background(), chat.SendMessageCommand{
			AuthorID:       uuid.New(),
			ConversationID: conv.ID,
			Text:           "let me in",
			SourceLang:     model.LanguageEnglish,
		})
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})
}

func Test_GetOrCreateConversation(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("happy path - view rendered in viewer language", func(t *testing.T) {
		f := newFixture(t)
		conv := conversationBetween(alice, bob)

		f.users.EXPECT().GetUserByID(gomock.Any(), alice).
			Return(&userModels.User{ID: alice, Username: "alice"}, nil)
		f.users.EXPECT().GetUserByUsername(gomock.Any(), "bob").
			Return(&userModels.User{ID: bob, Username: "bob"}, nil)
		f.repo.EXPECT().GetOrCreateConversation(gomock.Any(), alice, bob).Return(conv, nil)
		f.repo.EXPECT().ListMessagesByConversation(gomock.Any(), conv.ID).
			Return([]model.Message{
				{
					ID:             uuid.New(),
					ConversationID: conv.ID,
					UserID:         bob,
					EnglishText:    "Hello",
					FrenchText:     "Bonjour",
					User:           &userModels.User{ID: bob, Username: "bob"},
				},
			}, nil)

		view, err := f.uc.GetOrCreateConversation(context.Background(), alice, "bob")
		require.NoError(t, err)
		assert.Equal(t, conv.ID, view.Conversation.ID)
		require.Len(t, view.Messages, 1)
		// Alice's slot is English.
		assert.Equal(t, "Hello", view.Messages[0].Text)
		assert.Equal(t, "bob", view.Messages[0].Author.Username)
	})

	t.Run("deleted author renders as placeholder", func(t *testing.T) {
		f := newFixture(t)
		conv := conversationBetween(alice, bob)

		f.users.EXPECT().GetUserByID(gomock.Any(), bob).
			Return(&userModels.User{ID: bob, Username: "bob"}, nil)
		f.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").
			Return(&userModels.User{ID: alice, Username: "alice"}, nil)
		f.repo.EXPECT().GetOrCreateConversation(gomock.Any(), bob, alice).Return(conv, nil)
		f.repo.EXPECT().ListMessagesByConversation(gomock.Any(), conv.ID).
			Return([]model.Message{
				{
					ID:             uuid.New(),
					ConversationID: conv.ID,
					UserID:         uuid.New(),
					EnglishText:    "Hello",
					FrenchText:     "Bonjour",
					User:           nil,
				},
			}, nil)

		view, err := f.uc.GetOrCreateConversation(context.Background(), bob, "alice")
		require.NoError(t, err)
		require.Len(t, view.Messages, 1)
		require.NotNil(t, view.Messages[0].Author)
		assert.Equal(t, "Deleted user", view.Messages[0].Author.FullName)
		// Bob's slot is French.
		assert.Equal(t, "Bonjour", view.Messages[0].Text)
	})

	t.Run("sad path - unknown peer", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().GetUserByID(gomock.Any(), alice).
			Return(&userModels.User{ID: alice, Username: "alice"}, nil)
		f.users.EXPECT().GetUserByUsername(gomock.Any(), "ghost").
			Return(nil, errors.New("not found"))

		_, err := f.uc.GetOrCreateConversation(context.Background(), alice, "ghost")
		assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
	})
}

func Test_ParticipantLanguage(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("set flips only the caller's slot", func(t *testing.T) {
		f := newFixture(t)
		conv := conversationBetween(alice, bob)

		f.users.EXPECT().GetUserByUsername(gomock.Any(), "bob").
			Return(&userModels.User{ID: bob, Username: "bob"}, nil)
		f.repo.EXPECT().GetConversationByPair(gomock.Any(), alice, bob).Return(conv, nil)
		f.repo.EXPECT().UpdateParticipantLanguage(gomock.Any(), conv.ID, true, model.LanguageFrench).Return(nil)

		err := f.uc.SetParticipantLanguage(context.Background(), alice, "bob", model.LanguageFrench)
		require.NoError(t, err)
	})

	t.Run("invalid language never reaches storage", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.SetParticipantLanguage(context.Background(), alice, "bob", model.Language("Klingon"))
		assert.ErrorIs(t, err, appErrors.ErrInvalidLanguage)
	})

	t.Run("each participant reads their own slot", func(t *testing.T) {
		f := newFixture(t)
		conv := conversationBetween(alice, bob)

		f.users.EXPECT().GetUserByUsername(gomock.Any(), "bob").
			Return(&userModels.User{ID: bob, Username: "bob"}, nil)
		f.repo.EXPECT().GetConversationByPair(gomock.Any(), alice, bob).Return(conv, nil)

		lang, err := f.uc.GetParticipantLanguage(context.Background(), alice, "bob")
		require.NoError(t, err)
		assert.Equal(t, model.LanguageEnglish, lang)

		f.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").
			Return(&userModels.User{ID: alice, Username: "alice"}, nil)
		f.repo.EXPECT().GetConversationByPair(gomock.Any(), bob, alice).Return(conv, nil)

		lang, err = f.uc.GetParticipantLanguage(context.Background(), bob, "alice")
		require.NoError(t, err)
		assert.Equal(t, model.LanguageFrench, lang)
	})
}

func Test_MarkSeen(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		f := newFixture(t)
		conv := conversationBetween(alice, bob)

		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)
		f.repo.EXPECT().MarkAllSeenExcept(gomock.Any(), conv.ID, alice).Return(2, nil)

		n, err := f.uc.MarkSeen(context.Background(), conv.ID, alice)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("sad path - outsider", func(t *testing.T) {
		f := newFixture(t)
		conv := conversationBetween(alice, bob)

		f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)

		_, err := f.uc.MarkSeen(context.Background(), conv.ID, uuid.New())
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})
}

func Test_ListConversations(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	f := newFixture(t)
	conv := conversationBetween(alice, bob)

	f.repo.EXPECT().ListConversationsForUser(gomock.Any(), alice).
		Return([]model.Conversation{*conv}, nil)
	f.users.EXPECT().GetUserByID(gomock.Any(), bob).
		Return(nil, errors.New("gone"))
	f.repo.EXPECT().LatestMessage(gomock.Any(), conv.ID).
		Return(&model.Message{
			ID:             uuid.New(),
			ConversationID: conv.ID,
			UserID:         bob,
			EnglishText:    "Hello",
			FrenchText:     "Bonjour",
		}, nil)

	entries, err := f.uc.ListConversations(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Deleted user", entries[0].OtherUser.FullName)
	require.NotNil(t, entries[0].LastMessage)
	assert.Equal(t, "Hello", entries[0].LastMessage.Text)
}

func Test_ParticipantLanguages(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	f := newFixture(t)
	conv := conversationBetween(alice, bob)

	f.repo.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)

	langs, err := f.uc.ParticipantLanguages(context.Background(), conv.ID)
	require.NoError(t, err)
	require.Len(t, langs, 2)
	assert.Equal(t, model.LanguageEnglish, langs[alice])
	assert.Equal(t, model.LanguageFrench, langs[bob])
}

func Test_UnreadCount(t *testing.T) {
	f := newFixture(t)
	alice := uuid.New()

	f.repo.EXPECT().CountUnreadForUser(gomock.Any(), alice).Return(7, nil)

	n, err := f.uc.UnreadCount(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}
