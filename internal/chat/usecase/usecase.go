package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"polychat/config"
	"polychat/internal/chat"
	"polychat/internal/chat/model"
	"polychat/internal/translation"
	"polychat/internal/user"
	userModels "polychat/internal/user/model"
	"polychat/pkg/errors"
	"polychat/pkg/logger"
)

// deletedUserPlaceholder is rendered for messages whose author row is gone.
const deletedUserPlaceholder = "Deleted user"

type ChatUsecase struct {
	repo       chat.ChatRepository
	users      user.UserRepository
	translator translation.Translator
	logger     logger.Logger
	config     config.Config
}

func NewChatUsecase(repo chat.ChatRepository, users user.UserRepository, translator translation.Translator, logger logger.Logger, config config.Config) *ChatUsecase {
	return &ChatUsecase{
		repo:       repo,
		users:      users,
		translator: translator,
		logger:     logger,
		config:     config,
	}
}

func (uc *ChatUsecase) GetOrCreateConversation(ctx context.Context, currentUserID uuid.UUID, otherUsername string) (*chat.ConversationViewDTO, error) {
	currentUser, err := uc.users.GetUserByID(ctx, currentUserID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	otherUser, err := uc.users.GetUserByUsername(ctx, otherUsername)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	conv, err := uc.repo.GetOrCreateConversation(ctx, currentUser.ID, otherUser.ID)
	if err != nil {
		uc.logger.Error("get-or-create conversation failed", "other", otherUsername, "err", err)
		return nil, errors.ErrConversationCreateFailed(err)
	}

	return uc.assembleView(ctx, conv, currentUser, otherUser)
}

func (uc *ChatUsecase) GetConversation(ctx context.Context, currentUserID uuid.UUID, otherUsername string) (*chat.ConversationViewDTO, error) {
	currentUser, err := uc.users.GetUserByID(ctx, currentUserID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	otherUser, err := uc.users.GetUserByUsername(ctx, otherUsername)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	conv, err := uc.repo.GetConversationByPair(ctx, currentUser.ID, otherUser.ID)
	if err != nil {
		return nil, errors.ErrConversationNotFound
	}

	return uc.assembleView(ctx, conv, currentUser, otherUser)
}

// assembleView joins the message history with current author rows and
// renders every message in the viewer's conversation language. A missing
// author becomes a placeholder instead of failing the join.
func (uc *ChatUsecase) assembleView(ctx context.Context, conv *model.Conversation, currentUser, otherUser *userModels.User) (*chat.ConversationViewDTO, error) {
	msgs, err := uc.repo.ListMessagesByConversation(ctx, conv.ID)
	if err != nil {
		uc.logger.Error("failed to load messages", "conversation_id", conv.ID, "err", err)
		return nil, errors.Internal("failed to load messages")
	}

	viewerLang := conv.LangFor(currentUser.ID)
	out := make([]chat.MessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, toMessageDTO(&msgs[i], viewerLang))
	}

	return &chat.ConversationViewDTO{
		Conversation: toConversationDTO(conv),
		CurrentUser:  toUserDTO(currentUser),
		OtherUser:    toUserDTO(otherUser),
		Messages:     out,
	}, nil
}

func (uc *ChatUsecase) ListConversations(ctx context.Context, userID uuid.UUID) ([]chat.InboxEntryDTO, error) {
	convs, err := uc.repo.ListConversationsForUser(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to list conversations", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to list conversations")
	}

	entries := make([]chat.InboxEntryDTO, 0, len(convs))
	for i := range convs {
		conv := &convs[i]
		entry := chat.InboxEntryDTO{Conversation: toConversationDTO(conv)}

		// Peer may have deleted their account; the entry still renders.
		if other, err := uc.users.GetUserByID(ctx, conv.OtherParticipantID(userID)); err == nil {
			entry.OtherUser = toUserDTO(other)
		} else {
			entry.OtherUser = placeholderUserDTO()
		}

		if last, err := uc.repo.LatestMessage(ctx, conv.ID); err == nil {
			dto := toMessageDTO(last, conv.LangFor(userID))
			entry.LastMessage = &dto
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

func (uc *ChatUsecase) SetParticipantLanguage(ctx context.Context, userID uuid.UUID, otherUsername string, lang model.Language) error {
	if !lang.Valid() {
		return errors.ErrInvalidLanguage
	}

	conv, err := uc.resolvePair(ctx, userID, otherUsername)
	if err != nil {
		return err
	}

	if err := uc.repo.UpdateParticipantLanguage(ctx, conv.ID, conv.ParticipantOneID == userID, lang); err != nil {
		uc.logger.Error("failed to update participant language", "conversation_id", conv.ID, "err", err)
		return errors.Internal("failed to update language")
	}
	return nil
}

func (uc *ChatUsecase) GetParticipantLanguage(ctx context.Context, userID uuid.UUID, otherUsername string) (model.Language, error) {
	conv, err := uc.resolvePair(ctx, userID, otherUsername)
	if err != nil {
		return "", err
	}
	return conv.LangFor(userID), nil
}

// resolvePair looks up the existing conversation for (userID, otherUsername).
// Never creates one.
func (uc *ChatUsecase) resolvePair(ctx context.Context, userID uuid.UUID, otherUsername string) (*model.Conversation, error) {
	otherUser, err := uc.users.GetUserByUsername(ctx, otherUsername)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	conv, err := uc.repo.GetConversationByPair(ctx, userID, otherUser.ID)
	if err != nil {
		return nil, errors.ErrConversationNotFound
	}
	return conv, nil
}

func (uc *ChatUsecase) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (*chat.MessageDTO, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return nil, errors.ErrEmptyMessage
	}
	if !cmd.SourceLang.Valid() {
		return nil, errors.ErrInvalidLanguage
	}

	conv, err := uc.repo.GetConversationByID(ctx, cmd.ConversationID)
	if err != nil {
		return nil, errors.ErrConversationNotFound
	}
	if !conv.HasParticipant(cmd.AuthorID) {
		return nil, errors.ErrNotParticipant
	}

	// Translation is always attempted, even when both participants read
	// the same language. Failure degrades to a verbatim copy and the send
	// proceeds.
	translated, err := uc.translator.Translate(ctx, text, string(cmd.SourceLang))
	if err != nil {
		uc.logger.Warn("translation degraded to pass-through", "conversation_id", conv.ID, "err", err)
		translated = text
	}

	msg := &model.Message{
		ConversationID: conv.ID,
		UserID:         cmd.AuthorID,
		ImageURL:       cmd.ImageURL,
		Seen:           false,
	}
	if cmd.SourceLang == model.LanguageEnglish {
		msg.EnglishText = text
		msg.FrenchText = translated
	} else {
		msg.FrenchText = text
		msg.EnglishText = translated
	}

	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Error("failed to append message", "conversation_id", conv.ID, "err", err)
		return nil, errors.Internal("failed to send message")
	}

	dto := toMessageDTO(msg, conv.LangFor(cmd.AuthorID))
	return &dto, nil
}

func (uc *ChatUsecase) MarkSeen(ctx context.Context, conversationID, viewerID uuid.UUID) (int, error) {
	conv, err := uc.repo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return 0, errors.ErrConversationNotFound
	}
	if !conv.HasParticipant(viewerID) {
		return 0, errors.ErrNotParticipant
	}

	n, err := uc.repo.MarkAllSeenExcept(ctx, conversationID, viewerID)
	if err != nil {
		uc.logger.Error("failed to mark messages seen", "conversation_id", conversationID, "err", err)
		return 0, errors.Internal("failed to mark messages seen")
	}
	return n, nil
}

func (uc *ChatUsecase) LastMessage(ctx context.Context, conversationID, viewerID uuid.UUID) (*chat.MessageDTO, error) {
	conv, err := uc.repo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, errors.ErrConversationNotFound
	}
	if !conv.HasParticipant(viewerID) {
		return nil, errors.ErrNotParticipant
	}

	msg, err := uc.repo.LatestMessage(ctx, conversationID)
	if err != nil {
		return nil, errors.ErrMessageNotFound
	}

	dto := toMessageDTO(msg, conv.LangFor(viewerID))
	return &dto, nil
}

func (uc *ChatUsecase) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := uc.repo.CountUnreadForUser(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to count unread messages", "user_id", userID, "err", err)
		return 0, errors.Internal("failed to count unread messages")
	}
	return n, nil
}

func (uc *ChatUsecase) ParticipantLanguages(ctx context.Context, conversationID uuid.UUID) (map[uuid.UUID]model.Language, error) {
	conv, err := uc.repo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, errors.ErrConversationNotFound
	}
	return map[uuid.UUID]model.Language{
		conv.ParticipantOneID: conv.ParticipantOneLang,
		conv.ParticipantTwoID: conv.ParticipantTwoLang,
	}, nil
}

func toConversationDTO(c *model.Conversation) chat.ConversationDTO {
	return chat.ConversationDTO{
		ID:                 c.ID,
		ParticipantOneID:   c.ParticipantOneID,
		ParticipantTwoID:   c.ParticipantTwoID,
		ParticipantOneLang: c.ParticipantOneLang,
		ParticipantTwoLang: c.ParticipantTwoLang,
		CreatedAt:          c.CreatedAt,
	}
}

func toMessageDTO(m *model.Message, viewerLang model.Language) chat.MessageDTO {
	dto := chat.MessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		AuthorID:       m.UserID,
		Text:           m.TextIn(viewerLang),
		EnglishText:    m.EnglishText,
		FrenchText:     m.FrenchText,
		ImageURL:       m.ImageURL,
		Seen:           m.Seen,
		CreatedAt:      m.CreatedAt,
	}
	if m.User != nil {
		dto.Author = toUserDTO(m.User)
	} else {
		dto.Author = placeholderUserDTO()
	}
	return dto
}

func toUserDTO(u *userModels.User) *user.UserDTO {
	return &user.UserDTO{
		ID:              u.ID,
		Username:        u.Username,
		FullName:        u.FullName,
		Title:           u.Title,
		About:           u.About,
		ProfileImageURL: u.ProfileImageURL,
	}
}

func placeholderUserDTO() *user.UserDTO {
	return &user.UserDTO{FullName: deletedUserPlaceholder}
}
