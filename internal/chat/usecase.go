package chat

import (
	"context"

	"github.com/google/uuid"

	"polychat/internal/chat/model"
)

type ChatUsecase interface {
	// GetOrCreateConversation resolves the other user by username, gets or
	// creates the pair conversation, and returns the full assembled view
	// rendered in the caller's conversation language.
	GetOrCreateConversation(ctx context.Context, currentUserID uuid.UUID, otherUsername string) (*ConversationViewDTO, error)

	// GetConversation is the read-only variant; NotFound when either the
	// user or the conversation does not exist yet.
	GetConversation(ctx context.Context, currentUserID uuid.UUID, otherUsername string) (*ConversationViewDTO, error)

	ListConversations(ctx context.Context, userID uuid.UUID) ([]InboxEntryDTO, error)

	SetParticipantLanguage(ctx context.Context, userID uuid.UUID, otherUsername string, lang model.Language) error
	GetParticipantLanguage(ctx context.Context, userID uuid.UUID, otherUsername string) (model.Language, error)

	// SendMessage validates, translates (degrading to a verbatim copy on
	// gateway failure) and appends. Never blocked by the translator.
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	// MarkSeen marks every unseen message in the conversation that the
	// viewer did not author. Repeat calls are no-ops.
	MarkSeen(ctx context.Context, conversationID, viewerID uuid.UUID) (int, error)

	LastMessage(ctx context.Context, conversationID, viewerID uuid.UUID) (*MessageDTO, error)

	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)

	// ParticipantLanguages returns the two member ids of a conversation
	// mapped to their display languages, for change-feed authorization and
	// per-subscriber rendering.
	ParticipantLanguages(ctx context.Context, conversationID uuid.UUID) (map[uuid.UUID]model.Language, error)
}
