package chat

import (
	"context"

	"github.com/google/uuid"

	"polychat/internal/chat/model"
)

type ChatRepository interface {
	// GetOrCreateConversation resolves the conversation for the unordered
	// pair, creating it with defaulted languages when absent. Safe under
	// concurrent calls for the same pair: both callers get the same row.
	GetOrCreateConversation(ctx context.Context, userA, userB uuid.UUID) (*model.Conversation, error)

	// GetConversationByPair is the read-only variant.
	GetConversationByPair(ctx context.Context, userA, userB uuid.UUID) (*model.Conversation, error)

	GetConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error)

	// ListConversationsForUser returns conversations with the user in
	// either participant slot.
	ListConversationsForUser(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error)

	// UpdateParticipantLanguage patches exactly one language slot.
	UpdateParticipantLanguage(ctx context.Context, conversationID uuid.UUID, slotOne bool, lang model.Language) error

	InsertMessage(ctx context.Context, msg *model.Message) error

	// ListMessagesByConversation returns messages ascending by creation
	// time, authors joined (nil author for deleted users).
	ListMessagesByConversation(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error)

	// MarkAllSeenExcept flips seen on unseen messages not authored by
	// viewerID. Returns the number of rows updated; idempotent.
	MarkAllSeenExcept(ctx context.Context, conversationID, viewerID uuid.UUID) (int, error)

	// LatestMessage returns the newest message of the conversation.
	LatestMessage(ctx context.Context, conversationID uuid.UUID) (*model.Message, error)

	// CountUnreadForUser totals unseen messages addressed to the user
	// across all their conversations.
	CountUnreadForUser(ctx context.Context, userID uuid.UUID) (int, error)
}
