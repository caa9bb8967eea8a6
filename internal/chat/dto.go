package chat

import (
	"time"

	"github.com/google/uuid"

	"polychat/internal/chat/model"
	"polychat/internal/user"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler

type SendMessageCommand struct {
	AuthorID       uuid.UUID
	ConversationID uuid.UUID
	Text           string
	// SourceLang is the language the author typed in.
	SourceLang model.Language
	ImageURL   string
}

// Output DTOs
type ConversationDTO struct {
	ID                 uuid.UUID      `json:"id"`
	ParticipantOneID   uuid.UUID      `json:"participant_one_id"`
	ParticipantTwoID   uuid.UUID      `json:"participant_two_id"`
	ParticipantOneLang model.Language `json:"participant_one_lang"`
	ParticipantTwoLang model.Language `json:"participant_two_lang"`
	CreatedAt          time.Time      `json:"created_at"`
}

// MessageDTO is the per-viewer rendering of one message: Text holds the
// slot matching the viewer's language.
type MessageDTO struct {
	ID             uuid.UUID     `json:"id"`
	ConversationID uuid.UUID     `json:"conversation_id"`
	AuthorID       uuid.UUID     `json:"author_id"`
	Author         *user.UserDTO `json:"author,omitempty"`
	Text           string        `json:"text"`
	EnglishText    string        `json:"english_text,omitempty"`
	FrenchText     string        `json:"french_text,omitempty"`
	ImageURL       string        `json:"image_url,omitempty"`
	Seen           bool          `json:"seen"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ConversationViewDTO is the assembled, per-viewer conversation page.
type ConversationViewDTO struct {
	Conversation ConversationDTO `json:"conversation"`
	CurrentUser  *user.UserDTO   `json:"current_user"`
	OtherUser    *user.UserDTO   `json:"other_user"`
	Messages     []MessageDTO    `json:"messages"`
}

// InboxEntryDTO is one row of the conversation list.
type InboxEntryDTO struct {
	Conversation ConversationDTO `json:"conversation"`
	OtherUser    *user.UserDTO   `json:"other_user"`
	LastMessage  *MessageDTO     `json:"last_message,omitempty"`
}
