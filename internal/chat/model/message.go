package model

import (
	"time"

	"github.com/google/uuid"

	user "polychat/internal/user/model"
)

// Message carries both language renditions of one utterance. Exactly one
// slot is the author's verbatim input; the other is a translation, or a
// copy of the original when the translation gateway failed.
type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ConversationID uuid.UUID     `bun:",notnull,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	UserID uuid.UUID  `bun:",notnull,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	EnglishText string `bun:",nullzero"`
	FrenchText  string `bun:",nullzero"`
	ImageURL    string `bun:",nullzero"`

	Seen bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// TextIn selects the slot matching the viewer's language, regardless of
// which slot was native.
func (m *Message) TextIn(lang Language) string {
	if lang == LanguageFrench {
		return m.FrenchText
	}
	return m.EnglishText
}
