package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	user "polychat/internal/user/model"
)

// Language is a participant's display language for a conversation.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageFrench  Language = "French"
)

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageFrench
}

// Counterpart returns the other supported language.
func (l Language) Counterpart() Language {
	if l == LanguageEnglish {
		return LanguageFrench
	}
	return LanguageEnglish
}

type Conversation struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ParticipantOneID uuid.UUID  `bun:",notnull,type:uuid"`
	ParticipantOne   *user.User `bun:"rel:belongs-to,join:participant_one_id=id"`

	ParticipantTwoID uuid.UUID  `bun:",notnull,type:uuid"`
	ParticipantTwo   *user.User `bun:"rel:belongs-to,join:participant_two_id=id"`

	// Each participant reads the thread in their own language.
	ParticipantOneLang Language `bun:",notnull,default:'English'"`
	ParticipantTwoLang Language `bun:",notnull,default:'English'"`

	// PairKey is the canonical order-independent pair identifier. The
	// unique constraint on it is what serializes concurrent creation.
	PairKey string `bun:",unique,notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// PairKeyFor canonicalizes an unordered user pair: lower uuid first.
func PairKeyFor(a, b uuid.UUID) string {
	as, bs := a.String(), b.String()
	if strings.Compare(as, bs) > 0 {
		as, bs = bs, as
	}
	return as + "|" + bs
}

// LangFor returns the language slot belonging to userID, defaulting to
// English for a non-participant (callers authorize before asking).
func (c *Conversation) LangFor(userID uuid.UUID) Language {
	if c.ParticipantOneID == userID {
		return c.ParticipantOneLang
	}
	return c.ParticipantTwoLang
}

func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.ParticipantOneID == userID || c.ParticipantTwoID == userID
}

// OtherParticipantID returns the peer of userID in the pair.
func (c *Conversation) OtherParticipantID(userID uuid.UUID) uuid.UUID {
	if c.ParticipantOneID == userID {
		return c.ParticipantTwoID
	}
	return c.ParticipantOneID
}
