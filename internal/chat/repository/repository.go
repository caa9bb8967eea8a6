package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"polychat/internal/chat/model"
	"polychat/pkg/logger"
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
)

func NewChatRepository(db *bun.DB, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: &logger,
	}
}

// GetOrCreateConversation inserts behind the pair_key unique constraint:
// ON CONFLICT DO NOTHING, then reread by pair key. Two racing callers both
// land on the same row; the loser's insert is silently dropped.
func (r *ChatRepository) GetOrCreateConversation(ctx context.Context, userA, userB uuid.UUID) (*model.Conversation, error) {
	conv := &model.Conversation{
		ParticipantOneID:   userA,
		ParticipantTwoID:   userB,
		ParticipantOneLang: model.LanguageEnglish,
		ParticipantTwoLang: model.LanguageEnglish,
		PairKey:            model.PairKeyFor(userA, userB),
	}

	_, err := r.db.NewInsert().
		Model(conv).
		On("CONFLICT (pair_key) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.GetOrCreateConversation.Insert")
	}

	got := new(model.Conversation)
	err = r.db.NewSelect().Model(got).
		Where("pair_key = ?", conv.PairKey).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.GetOrCreateConversation.Scan")
	}
	return got, nil
}

func (r *ChatRepository) GetConversationByPair(ctx context.Context, userA, userB uuid.UUID) (*model.Conversation, error) {
	conv := new(model.Conversation)
	err := r.db.NewSelect().Model(conv).
		Where("pair_key = ?", model.PairKeyFor(userA, userB)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetConversationByPair.Scan")
	}
	return conv, nil
}

func (r *ChatRepository) GetConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	conv := new(model.Conversation)
	err := r.db.NewSelect().Model(conv).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetConversationByID.Scan")
	}
	return conv, nil
}

func (r *ChatRepository) ListConversationsForUser(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error) {
	var convs []model.Conversation
	err := r.db.NewSelect().Model(&convs).
		Where("participant_one_id = ? OR participant_two_id = ?", userID, userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListConversationsForUser.Scan")
	}
	return convs, nil
}

func (r *ChatRepository) UpdateParticipantLanguage(ctx context.Context, conversationID uuid.UUID, slotOne bool, lang model.Language) error {
	patch := new(model.Conversation)
	column := "participant_two_lang"
	if slotOne {
		patch.ParticipantOneLang = lang
		column = "participant_one_lang"
	} else {
		patch.ParticipantTwoLang = lang
	}

	res, err := r.db.NewUpdate().
		Model(patch).
		Column(column).
		Where("id = ?", conversationID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.UpdateParticipantLanguage.Update")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrConversationNotFound
	}
	return nil
}

func (r *ChatRepository) InsertMessage(ctx context.Context, msg *model.Message) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.InsertMessage.Insert")
	}
	return nil
}

func (r *ChatRepository) ListMessagesByConversation(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.NewSelect().Model(&msgs).
		Relation("User").
		Where("message.conversation_id = ?", conversationID).
		Order("message.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListMessagesByConversation.Scan")
	}
	return msgs, nil
}

func (r *ChatRepository) MarkAllSeenExcept(ctx context.Context, conversationID, viewerID uuid.UUID) (int, error) {
	res, err := r.db.NewUpdate().
		Model(&model.Message{Seen: true}).
		Column("seen").
		Where("conversation_id = ?", conversationID).
		Where("seen = false").
		Where("user_id != ?", viewerID).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.MarkAllSeenExcept.Update")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.MarkAllSeenExcept.RowsAffected")
	}
	return int(n), nil
}

func (r *ChatRepository) LatestMessage(ctx context.Context, conversationID uuid.UUID) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.LatestMessage.Scan")
	}
	return msg, nil
}

func (r *ChatRepository) CountUnreadForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*model.Message)(nil)).
		Join("JOIN conversations AS c ON c.id = message.conversation_id").
		Where("c.participant_one_id = ? OR c.participant_two_id = ?", userID, userID).
		Where("message.seen = false").
		Where("message.user_id != ?", userID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.CountUnreadForUser.Count")
	}
	return count, nil
}
