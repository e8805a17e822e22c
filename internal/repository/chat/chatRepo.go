package chatRepo

import (
	"context"

	"github.com/drinkwithme-lk/server/internal/entity"
	"gorm.io/gorm"
)

type IChatRepo interface {
	GetMessages(ctx context.Context, matchID uint) ([]entity.Message, error)
	CreateMessage(ctx context.Context, message *entity.Message) error

	// MarkSeen flags every message in the match not sent by userID.
	MarkSeen(ctx context.Context, matchID, userID uint) error
}

type ChatRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IChatRepo {
	return &ChatRepo{db: db}
}

func (r *ChatRepo) GetMessages(ctx context.Context, matchID uint) ([]entity.Message, error) {
	var messages []entity.Message
	result := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Find(&messages)
	return messages, result.Error
}

func (r *ChatRepo) CreateMessage(ctx context.Context, message *entity.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *ChatRepo) MarkSeen(ctx context.Context, matchID, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("match_id = ? AND sender_id <> ?", matchID, userID).
		Update("seen", true).Error
}
