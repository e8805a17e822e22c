package matchRepo

import (
	"context"
	"errors"

	"github.com/drinkwithme-lk/server/internal/entity"
	"gorm.io/gorm"
)

type IMatchRepo interface {
	// FindByPair looks the match up in both stored orderings and returns nil
	// when the pair has never matched.
	FindByPair(ctx context.Context, userA, userB uint) (*entity.Match, error)

	// Create inserts the match row. The unique index on the normalized pair
	// surfaces a concurrent duplicate as gorm.ErrDuplicatedKey.
	Create(ctx context.Context, match *entity.Match) error

	GetByID(ctx context.Context, id uint) (*entity.Match, error)

	// ListForUser returns the user's accepted matches, most recently
	// updated first.
	ListForUser(ctx context.Context, userID uint) ([]entity.Match, error)

	WithTx(tx *gorm.DB) IMatchRepo
}

type MatchRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IMatchRepo {
	return &MatchRepo{db: db}
}

func (r *MatchRepo) WithTx(tx *gorm.DB) IMatchRepo {
	if tx == nil {
		return r
	}
	return &MatchRepo{db: tx}
}

func (r *MatchRepo) FindByPair(ctx context.Context, userA, userB uint) (*entity.Match, error) {
	var match entity.Match
	result := r.db.WithContext(ctx).
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
			userA, userB, userB, userA).
		First(&match)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &match, nil
}

func (r *MatchRepo) Create(ctx context.Context, match *entity.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *MatchRepo) GetByID(ctx context.Context, id uint) (*entity.Match, error) {
	var match entity.Match
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&match)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &match, nil
}

func (r *MatchRepo) ListForUser(ctx context.Context, userID uint) ([]entity.Match, error) {
	var matches []entity.Match
	result := r.db.WithContext(ctx).
		Where("(user1_id = ? OR user2_id = ?) AND status = ?", userID, userID, entity.MatchStatusAccepted).
		Order("updated_at DESC").
		Find(&matches)
	return matches, result.Error
}
