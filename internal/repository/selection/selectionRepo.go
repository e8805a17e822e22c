package selectionRepo

import (
	"context"
	"sort"
	"time"

	"github.com/drinkwithme-lk/server/internal/entity"
	"gorm.io/gorm"
)

type ISelectionRepo interface {
	// GetSelections returns the user's selected restaurant ids sorted
	// ascending; an empty slice when the user has none.
	GetSelections(ctx context.Context, userID uint) ([]uint, error)

	// GetUsersByRestaurants returns every selection row whose restaurant is
	// in restaurantIDs, excluding rows belonging to excludeUserID.
	GetUsersByRestaurants(ctx context.Context, restaurantIDs []uint, excludeUserID uint) ([]entity.Selection, error)

	// ReplaceSelections swaps the user's whole selection set in one
	// transaction; a failed insert rolls back the delete. Duplicate ids in
	// the input are collapsed to one row.
	ReplaceSelections(ctx context.Context, userID uint, restaurantIDs []uint) error

	AddSelection(ctx context.Context, userID, restaurantID uint) error
	RemoveSelection(ctx context.Context, userID, restaurantID uint) error

	// WithTx returns a copy bound to the given transaction.
	WithTx(tx *gorm.DB) ISelectionRepo
}

type SelectionRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) ISelectionRepo {
	return &SelectionRepo{db: db}
}

func (r *SelectionRepo) WithTx(tx *gorm.DB) ISelectionRepo {
	if tx == nil {
		return r
	}
	return &SelectionRepo{db: tx}
}

func (r *SelectionRepo) GetSelections(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	result := r.db.WithContext(ctx).
		Model(&entity.Selection{}).
		Where("user_id = ?", userID).
		Pluck("restaurant_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *SelectionRepo) GetUsersByRestaurants(ctx context.Context, restaurantIDs []uint, excludeUserID uint) ([]entity.Selection, error) {
	var selections []entity.Selection
	if len(restaurantIDs) == 0 {
		return selections, nil
	}
	result := r.db.WithContext(ctx).
		Where("restaurant_id IN ? AND user_id <> ?", restaurantIDs, excludeUserID).
		Find(&selections)
	return selections, result.Error
}

func (r *SelectionRepo) ReplaceSelections(ctx context.Context, userID uint, restaurantIDs []uint) error {
	rows := dedupSelections(userID, restaurantIDs)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&entity.Selection{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *SelectionRepo) AddSelection(ctx context.Context, userID, restaurantID uint) error {
	return r.db.WithContext(ctx).Create(&entity.Selection{
		UserID:       userID,
		RestaurantID: restaurantID,
		SelectedAt:   time.Now(),
	}).Error
}

func (r *SelectionRepo) RemoveSelection(ctx context.Context, userID, restaurantID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&entity.Selection{}).Error
}

func dedupSelections(userID uint, restaurantIDs []uint) []entity.Selection {
	now := time.Now()
	seen := make(map[uint]struct{}, len(restaurantIDs))
	rows := make([]entity.Selection, 0, len(restaurantIDs))
	for _, id := range restaurantIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, entity.Selection{
			UserID:       userID,
			RestaurantID: id,
			SelectedAt:   now,
		})
	}
	return rows
}
