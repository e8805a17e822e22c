package reviewRepo

import (
	"context"

	"github.com/drinkwithme-lk/server/internal/entity"
	"gorm.io/gorm"
)

type IReviewRepo interface {
	GetForRestaurant(ctx context.Context, restaurantID uint) ([]entity.Review, error)
	Create(ctx context.Context, review *entity.Review) error
}

type ReviewRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IReviewRepo {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) GetForRestaurant(ctx context.Context, restaurantID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	result := r.db.WithContext(ctx).
		Model(&entity.Review{}).
		Select("reviews.*, profiles.name AS reviewer_name, profiles.avatar_url AS reviewer_avatar").
		Joins("LEFT JOIN profiles ON profiles.user_id = reviews.user_id").
		Where("reviews.restaurant_id = ?", restaurantID).
		Order("reviews.created_at DESC").
		Find(&reviews)
	return reviews, result.Error
}

// Create inserts the review and refreshes the restaurant's denormalized
// rating and review count in the same transaction.
func (r *ReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Exec(`
			UPDATE restaurants SET
				rating = (SELECT AVG(rating) FROM reviews WHERE restaurant_id = ?),
				review_count = (SELECT COUNT(*) FROM reviews WHERE restaurant_id = ?)
			WHERE id = ?`,
			review.RestaurantID, review.RestaurantID, review.RestaurantID,
		).Error
	})
}
