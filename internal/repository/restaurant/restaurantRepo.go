package restaurantRepo

import (
	"context"
	"errors"

	"github.com/drinkwithme-lk/server/internal/entity"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type IRestaurantRepo interface {
	GetAllApproved(ctx context.Context) ([]entity.Restaurant, error)
	GetByID(ctx context.Context, id uint) (*entity.Restaurant, error)
	Search(ctx context.Context, query string) ([]entity.Restaurant, error)
	GetByFilters(ctx context.Context, filters entity.RestaurantFilters) ([]entity.Restaurant, error)

	GetByOwner(ctx context.Context, ownerID uint) (*entity.Restaurant, error)
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	Update(ctx context.Context, id uint, req entity.UpdateRestaurantRequest) (*entity.Restaurant, error)

	GetByStatus(ctx context.Context, status entity.RestaurantStatus) ([]entity.Restaurant, error)
	SetStatus(ctx context.Context, id uint, status entity.RestaurantStatus, reviewerID uint) error

	GetReservations(ctx context.Context, restaurantID uint) ([]entity.Reservation, error)
}

type RestaurantRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IRestaurantRepo {
	return &RestaurantRepo{db: db}
}

func (r *RestaurantRepo) GetAllApproved(ctx context.Context) ([]entity.Restaurant, error) {
	var restaurants []entity.Restaurant
	result := r.db.WithContext(ctx).
		Where("status = ?", entity.RestaurantApproved).
		Order("rating DESC").
		Find(&restaurants)
	return restaurants, result.Error
}

func (r *RestaurantRepo) GetByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &restaurant, nil
}

func (r *RestaurantRepo) Search(ctx context.Context, query string) ([]entity.Restaurant, error) {
	var restaurants []entity.Restaurant
	pattern := "%" + query + "%"
	result := r.db.WithContext(ctx).
		Where("status = ?", entity.RestaurantApproved).
		Where("name ILIKE ? OR cuisine ILIKE ?", pattern, pattern).
		Find(&restaurants)
	return restaurants, result.Error
}

func (r *RestaurantRepo) GetByFilters(ctx context.Context, filters entity.RestaurantFilters) ([]entity.Restaurant, error) {
	query := r.db.WithContext(ctx).Where("status = ?", entity.RestaurantApproved)

	if filters.IsBYOB != nil {
		query = query.Where("is_byob = ?", *filters.IsBYOB)
	}
	if filters.MinRating > 0 {
		query = query.Where("rating >= ?", filters.MinRating)
	}
	if filters.City != "" {
		query = query.Where("address ILIKE ?", "%"+filters.City+"%")
	}

	var restaurants []entity.Restaurant
	result := query.Order("rating DESC").Find(&restaurants)
	return restaurants, result.Error
}

func (r *RestaurantRepo) GetByOwner(ctx context.Context, ownerID uint) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	result := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&restaurant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &restaurant, nil
}

func (r *RestaurantRepo) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *RestaurantRepo) Update(ctx context.Context, id uint, req entity.UpdateRestaurantRequest) (*entity.Restaurant, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Cuisine != nil {
		updates["cuisine"] = *req.Cuisine
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.IsBYOB != nil {
		updates["is_byob"] = *req.IsBYOB
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Photos != nil {
		updates["photos"] = pq.StringArray(*req.Photos)
	}
	if req.Features != nil {
		updates["features"] = pq.StringArray(*req.Features)
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&entity.Restaurant{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	return r.GetByID(ctx, id)
}

func (r *RestaurantRepo) GetByStatus(ctx context.Context, status entity.RestaurantStatus) ([]entity.Restaurant, error) {
	var restaurants []entity.Restaurant
	result := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&restaurants)
	return restaurants, result.Error
}

func (r *RestaurantRepo) SetStatus(ctx context.Context, id uint, status entity.RestaurantStatus, reviewerID uint) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"reviewed_by": reviewerID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RestaurantRepo) GetReservations(ctx context.Context, restaurantID uint) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	result := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("date ASC").
		Find(&reservations)
	return reservations, result.Error
}
