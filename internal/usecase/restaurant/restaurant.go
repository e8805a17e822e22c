package restaurantUseCase

import (
	"context"
	"errors"

	"github.com/drinkwithme-lk/server/internal/entity"
	restaurantRepo "github.com/drinkwithme-lk/server/internal/repository/restaurant"
	reviewRepo "github.com/drinkwithme-lk/server/internal/repository/review"
	userRepo "github.com/drinkwithme-lk/server/internal/repository/user"
)

var (
	ErrNotFound  = errors.New("restaurant not found")
	ErrNotOwner  = errors.New("user does not own this restaurant")
	ErrNotAdmin  = errors.New("user is not an admin")
	ErrHasListed = errors.New("user already has a restaurant listed")
)

type IRestaurantUseCase interface {
	// Catalog (approved restaurants only).
	ListApproved(ctx context.Context) ([]entity.Restaurant, error)
	Get(ctx context.Context, id uint) (*entity.Restaurant, error)
	Search(ctx context.Context, query string) ([]entity.Restaurant, error)
	Filter(ctx context.Context, filters entity.RestaurantFilters) ([]entity.Restaurant, error)

	// Owner flow: submissions start out pending until an admin reviews them.
	MyRestaurant(ctx context.Context, ownerID uint) (*entity.Restaurant, error)
	SubmitRestaurant(ctx context.Context, ownerID uint, req entity.CreateRestaurantRequest) (*entity.Restaurant, error)
	UpdateRestaurant(ctx context.Context, ownerID, restaurantID uint, req entity.UpdateRestaurantRequest) (*entity.Restaurant, error)
	Reservations(ctx context.Context, ownerID, restaurantID uint) ([]entity.Reservation, error)

	// Admin flow.
	ListByStatus(ctx context.Context, adminID uint, status entity.RestaurantStatus) ([]entity.Restaurant, error)
	Approve(ctx context.Context, adminID, restaurantID uint) error
	Reject(ctx context.Context, adminID, restaurantID uint) error

	// Reviews.
	Reviews(ctx context.Context, restaurantID uint) ([]entity.Review, error)
	AddReview(ctx context.Context, userID, restaurantID uint, req entity.CreateReviewRequest) (*entity.Review, error)
}

type restaurantUseCase struct {
	restaurants restaurantRepo.IRestaurantRepo
	reviews     reviewRepo.IReviewRepo
	users       userRepo.IUserRepo
}

func New(
	restaurants restaurantRepo.IRestaurantRepo,
	reviews reviewRepo.IReviewRepo,
	users userRepo.IUserRepo,
) IRestaurantUseCase {
	return &restaurantUseCase{
		restaurants: restaurants,
		reviews:     reviews,
		users:       users,
	}
}

func (u *restaurantUseCase) ListApproved(ctx context.Context) ([]entity.Restaurant, error) {
	return u.restaurants.GetAllApproved(ctx)
}

func (u *restaurantUseCase) Get(ctx context.Context, id uint) (*entity.Restaurant, error) {
	restaurant, err := u.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}
	return restaurant, nil
}

func (u *restaurantUseCase) Search(ctx context.Context, query string) ([]entity.Restaurant, error) {
	return u.restaurants.Search(ctx, query)
}

func (u *restaurantUseCase) Filter(ctx context.Context, filters entity.RestaurantFilters) ([]entity.Restaurant, error) {
	return u.restaurants.GetByFilters(ctx, filters)
}

func (u *restaurantUseCase) MyRestaurant(ctx context.Context, ownerID uint) (*entity.Restaurant, error) {
	restaurant, err := u.restaurants.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}
	return restaurant, nil
}

func (u *restaurantUseCase) SubmitRestaurant(ctx context.Context, ownerID uint, req entity.CreateRestaurantRequest) (*entity.Restaurant, error) {
	existing, err := u.restaurants.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrHasListed
	}

	restaurant := &entity.Restaurant{
		OwnerID:     &ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsBYOB:      req.IsBYOB,
		Cuisine:     req.Cuisine,
		Phone:       req.Phone,
		Status:      entity.RestaurantPending,
	}
	if err := u.restaurants.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	// Listing a restaurant grants the owner role; granting twice is a no-op.
	if err := u.users.AssignRole(ctx, ownerID, entity.RoleRestaurantOwner); err != nil {
		return nil, err
	}

	return restaurant, nil
}

func (u *restaurantUseCase) UpdateRestaurant(ctx context.Context, ownerID, restaurantID uint, req entity.UpdateRestaurantRequest) (*entity.Restaurant, error) {
	restaurant, err := u.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}
	if restaurant.OwnerID == nil || *restaurant.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	return u.restaurants.Update(ctx, restaurantID, req)
}

func (u *restaurantUseCase) Reservations(ctx context.Context, ownerID, restaurantID uint) ([]entity.Reservation, error) {
	restaurant, err := u.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}
	if restaurant.OwnerID == nil || *restaurant.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	return u.restaurants.GetReservations(ctx, restaurantID)
}

func (u *restaurantUseCase) ListByStatus(ctx context.Context, adminID uint, status entity.RestaurantStatus) ([]entity.Restaurant, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	return u.restaurants.GetByStatus(ctx, status)
}

func (u *restaurantUseCase) Approve(ctx context.Context, adminID, restaurantID uint) error {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	return u.restaurants.SetStatus(ctx, restaurantID, entity.RestaurantApproved, adminID)
}

func (u *restaurantUseCase) Reject(ctx context.Context, adminID, restaurantID uint) error {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	return u.restaurants.SetStatus(ctx, restaurantID, entity.RestaurantRejected, adminID)
}

func (u *restaurantUseCase) Reviews(ctx context.Context, restaurantID uint) ([]entity.Review, error) {
	return u.reviews.GetForRestaurant(ctx, restaurantID)
}

func (u *restaurantUseCase) AddReview(ctx context.Context, userID, restaurantID uint, req entity.CreateReviewRequest) (*entity.Review, error) {
	restaurant, err := u.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}

	review := &entity.Review{
		RestaurantID: restaurantID,
		UserID:       userID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := u.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (u *restaurantUseCase) requireAdmin(ctx context.Context, userID uint) error {
	isAdmin, err := u.users.HasRole(ctx, userID, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrNotAdmin
	}
	return nil
}
