package restaurantUseCase

import (
	"context"
	"errors"
	"testing"

	"github.com/drinkwithme-lk/server/internal/entity"
	"gotest.tools/assert"
)

type restaurantRepoStub struct {
	rows       map[uint]*entity.Restaurant
	nextID     uint
	statusSets []struct {
		id         uint
		status     entity.RestaurantStatus
		reviewerID uint
	}
}

func newRestaurantRepoStub() *restaurantRepoStub {
	return &restaurantRepoStub{rows: make(map[uint]*entity.Restaurant), nextID: 1}
}

func (s *restaurantRepoStub) GetAllApproved(context.Context) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	for _, r := range s.rows {
		if r.Status == entity.RestaurantApproved {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *restaurantRepoStub) GetByID(_ context.Context, id uint) (*entity.Restaurant, error) {
	if r, ok := s.rows[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (s *restaurantRepoStub) Search(context.Context, string) ([]entity.Restaurant, error) {
	return nil, nil
}

func (s *restaurantRepoStub) GetByFilters(context.Context, entity.RestaurantFilters) ([]entity.Restaurant, error) {
	return nil, nil
}

func (s *restaurantRepoStub) GetByOwner(_ context.Context, ownerID uint) (*entity.Restaurant, error) {
	for _, r := range s.rows {
		if r.OwnerID != nil && *r.OwnerID == ownerID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *restaurantRepoStub) Create(_ context.Context, restaurant *entity.Restaurant) error {
	restaurant.ID = s.nextID
	s.nextID++
	copied := *restaurant
	s.rows[restaurant.ID] = &copied
	return nil
}

func (s *restaurantRepoStub) Update(_ context.Context, id uint, req entity.UpdateRestaurantRequest) (*entity.Restaurant, error) {
	r := s.rows[id]
	if req.Name != nil {
		r.Name = *req.Name
	}
	copied := *r
	return &copied, nil
}

func (s *restaurantRepoStub) GetByStatus(_ context.Context, status entity.RestaurantStatus) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	for _, r := range s.rows {
		if r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *restaurantRepoStub) SetStatus(_ context.Context, id uint, status entity.RestaurantStatus, reviewerID uint) error {
	s.statusSets = append(s.statusSets, struct {
		id         uint
		status     entity.RestaurantStatus
		reviewerID uint
	}{id, status, reviewerID})
	if r, ok := s.rows[id]; ok {
		r.Status = status
		r.ReviewedBy = &reviewerID
	}
	return nil
}

func (s *restaurantRepoStub) GetReservations(context.Context, uint) ([]entity.Reservation, error) {
	return []entity.Reservation{{ID: 1}}, nil
}

type reviewRepoStub struct {
	reviews []entity.Review
}

func (s *reviewRepoStub) GetForRestaurant(_ context.Context, restaurantID uint) ([]entity.Review, error) {
	var out []entity.Review
	for _, r := range s.reviews {
		if r.RestaurantID == restaurantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *reviewRepoStub) Create(_ context.Context, review *entity.Review) error {
	review.ID = uint(len(s.reviews) + 1)
	s.reviews = append(s.reviews, *review)
	return nil
}

type userRepoStub struct {
	roles map[uint][]entity.Role
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{roles: make(map[uint][]entity.Role)}
}

func (s *userRepoStub) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	return user, nil
}

func (s *userRepoStub) GetUserByID(context.Context, uint) (*entity.User, error) {
	return nil, nil
}

func (s *userRepoStub) GetUserByUnameOrEmail(context.Context, string, string) (*entity.User, error) {
	return nil, nil
}

func (s *userRepoStub) HasRole(_ context.Context, userID uint, role entity.Role) (bool, error) {
	for _, have := range s.roles[userID] {
		if have == role {
			return true, nil
		}
	}
	return false, nil
}

func (s *userRepoStub) AssignRole(_ context.Context, userID uint, role entity.Role) error {
	if ok, _ := s.HasRole(context.Background(), userID, role); ok {
		return nil
	}
	s.roles[userID] = append(s.roles[userID], role)
	return nil
}

func newRestaurantFixture() (*restaurantRepoStub, *reviewRepoStub, *userRepoStub, IRestaurantUseCase) {
	restaurants := newRestaurantRepoStub()
	reviews := &reviewRepoStub{}
	users := newUserRepoStub()
	return restaurants, reviews, users, New(restaurants, reviews, users)
}

func TestSubmitRestaurantStartsPendingAndGrantsRole(t *testing.T) {
	restaurants, _, users, uc := newRestaurantFixture()

	created, err := uc.SubmitRestaurant(context.Background(), 5, entity.CreateRestaurantRequest{
		Name:    "The Thirsty Crow",
		Address: "12 Hill St",
	})

	assert.NilError(t, err)
	assert.Equal(t, created.Status, entity.RestaurantPending)
	assert.Equal(t, *created.OwnerID, uint(5))
	hasRole, _ := users.HasRole(context.Background(), 5, entity.RoleRestaurantOwner)
	assert.Assert(t, hasRole)

	// Pending listings stay out of the public catalog until approved.
	approved, err := uc.ListApproved(context.Background())
	assert.NilError(t, err)
	assert.Equal(t, len(approved), 0)
	assert.Equal(t, len(restaurants.rows), 1)
}

func TestSubmitRestaurantOnePerOwner(t *testing.T) {
	_, _, _, uc := newRestaurantFixture()

	_, err := uc.SubmitRestaurant(context.Background(), 5, entity.CreateRestaurantRequest{Name: "First"})
	assert.NilError(t, err)

	_, err = uc.SubmitRestaurant(context.Background(), 5, entity.CreateRestaurantRequest{Name: "Second"})
	assert.Assert(t, errors.Is(err, ErrHasListed))
}

func TestUpdateRestaurantRequiresOwnership(t *testing.T) {
	_, _, _, uc := newRestaurantFixture()

	created, err := uc.SubmitRestaurant(context.Background(), 5, entity.CreateRestaurantRequest{Name: "Mine"})
	assert.NilError(t, err)

	name := "Stolen"
	_, err = uc.UpdateRestaurant(context.Background(), 6, created.ID, entity.UpdateRestaurantRequest{Name: &name})
	assert.Assert(t, errors.Is(err, ErrNotOwner))

	updated, err := uc.UpdateRestaurant(context.Background(), 5, created.ID, entity.UpdateRestaurantRequest{Name: &name})
	assert.NilError(t, err)
	assert.Equal(t, updated.Name, "Stolen")
}

func TestApproveRequiresAdmin(t *testing.T) {
	restaurants, _, users, uc := newRestaurantFixture()

	created, err := uc.SubmitRestaurant(context.Background(), 5, entity.CreateRestaurantRequest{Name: "Pending"})
	assert.NilError(t, err)

	err = uc.Approve(context.Background(), 7, created.ID)
	assert.Assert(t, errors.Is(err, ErrNotAdmin))
	assert.Equal(t, len(restaurants.statusSets), 0)

	users.roles[7] = []entity.Role{entity.RoleAdmin}
	assert.NilError(t, uc.Approve(context.Background(), 7, created.ID))
	assert.Equal(t, restaurants.rows[created.ID].Status, entity.RestaurantApproved)
	assert.Equal(t, *restaurants.rows[created.ID].ReviewedBy, uint(7))
}

func TestRejectRecordsReviewer(t *testing.T) {
	restaurants, _, users, uc := newRestaurantFixture()
	users.roles[7] = []entity.Role{entity.RoleAdmin}

	created, err := uc.SubmitRestaurant(context.Background(), 5, entity.CreateRestaurantRequest{Name: "Pending"})
	assert.NilError(t, err)

	assert.NilError(t, uc.Reject(context.Background(), 7, created.ID))
	assert.Equal(t, restaurants.rows[created.ID].Status, entity.RestaurantRejected)
}

func TestAddReviewRequiresExistingRestaurant(t *testing.T) {
	_, reviews, _, uc := newRestaurantFixture()

	_, err := uc.AddReview(context.Background(), 1, 99, entity.CreateReviewRequest{Rating: 4})
	assert.Assert(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, len(reviews.reviews), 0)
}

func TestReservationsRequireOwnership(t *testing.T) {
	_, _, _, uc := newRestaurantFixture()

	created, err := uc.SubmitRestaurant(context.Background(), 5, entity.CreateRestaurantRequest{Name: "Mine"})
	assert.NilError(t, err)

	_, err = uc.Reservations(context.Background(), 6, created.ID)
	assert.Assert(t, errors.Is(err, ErrNotOwner))

	reservations, err := uc.Reservations(context.Background(), 5, created.ID)
	assert.NilError(t, err)
	assert.Equal(t, len(reservations), 1)
}
