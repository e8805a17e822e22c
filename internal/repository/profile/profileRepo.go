package profileRepo

import (
	"context"

	"github.com/drinkwithme-lk/server/internal/entity"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type IProfileRepo interface {
	GetByUserID(ctx context.Context, userID uint) (*entity.Profile, error)
	GetByUserIDs(ctx context.Context, userIDs []uint) ([]entity.Profile, error)
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, userID uint, req entity.UpdateProfileRequest) (*entity.Profile, error)
}

type ProfileRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	var profile entity.Profile
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile)
	return &profile, result.Error
}

func (r *ProfileRepo) GetByUserIDs(ctx context.Context, userIDs []uint) ([]entity.Profile, error) {
	var profiles []entity.Profile
	if len(userIDs) == 0 {
		return profiles, nil
	}
	result := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profiles)
	return profiles, result.Error
}

func (r *ProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepo) Update(ctx context.Context, userID uint, req entity.UpdateProfileRequest) (*entity.Profile, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.FavoriteDrink != nil {
		updates["favorite_drink"] = *req.FavoriteDrink
	}
	if req.Interests != nil {
		updates["interests"] = pq.StringArray(*req.Interests)
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&entity.Profile{}).
			Where("user_id = ?", userID).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	return r.GetByUserID(ctx, userID)
}
