package profileUseCase

import (
	"context"

	"github.com/drinkwithme-lk/server/internal/entity"
	profileRepo "github.com/drinkwithme-lk/server/internal/repository/profile"
)

type IProfileUseCase interface {
	Get(ctx context.Context, userID uint) (*entity.Profile, error)
	Update(ctx context.Context, userID uint, req entity.UpdateProfileRequest) (*entity.Profile, error)
}

type profileUseCase struct {
	profileRepo profileRepo.IProfileRepo
}

func New(profileRepo profileRepo.IProfileRepo) IProfileUseCase {
	return &profileUseCase{
		profileRepo: profileRepo,
	}
}

func (p *profileUseCase) Get(ctx context.Context, userID uint) (*entity.Profile, error) {
	return p.profileRepo.GetByUserID(ctx, userID)
}

func (p *profileUseCase) Update(ctx context.Context, userID uint, req entity.UpdateProfileRequest) (*entity.Profile, error) {
	return p.profileRepo.Update(ctx, userID, req)
}
