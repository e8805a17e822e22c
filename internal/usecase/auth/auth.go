package authUseCase

import (
	"context"
	"strings"

	"github.com/drinkwithme-lk/server/internal/entity"
	profileRepo "github.com/drinkwithme-lk/server/internal/repository/profile"
	userRepo "github.com/drinkwithme-lk/server/internal/repository/user"
	"github.com/drinkwithme-lk/server/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type IAuthUseCase interface {
	SignupUser(ctx context.Context, request entity.CreateUserRequest) (*entity.User, error)
	SignIn(ctx context.Context, email, username, password string) (string, error)
	UserFromToken(ctx context.Context, authHeader string) (*entity.User, error)
}

type authUseCase struct {
	userRepo    userRepo.IUserRepo
	profileRepo profileRepo.IProfileRepo
}

func New(userRepo userRepo.IUserRepo, profileRepo profileRepo.IProfileRepo) IAuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (p *authUseCase) SignupUser(ctx context.Context, authData entity.CreateUserRequest) (*entity.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(authData.Password+authData.Email), 12)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Name:     authData.Name,
		Email:    authData.Email,
		Username: authData.Username,
		Password: string(hashedPassword),
	}

	created, err := p.userRepo.CreateUser(ctx, &user)
	if err != nil {
		return nil, err
	}

	// Every account gets a swipeable card right away.
	if err := p.profileRepo.Create(ctx, &entity.Profile{
		UserID: created.ID,
		Name:   created.Name,
	}); err != nil {
		return nil, err
	}

	return created, nil
}

func (p *authUseCase) SignIn(ctx context.Context, email, username, password string) (string, error) {
	user, err := p.userRepo.GetUserByUnameOrEmail(ctx, email, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password+user.Email)); err != nil {
		return "", err
	}

	token, err := jwt.CreateToken(user.ID, user.Username)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (p *authUseCase) UserFromToken(ctx context.Context, authHeader string) (*entity.User, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, jwt.ErrInvalidToken
	}

	claims, err := jwt.ValidateToken(parts[1])
	if err != nil {
		return nil, err
	}

	return p.userRepo.GetUserByID(ctx, claims.UserID)
}
