package userRepo

import (
	"context"
	"errors"

	"github.com/drinkwithme-lk/server/internal/entity"
	"gorm.io/gorm"
)

type IUserRepo interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id uint) (*entity.User, error)
	GetUserByUnameOrEmail(ctx context.Context, email, uname string) (*entity.User, error)
	HasRole(ctx context.Context, userID uint, role entity.Role) (bool, error)
	AssignRole(ctx context.Context, userID uint, role entity.Role) error
}

type UserRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IUserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	result := r.db.WithContext(ctx).Create(user)
	return user, result.Error
}

func (r *UserRepo) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&user)
	return &user, result.Error
}

func (r *UserRepo) GetUserByUnameOrEmail(ctx context.Context, email, uname string) (*entity.User, error) {
	var user entity.User
	query := r.db.WithContext(ctx)
	if email != "" {
		query = query.Where("email = ?", email)
	}
	if uname != "" {
		query = query.Or("username = ?", uname)
	}
	result := query.First(&user)
	return &user, result.Error
}

func (r *UserRepo) HasRole(ctx context.Context, userID uint, role entity.Role) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&entity.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count)
	return count > 0, result.Error
}

// AssignRole grants the role. The unique index on (user_id, role) makes
// a repeated or concurrent grant a no-op.
func (r *UserRepo) AssignRole(ctx context.Context, userID uint, role entity.Role) error {
	err := r.db.WithContext(ctx).Create(&entity.UserRole{UserID: userID, Role: role}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}
