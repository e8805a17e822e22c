package entity

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID       uint   `gorm:"primaryKey;column:id" json:"id"`
	Name     string `gorm:"not null;column:name" json:"name"`
	Email    string `gorm:"unique;not null;column:email" json:"email"`
	Username string `gorm:"unique;column:username" json:"username"`
	Password string `gorm:"not null;column:password" json:"-"`
}

// Profile is the public card shown while swiping. It is kept separate from
// the auth User row so the matching surfaces never touch credentials.
type Profile struct {
	ID            uint           `gorm:"primaryKey;column:id" json:"id"`
	UserID        uint           `gorm:"uniqueIndex;not null;column:user_id" json:"user_id"`
	Name          string         `gorm:"not null;column:name" json:"name"`
	Bio           string         `gorm:"column:bio" json:"bio"`
	AvatarURL     string         `gorm:"column:avatar_url" json:"avatar_url"`
	Age           int            `gorm:"column:age" json:"age"`
	Location      string         `gorm:"column:location" json:"location"`
	FavoriteDrink string         `gorm:"column:favorite_drink" json:"favorite_drink"`
	Interests     pq.StringArray `gorm:"type:text[];column:interests" json:"interests"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

type Role string

const (
	RoleAdmin           Role = "admin"
	RoleRestaurantOwner Role = "restaurant_owner"
)

type UserRole struct {
	ID     uint `gorm:"primaryKey;column:id" json:"id"`
	UserID uint `gorm:"not null;column:user_id;uniqueIndex:idx_user_role" json:"user_id"`
	Role   Role `gorm:"not null;column:role;uniqueIndex:idx_user_role" json:"role"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
