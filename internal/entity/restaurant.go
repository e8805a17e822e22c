package entity

import (
	"time"

	"github.com/lib/pq"
)

type RestaurantStatus string

const (
	RestaurantPending  RestaurantStatus = "pending"
	RestaurantApproved RestaurantStatus = "approved"
	RestaurantRejected RestaurantStatus = "rejected"
)

type Restaurant struct {
	ID          uint             `gorm:"primaryKey;column:id" json:"id"`
	OwnerID     *uint            `gorm:"column:owner_id" json:"owner_id"`
	Name        string           `gorm:"not null;column:name" json:"name"`
	Description string           `gorm:"column:description" json:"description"`
	Address     string           `gorm:"not null;column:address" json:"address"`
	Latitude    float64          `gorm:"column:latitude" json:"latitude"`
	Longitude   float64          `gorm:"column:longitude" json:"longitude"`
	IsBYOB      bool             `gorm:"not null;column:is_byob" json:"is_byob"`
	Cuisine     string           `gorm:"column:cuisine" json:"cuisine"`
	PriceRange  int              `gorm:"column:price_range" json:"price_range"`
	Rating      float64          `gorm:"column:rating" json:"rating"`
	ReviewCount int              `gorm:"column:review_count" json:"review_count"`
	Phone       string           `gorm:"column:phone" json:"phone"`
	Website     string           `gorm:"column:website" json:"website"`
	Photos      pq.StringArray   `gorm:"type:text[];column:photos" json:"photos"`
	Features    pq.StringArray   `gorm:"type:text[];column:features" json:"features"`
	Status      RestaurantStatus `gorm:"not null;default:pending;column:status" json:"status"`
	ReviewedBy  *uint            `gorm:"column:reviewed_by" json:"reviewed_by"`
	CreatedAt   time.Time        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"column:updated_at" json:"updated_at"`
}

// Selection relates a user to a restaurant they picked as a preferred
// drinking spot. The composite primary key keeps the pair unique.
type Selection struct {
	UserID       uint      `gorm:"primaryKey;column:user_id" json:"user_id"`
	RestaurantID uint      `gorm:"primaryKey;column:restaurant_id" json:"restaurant_id"`
	SelectedAt   time.Time `gorm:"not null;column:selected_at" json:"selected_at"`
}

func (Selection) TableName() string {
	return "selections"
}

type RestaurantFilters struct {
	IsBYOB    *bool
	MinRating float64
	City      string
}

type Review struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	RestaurantID uint      `gorm:"not null;column:restaurant_id" json:"restaurant_id"`
	UserID       uint      `gorm:"not null;column:user_id" json:"user_id"`
	Rating       int       `gorm:"not null;column:rating" json:"rating"`
	Comment      string    `gorm:"column:comment" json:"comment"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`

	// Joined from profiles for display, not persisted on the review row.
	ReviewerName   string `gorm:"->;-:migration" json:"reviewer_name"`
	ReviewerAvatar string `gorm:"->;-:migration" json:"reviewer_avatar"`
}

type Reservation struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	RestaurantID uint      `gorm:"not null;column:restaurant_id" json:"restaurant_id"`
	UserID       uint      `gorm:"not null;column:user_id" json:"user_id"`
	Date         time.Time `gorm:"not null;column:date" json:"date"`
	PartySize    int       `gorm:"not null;column:party_size" json:"party_size"`
	Status       string    `gorm:"not null;default:pending;column:status" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}
