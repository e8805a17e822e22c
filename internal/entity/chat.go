package entity

import "time"

type Message struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	MatchID   uint      `gorm:"not null;column:match_id" json:"match_id"`
	SenderID  uint      `gorm:"not null;column:sender_id" json:"sender_id"`
	Content   string    `gorm:"not null;column:content" json:"content"`
	Seen      bool      `gorm:"not null;default:false;column:seen" json:"seen"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}
