package models

import "time"

// Like and SavedPost are presence toggles. The composite primary key keeps
// concurrent double-toggles from ever producing a duplicate row.

type Like struct {
	PostID    uint      `json:"post_id" gorm:"primaryKey"`
	AccountID uint      `json:"account_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

type SavedPost struct {
	PostID    uint      `json:"post_id" gorm:"primaryKey"`
	AccountID uint      `json:"account_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	Post Post `json:"post,omitempty"`
}
