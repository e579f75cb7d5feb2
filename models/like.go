package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like marks that a user liked a blog. The composite unique index is what
// makes the toggle race-safe: two concurrent inserts for the same pair
// cannot both land.
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	BlogID    string    `json:"blogId" gorm:"column:blog_id;uniqueIndex:idx_blog_user"`
	UserID    string    `json:"userId" gorm:"column:user_id;uniqueIndex:idx_blog_user"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

func (Like) TableName() string {
	return "likes"
}
