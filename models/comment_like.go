package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentLike struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CommentID string    `json:"commentId" gorm:"column:comment_id;uniqueIndex:idx_comment_user"`
	UserID    string    `json:"userId" gorm:"column:user_id;uniqueIndex:idx_comment_user"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l *CommentLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
