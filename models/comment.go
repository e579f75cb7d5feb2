package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is either a top-level comment (ParentID nil) or a single-level
// reply to a top-level comment.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	BlogID    string    `json:"blogId" gorm:"column:blog_id;index"`
	ParentID  *string   `json:"parentId" gorm:"column:parent_id;index"`
	UserID    string    `json:"userId" gorm:"column:user_id"`
	UserName  string    `json:"userName" gorm:"column:user_name"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentCreate struct {
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parentId"`
}

type CommentUpdate struct {
	Content string `json:"content" binding:"required"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (Comment) TableName() string {
	return "comments"
}
