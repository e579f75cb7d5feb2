package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogStatus string

const (
	BlogApproved BlogStatus = "approved"
	BlogPending  BlogStatus = "pending"
	BlogRejected BlogStatus = "rejected"
)

type Blog struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Category   string     `json:"category"`
	ImageURL   string     `json:"imageUrl" gorm:"column:image_url"`
	AuthorID   string     `json:"authorId" gorm:"column:author_id;index"`
	AuthorName string     `json:"authorName" gorm:"column:author_name"`
	Status     BlogStatus `json:"status"`
	Likes      int        `json:"likes"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type BlogCreate struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

type BlogUpdate struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl"`
}

type BlogStatusUpdate struct {
	Status BlogStatus `json:"status" binding:"required"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (Blog) TableName() string {
	return "blogs"
}
