package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category names are what blogs reference in their category field; there is
// no foreign key, which is why deletion checks usage first.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryCreate struct {
	Name string `json:"name" binding:"required"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}
