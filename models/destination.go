package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Destination struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name            string         `json:"name"`
	Country         string         `json:"country"`
	Description     string         `json:"description"`
	Climate         string         `json:"climate"`
	BestTimeToVisit string         `json:"bestTimeToVisit" gorm:"column:best_time_to_visit"`
	ImageURL        string         `json:"imageUrl" gorm:"column:image_url"`
	Attractions     datatypes.JSON `json:"attractions"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type DestinationCreate struct {
	Name            string   `json:"name" binding:"required"`
	Country         string   `json:"country" binding:"required"`
	Description     string   `json:"description"`
	Climate         string   `json:"climate"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	ImageURL        string   `json:"imageUrl"`
	Attractions     []string `json:"attractions"`
}

func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

func (Destination) TableName() string {
	return "destinations"
}
