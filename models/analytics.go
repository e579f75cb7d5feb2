package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DailyStat is one day of traffic, keyed by date (YYYY-MM-DD). TopBlogs holds
// the ids of blogs viewed that day, one entry per view, so ranking them is a
// frequency count.
type DailyStat struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid"`
	Date           string         `json:"date" gorm:"uniqueIndex"`
	PageViews      int            `json:"pageViews" gorm:"column:page_views"`
	UniqueVisitors int            `json:"uniqueVisitors" gorm:"column:unique_visitors"`
	NewUsers       int            `json:"newUsers" gorm:"column:new_users"`
	TopBlogs       datatypes.JSON `json:"topBlogs" gorm:"column:top_blogs"`
}

type TrackViewRequest struct {
	Page   string `json:"page" binding:"required"`
	BlogID string `json:"blogId"`
}

func (s *DailyStat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (DailyStat) TableName() string {
	return "daily_stats"
}
