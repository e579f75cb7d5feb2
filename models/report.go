package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportType string

const (
	BlogReport    ReportType = "blog"
	CommentReport ReportType = "comment"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
	ReportRejected ReportStatus = "rejected"
)

// The unique indexes back up the handlers' read-then-write duplicate
// checks: the blog index only covers blog reports (comment_id IS NULL),
// and NULL comment ids keep blog reports out of the comment index.
type Report struct {
	ID          string       `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string       `json:"userId" gorm:"column:user_id;uniqueIndex:idx_report_user_blog;uniqueIndex:idx_report_user_comment"`
	Type        ReportType   `json:"type" gorm:"uniqueIndex:idx_report_user_blog"`
	BlogID      string       `json:"blogId" gorm:"column:blog_id;uniqueIndex:idx_report_user_blog,where:comment_id IS NULL"`
	CommentID   *string      `json:"commentId" gorm:"column:comment_id;uniqueIndex:idx_report_user_comment"`
	Reason      string       `json:"reason"`
	Status      ReportStatus `json:"status"`
	ActionTaken string       `json:"actionTaken" gorm:"column:action_taken"`
	ResolvedAt  *time.Time   `json:"resolvedAt" gorm:"column:resolved_at"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type ReportCreate struct {
	Reason string `json:"reason"`
}

type ReportUpdate struct {
	Status      ReportStatus `json:"status" binding:"required"`
	ActionTaken string       `json:"actionTaken"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (Report) TableName() string {
	return "reports"
}
