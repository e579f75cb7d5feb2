package report

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/SajBajra/Global-Travel-Blog/db"
	"github.com/SajBajra/Global-Travel-Blog/models"
	"github.com/SajBajra/Global-Travel-Blog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultReason = "Inappropriate content"

// isDuplicateKey recognizes a unique-index violation from either backing
// store, for when two reports of the same target race past the soft check.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// @Summary Report a blog
// @Description Flag a blog for admin review; a user can report a blog only once
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param report body models.ReportCreate true "Report reason"
// @Security BearerAuth
// @Success 201 {object} models.Report
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Blog not found"
// @Failure 409 {object} utils.Response "success: false, already reported"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /blogs/{id}/report [post]
func ReportBlog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	blogID := c.Param("id")

	var blog models.Blog
	if err := db.DB.First(&blog, "id = ?", blogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	var input models.ReportCreate
	_ = c.ShouldBindJSON(&input)
	if utils.IsBlank(input.Reason) {
		input.Reason = defaultReason
	}

	var existing models.Report
	if err := db.DB.Where("user_id = ? AND blog_id = ? AND type = ?", userID, blogID, models.BlogReport).
		First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "You have already reported this blog")
		return
	}

	rep := models.Report{
		UserID: userID.(string),
		Type:   models.BlogReport,
		BlogID: blogID,
		Reason: input.Reason,
		Status: models.ReportPending,
	}

	if err := db.DB.Create(&rep).Error; err != nil {
		if isDuplicateKey(err) {
			utils.SendError(c, http.StatusConflict, "You have already reported this blog")
			return
		}
		utils.LogError(err, "Error creating report in ReportBlog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating report: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Blog report created in ReportBlog")
	c.JSON(http.StatusCreated, rep)
}

// @Summary Report a comment
// @Description Flag a comment for admin review; a user can report a comment only once
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param report body models.ReportCreate true "Report reason"
// @Security BearerAuth
// @Success 201 {object} models.Report
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Failure 409 {object} utils.Response "success: false, already reported"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /comments/{id}/report [post]
func ReportComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	commentID := c.Param("id")

	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var input models.ReportCreate
	_ = c.ShouldBindJSON(&input)
	if utils.IsBlank(input.Reason) {
		input.Reason = defaultReason
	}

	var existing models.Report
	if err := db.DB.Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "You have already reported this comment")
		return
	}

	rep := models.Report{
		UserID:    userID.(string),
		Type:      models.CommentReport,
		BlogID:    comment.BlogID,
		CommentID: &comment.ID,
		Reason:    input.Reason,
		Status:    models.ReportPending,
	}

	if err := db.DB.Create(&rep).Error; err != nil {
		if isDuplicateKey(err) {
			utils.SendError(c, http.StatusConflict, "You have already reported this comment")
			return
		}
		utils.LogError(err, "Error creating report in ReportComment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating report: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Comment report created in ReportComment")
	c.JSON(http.StatusCreated, rep)
}

// @Summary Get all reports (Admin only)
// @Description All reports, newest first, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status"
// @Security BearerAuth
// @Success 200 {array} models.Report
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /reports [get]
func GetAllReports(c *gin.Context) {
	var reports []models.Report

	query := db.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&reports).Error; err != nil {
		utils.LogError(err, "Error retrieving reports in GetAllReports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving reports: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// @Summary Review a report (Admin only)
// @Description Resolve or reject a report, recording the action taken
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param report body models.ReportUpdate true "New status and action"
// @Security BearerAuth
// @Success 200 {object} models.Report
// @Failure 400 {object} map[string]string "error: Invalid status"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Report not found"
// @Router /reports/{id} [patch]
func UpdateReport(c *gin.Context) {
	var rep models.Report
	reportID := c.Param("id")

	if err := db.DB.First(&rep, "id = ?", reportID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	var update models.ReportUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	switch update.Status {
	case models.ReportPending, models.ReportResolved, models.ReportRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report status"})
		return
	}

	rep.Status = update.Status
	rep.ActionTaken = update.ActionTaken
	if update.Status != models.ReportPending {
		now := time.Now()
		rep.ResolvedAt = &now
	} else {
		rep.ResolvedAt = nil
	}

	if err := db.DB.Save(&rep).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating report: " + err.Error()})
		return
	}

	utils.LogSuccess("Report updated in UpdateReport")
	c.JSON(http.StatusOK, rep)
}
