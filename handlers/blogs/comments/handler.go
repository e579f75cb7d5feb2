package comments

import (
	"net/http"

	"github.com/SajBajra/Global-Travel-Blog/db"
	"github.com/SajBajra/Global-Travel-Blog/middleware"
	"github.com/SajBajra/Global-Travel-Blog/models"
	"github.com/SajBajra/Global-Travel-Blog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get a blog's comment thread
// @Description Top-level comments newest first, plus replies grouped by parent, oldest first
// @Tags comments
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} map[string]interface{} "comments and replies"
// @Failure 404 {object} map[string]string "error: Blog not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /blogs/{id}/comments [get]
func GetBlogComments(c *gin.Context) {
	blogID := c.Param("id")

	var blog models.Blog
	if err := db.DB.First(&blog, "id = ?", blogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	var topLevel []models.Comment
	if err := db.DB.Where("blog_id = ? AND parent_id IS NULL", blogID).
		Order("created_at DESC").Find(&topLevel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving comments: " + err.Error()})
		return
	}

	var replies []models.Comment
	if err := db.DB.Where("blog_id = ? AND parent_id IS NOT NULL", blogID).
		Order("created_at ASC").Find(&replies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving replies: " + err.Error()})
		return
	}

	// Replies keep their insertion order under each parent, which is why
	// top-level and reply ordering differ.
	repliesByParent := make(map[string][]models.Comment)
	for _, reply := range replies {
		repliesByParent[*reply.ParentID] = append(repliesByParent[*reply.ParentID], reply)
	}

	if topLevel == nil {
		topLevel = []models.Comment{}
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": topLevel,
		"replies":  repliesByParent,
	})
}

// @Summary Add a comment or reply
// @Description Create a top-level comment, or a reply when parentId is set
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param comment body models.CommentCreate true "Comment content"
// @Security BearerAuth
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Blog or parent comment not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /blogs/{id}/comments [post]
func CreateComment(c *gin.Context) {
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

	var input models.CommentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if utils.IsBlank(input.Content) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content cannot be empty"})
		return
	}

	if input.ParentID != nil {
		var parent models.Comment
		if err := db.DB.First(&parent, "id = ?", *input.ParentID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent comment not found"})
			return
		}
		if parent.BlogID != blogID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent comment belongs to another blog"})
			return
		}
		// Single-level nesting: replying to a reply is not allowed.
		if parent.ParentID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot reply to a reply"})
			return
		}
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	comment := models.Comment{
		BlogID:   blogID,
		ParentID: input.ParentID,
		UserID:   user.ID,
		UserName: user.Name,
		Content:  input.Content,
		Likes:    0,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		utils.LogError(err, "Error creating comment in CreateComment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating comment: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Comment created in CreateComment")
	c.JSON(http.StatusCreated, comment)
}

// @Summary Edit a comment
// @Description Update a comment's content; only the author or an admin may edit
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param comment body models.CommentUpdate true "New content"
// @Security BearerAuth
// @Success 200 {object} models.Comment
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Router /comments/{id} [put]
func UpdateComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var comment models.Comment
	commentID := c.Param("id")

	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.UserID != userID.(string) && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to edit this comment"})
		return
	}

	var update models.CommentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if utils.IsBlank(update.Content) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content cannot be empty"})
		return
	}

	comment.Content = update.Content
	if err := db.DB.Save(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating comment: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Comment updated in UpdateComment")
	c.JSON(http.StatusOK, comment)
}

// @Summary Delete a comment
// @Description Delete a comment; a top-level comment takes its replies with it
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Comment deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /comments/{id} [delete]
func DeleteComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var comment models.Comment
	commentID := c.Param("id")

	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.UserID != userID.(string) && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this comment"})
		return
	}

	// The cascade runs in one transaction so no reply can survive its
	// parent.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if comment.ParentID == nil {
			if err := tx.Exec("DELETE FROM comment_likes WHERE comment_id IN (SELECT id FROM comments WHERE parent_id = ?)", comment.ID).Error; err != nil {
				return err
			}
			if err := tx.Where("parent_id = ?", comment.ID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("comment_id = ?", comment.ID).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
	if err != nil {
		utils.LogError(err, "Error deleting comment in DeleteComment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting comment: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Comment deleted in DeleteComment")
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
