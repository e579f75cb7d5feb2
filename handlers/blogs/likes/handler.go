package likes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/SajBajra/Global-Travel-Blog/db"
	"github.com/SajBajra/Global-Travel-Blog/models"
	"github.com/SajBajra/Global-Travel-Blog/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// acquireToggleGuard takes a short-lived redis lock per (target, user) so a
// double-click cannot run two toggles at once. Without redis, or when redis
// misbehaves, the toggle proceeds and the unique index on the like table
// keeps the rows consistent.
func acquireToggleGuard(rdb *redis.Client, kind, targetID, userID string) (func(), bool) {
	if rdb == nil {
		return func() {}, true
	}

	ctx := context.Background()
	key := "toggle:" + kind + ":" + targetID + ":" + userID

	ok, err := rdb.SetNX(ctx, key, 1, 2*time.Second).Result()
	if err != nil {
		return func() {}, true
	}
	if !ok {
		return nil, false
	}
	return func() { rdb.Del(ctx, key) }, true
}

// @Summary Toggle a like on a blog
// @Description Like the blog if not yet liked, unlike it otherwise; the counter is the row count
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "liked and likes"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Blog not found"
// @Failure 409 {object} map[string]string "error: Toggle already in progress"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /blogs/{id}/like [post]
func ToggleBlogLike(c *gin.Context) {
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

	release, ok := acquireToggleGuard(utils.GetRedis(), "blog", blogID, userID.(string))
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Toggle already in progress"})
		return
	}
	defer release()

	var liked bool
	var likeCount int64

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var like models.Like
		result := tx.Where("blog_id = ? AND user_id = ?", blogID, userID).First(&like)

		if result.Error == nil {
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			liked = false
		} else if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			like = models.Like{
				BlogID: blogID,
				UserID: userID.(string),
			}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			liked = true
		} else {
			return result.Error
		}

		// The stored counter is always re-derived from the rows, so it
		// cannot drift from the like table.
		if err := tx.Model(&models.Like{}).Where("blog_id = ?", blogID).Count(&likeCount).Error; err != nil {
			return err
		}
		return tx.Model(&models.Blog{}).Where("id = ?", blogID).UpdateColumn("likes", likeCount).Error
	})
	if err != nil {
		utils.LogError(err, "Error toggling blog like in ToggleBlogLike")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error toggling like: " + err.Error()})
		return
	}

	message := "Like removed successfully"
	if liked {
		message = "Like added successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"liked":   liked,
		"likes":   likeCount,
	})
}

// @Summary Toggle a like on a comment
// @Description Like or unlike a comment for the current user
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "liked and likes"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Failure 409 {object} map[string]string "error: Toggle already in progress"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /comments/{id}/like [post]
func ToggleCommentLike(c *gin.Context) {
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

	release, ok := acquireToggleGuard(utils.GetRedis(), "comment", commentID, userID.(string))
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Toggle already in progress"})
		return
	}
	defer release()

	var liked bool
	var likeCount int64

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var like models.CommentLike
		result := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&like)

		if result.Error == nil {
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			liked = false
		} else if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			like = models.CommentLike{
				CommentID: commentID,
				UserID:    userID.(string),
			}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			liked = true
		} else {
			return result.Error
		}

		if err := tx.Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&likeCount).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).Where("id = ?", commentID).UpdateColumn("likes", likeCount).Error
	})
	if err != nil {
		utils.LogError(err, "Error toggling comment like in ToggleCommentLike")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error toggling like: " + err.Error()})
		return
	}

	message := "Like removed successfully"
	if liked {
		message = "Like added successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"liked":   liked,
		"likes":   likeCount,
	})
}

// @Summary Get the current user's likes
// @Description Blog ids and comment ids the current user has liked, for rendering like state
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "blogIds and commentIds"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /me/likes [get]
func GetMyLikes(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var blogLikes []models.Like
	if err := db.DB.Where("user_id = ?", userID).Find(&blogLikes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving likes: " + err.Error()})
		return
	}

	var commentLikes []models.CommentLike
	if err := db.DB.Where("user_id = ?", userID).Find(&commentLikes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving comment likes: " + err.Error()})
		return
	}

	blogIDs := make([]string, 0, len(blogLikes))
	for _, like := range blogLikes {
		blogIDs = append(blogIDs, like.BlogID)
	}

	commentIDs := make([]string, 0, len(commentLikes))
	for _, like := range commentLikes {
		commentIDs = append(commentIDs, like.CommentID)
	}

	c.JSON(http.StatusOK, gin.H{
		"blogIds":    blogIDs,
		"commentIds": commentIDs,
	})
}
