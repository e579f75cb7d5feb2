package blogs

import (
	"net/http"
	"strconv"

	"github.com/SajBajra/Global-Travel-Blog/db"
	"github.com/SajBajra/Global-Travel-Blog/middleware"
	"github.com/SajBajra/Global-Travel-Blog/models"
	"github.com/SajBajra/Global-Travel-Blog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Create a new blog
// @Description Publish a blog post; new blogs are approved immediately
// @Tags blogs
// @Accept json
// @Produce json
// @Param blog body models.BlogCreate true "Blog information"
// @Security BearerAuth
// @Success 201 {object} models.Blog
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /blogs [post]
func CreateBlog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.BlogCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if utils.IsBlank(input.Title) || utils.IsBlank(input.Content) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content cannot be empty"})
		return
	}

	var author models.User
	if err := db.DB.First(&author, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	blog := models.Blog{
		Title:      input.Title,
		Content:    input.Content,
		Category:   input.Category,
		ImageURL:   input.ImageURL,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Status:     models.BlogApproved,
		Likes:      0,
	}

	if err := db.DB.Create(&blog).Error; err != nil {
		utils.LogError(err, "Error creating blog in CreateBlog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating blog: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(author.ID, "Blog created in CreateBlog")
	c.JSON(http.StatusCreated, blog)
}

// @Summary Get all blogs
// @Description Retrieve blogs with optional filtering and sorting
// @Tags blogs
// @Produce json
// @Param category query string false "Filter by category name"
// @Param authorId query string false "Filter by author"
// @Param status query string false "Filter by status"
// @Param _sort query string false "Sort field (createdAt or likes)"
// @Param _order query string false "Sort order (asc or desc)"
// @Param _limit query int false "Maximum number of blogs"
// @Success 200 {array} models.Blog
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /blogs [get]
func GetAllBlogs(c *gin.Context) {
	var blogs []models.Blog
	query := db.DB.Order(sortClause(c))

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if authorID := c.Query("authorId"); authorID != "" {
		query = query.Where("author_id = ?", authorID)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if limitStr := c.Query("_limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			query = query.Limit(limit)
		}
	}

	if err := query.Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving blogs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// sortClause maps the client's _sort/_order parameters onto columns,
// defaulting to newest first.
func sortClause(c *gin.Context) string {
	column := "created_at"
	if c.Query("_sort") == "likes" {
		column = "likes"
	}

	order := "DESC"
	if c.Query("_order") == "asc" {
		order = "ASC"
	}

	return column + " " + order
}

// @Summary Get a blog by ID
// @Description Retrieve a single blog
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} models.Blog
// @Failure 404 {object} map[string]string "error: Blog not found"
// @Router /blogs/{id} [get]
func GetBlogByID(c *gin.Context) {
	var blog models.Blog
	blogID := c.Param("id")

	if err := db.DB.First(&blog, "id = ?", blogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// @Summary Update a blog
// @Description Update a blog's fields; only the author or an admin may edit
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param blog body models.BlogUpdate true "Updated fields"
// @Security BearerAuth
// @Success 200 {object} models.Blog
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Blog not found"
// @Router /blogs/{id} [put]
func UpdateBlog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var blog models.Blog
	blogID := c.Param("id")

	if err := db.DB.First(&blog, "id = ?", blogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	if blog.AuthorID != userID.(string) && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this blog"})
		return
	}

	var update models.BlogUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if update.Title != "" {
		if utils.IsBlank(update.Title) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		blog.Title = update.Title
	}
	if update.Content != "" {
		if utils.IsBlank(update.Content) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty"})
			return
		}
		blog.Content = update.Content
	}
	if update.Category != "" {
		blog.Category = update.Category
	}
	if update.ImageURL != "" {
		blog.ImageURL = update.ImageURL
	}

	if err := db.DB.Save(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating blog: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Blog updated in UpdateBlog")
	c.JSON(http.StatusOK, blog)
}

// @Summary Delete a blog
// @Description Delete a blog and everything attached to it in one transaction
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Blog deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Blog not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /blogs/{id} [delete]
func DeleteBlog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var blog models.Blog
	blogID := c.Param("id")

	if err := db.DB.First(&blog, "id = ?", blogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	if blog.AuthorID != userID.(string) && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this blog"})
		return
	}

	// Comments, likes and reports go with the blog, all inside one
	// transaction so a partial failure cannot orphan rows.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM comment_likes WHERE comment_id IN (SELECT id FROM comments WHERE blog_id = ?)", blogID).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", blogID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", blogID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", blogID).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		return tx.Delete(&blog).Error
	})
	if err != nil {
		utils.LogError(err, "Error deleting blog in DeleteBlog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting blog: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Blog deleted in DeleteBlog")
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

// @Summary Update a blog's status (Admin only)
// @Description Moderation takedown or restore: approved, pending or rejected
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param status body models.BlogStatusUpdate true "New status"
// @Security BearerAuth
// @Success 200 {object} models.Blog
// @Failure 400 {object} map[string]string "error: Invalid status"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Blog not found"
// @Router /blogs/{id}/status [patch]
func UpdateBlogStatus(c *gin.Context) {
	var blog models.Blog
	blogID := c.Param("id")

	if err := db.DB.First(&blog, "id = ?", blogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	var update models.BlogStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	switch update.Status {
	case models.BlogApproved, models.BlogPending, models.BlogRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	blog.Status = update.Status
	if err := db.DB.Save(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating status: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, blog)
}
