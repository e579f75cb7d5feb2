package users

import (
	"net/http"

	"github.com/SajBajra/Global-Travel-Blog/db"
	"github.com/SajBajra/Global-Travel-Blog/models"
	"github.com/SajBajra/Global-Travel-Blog/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Get a user's public profile
// @Description Retrieve a user by id for author pages
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/{id} [get]
func GetUserByID(c *gin.Context) {
	var user models.User
	userID := c.Param("id")

	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Get all users (Admin only)
// @Description All users, newest first, for the management table
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users [get]
func GetAllUsers(c *gin.Context) {
	var users []models.User

	if err := db.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving users: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Update a user (Admin only)
// @Description Change a user's name, bio or role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body models.AdminUserUpdate true "Updated fields"
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/{id} [patch]
func UpdateUser(c *gin.Context) {
	var user models.User
	userID := c.Param("id")

	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var update models.AdminUserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if update.Role != "" {
		if update.Role != models.AdminRole && update.Role != models.UserRole {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		user.Role = update.Role
	}
	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Bio != "" {
		user.Bio = update.Bio
	}

	if err := db.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user: " + err.Error()})
		return
	}

	utils.LogSuccess("User updated in UpdateUser")
	c.JSON(http.StatusOK, user)
}

// @Summary Delete a user (Admin only)
// @Description Remove a user account; admin accounts cannot be deleted
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: User deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Cannot delete an admin"
// @Failure 404 {object} map[string]string "error: User not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users/{id} [delete]
func DeleteUser(c *gin.Context) {
	var user models.User
	userID := c.Param("id")

	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.Role == models.AdminRole {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin accounts cannot be deleted"})
		return
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting user: " + err.Error()})
		return
	}

	utils.LogSuccess("User deleted in DeleteUser")
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
