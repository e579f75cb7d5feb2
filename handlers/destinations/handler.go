package destinations

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/SajBajra/Global-Travel-Blog/db"
	"github.com/SajBajra/Global-Travel-Blog/models"
	"github.com/SajBajra/Global-Travel-Blog/utils"

	"github.com/gin-gonic/gin"
)

func attractionsJSON(attractions []string) []byte {
	if attractions == nil {
		attractions = []string{}
	}
	raw, err := json.Marshal(attractions)
	if err != nil {
		return []byte("[]")
	}
	return raw
}

// @Summary Get all destinations
// @Description Retrieve destinations, optionally limited for featured sections
// @Tags destinations
// @Produce json
// @Param _limit query int false "Maximum number of destinations"
// @Success 200 {array} models.Destination
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /destinations [get]
func GetAllDestinations(c *gin.Context) {
	var destinations []models.Destination
	query := db.DB.Order("name ASC")

	if limitStr := c.Query("_limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			query = query.Limit(limit)
		}
	}

	if err := query.Find(&destinations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving destinations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, destinations)
}

// @Summary Get a destination by ID
// @Description Retrieve a single destination
// @Tags destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} models.Destination
// @Failure 404 {object} map[string]string "error: Destination not found"
// @Router /destinations/{id} [get]
func GetDestinationByID(c *gin.Context) {
	var destination models.Destination
	destinationID := c.Param("id")

	if err := db.DB.First(&destination, "id = ?", destinationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}

	c.JSON(http.StatusOK, destination)
}

// @Summary Create a destination (Admin only)
// @Description Add a destination to the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Param destination body models.DestinationCreate true "Destination information"
// @Security BearerAuth
// @Success 201 {object} models.Destination
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /destinations [post]
func CreateDestination(c *gin.Context) {
	var input models.DestinationCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	destination := models.Destination{
		Name:            input.Name,
		Country:         input.Country,
		Description:     input.Description,
		Climate:         input.Climate,
		BestTimeToVisit: input.BestTimeToVisit,
		ImageURL:        input.ImageURL,
		Attractions:     attractionsJSON(input.Attractions),
	}

	if err := db.DB.Create(&destination).Error; err != nil {
		utils.LogError(err, "Error creating destination in CreateDestination")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating destination: " + err.Error()})
		return
	}

	utils.LogSuccess("Destination created in CreateDestination")
	c.JSON(http.StatusCreated, destination)
}

// @Summary Update a destination (Admin only)
// @Description Replace a destination's fields
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param destination body models.DestinationCreate true "Updated destination information"
// @Security BearerAuth
// @Success 200 {object} models.Destination
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Destination not found"
// @Router /destinations/{id} [put]
func UpdateDestination(c *gin.Context) {
	destinationID := c.Param("id")

	var destination models.Destination
	if err := db.DB.First(&destination, "id = ?", destinationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}

	var input models.DestinationCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	destination.Name = input.Name
	destination.Country = input.Country
	destination.Description = input.Description
	destination.Climate = input.Climate
	destination.BestTimeToVisit = input.BestTimeToVisit
	destination.ImageURL = input.ImageURL
	destination.Attractions = attractionsJSON(input.Attractions)

	if err := db.DB.Save(&destination).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating destination: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, destination)
}

// @Summary Delete a destination (Admin only)
// @Description Remove a destination from the catalog
// @Tags admin
// @Produce json
// @Param id path string true "Destination ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Destination deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Destination not found"
// @Router /destinations/{id} [delete]
func DeleteDestination(c *gin.Context) {
	destinationID := c.Param("id")

	var destination models.Destination
	if err := db.DB.First(&destination, "id = ?", destinationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}

	if err := db.DB.Delete(&destination).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting destination: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted successfully"})
}
