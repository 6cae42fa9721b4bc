package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vehicle-inspection-api/config"
	"vehicle-inspection-api/models"
	"vehicle-inspection-api/services"
	"vehicle-inspection-api/utils"
)

// ListInspections returns inspections matching the optional free-text query.
// The query is matched against registration number, dealer name and both
// status columns. Admins additionally get the depreciation forecast table.
func ListInspections(c *gin.Context) {
	q := utils.SanitizeInput(c.Query("q"))

	query := config.DB.Model(&models.Inspection{})
	if q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"registration_number LIKE ? OR dealer_name LIKE ? OR status_admin LIKE ? OR status_reviewer LIKE ?",
			like, like, like, like,
		)
	}

	var inspections []models.Inspection
	if err := query.Order("created_at DESC").Find(&inspections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inspections"})
		return
	}

	response := gin.H{
		"inspections":  inspections,
		"total":        len(inspections),
		"search_query": q,
	}

	if role, _ := c.Get("role"); role == services.RoleAdmin {
		response["forecast"] = services.BuildForecast(
			models.SampleAssets(), time.Now(), services.DefaultForecastHorizon)
	}

	c.JSON(http.StatusOK, response)
}

// GetInspection returns one inspection, the data behind the edit view.
func GetInspection(c *gin.Context) {
	var inspection models.Inspection
	if err := config.DB.First(&inspection, "inspection_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inspection not found"})
		return
	}

	role, _ := c.Get("role")
	statuses := models.AdminStatuses
	if role == services.RoleReviewer {
		statuses = models.ReviewerStatuses
	}

	c.JSON(http.StatusOK, gin.H{
		"inspection": inspection,
		"role":       role,
		"statuses":   statuses,
	})
}
