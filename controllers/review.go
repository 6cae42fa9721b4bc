package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"vehicle-inspection-api/config"
	"vehicle-inspection-api/models"
	"vehicle-inspection-api/services"
)

// EditInspection applies the combined role-scoped update. Fields owned by the
// other role are silently ignored; an out-of-enumeration status keeps the
// prior value.
func EditInspection(c *gin.Context) {
	var inspection models.Inspection
	if err := config.DB.First(&inspection, "inspection_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inspection not found"})
		return
	}

	var patch services.InspectionPatch
	if err := c.ShouldBind(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := c.GetString("role")
	applied, err := services.ApplyRolePatch(&inspection, role, patch)
	if err != nil {
		if errors.Is(err, services.ErrUnknownRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cost value"})
		return
	}

	if err := config.DB.Save(&inspection).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inspection"})
		return
	}

	notifyReviewOutcome(role, applied, &inspection)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Inspection updated",
		"applied":    applied,
		"inspection": inspection,
	})
}

// UpdateCost is the admin's inline cost-estimate update.
func UpdateCost(c *gin.Context) {
	var inspection models.Inspection
	if err := config.DB.First(&inspection, "inspection_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inspection not found"})
		return
	}

	cost := c.PostForm("cost_estimate")
	applied, err := services.ApplyRolePatch(&inspection, services.RoleAdmin,
		services.InspectionPatch{CostEstimate: &cost})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cost estimate"})
		return
	}

	if err := config.DB.Save(&inspection).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cost estimate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Cost estimate updated",
		"applied":    applied,
		"inspection": inspection,
	})
}

// UpdateAcceptedCost is the reviewer's inline accepted-cost update.
func UpdateAcceptedCost(c *gin.Context) {
	var inspection models.Inspection
	if err := config.DB.First(&inspection, "inspection_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inspection not found"})
		return
	}

	cost := c.PostForm("accepted_cost")
	applied, err := services.ApplyRolePatch(&inspection, services.RoleReviewer,
		services.InspectionPatch{AcceptedCost: &cost})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid accepted cost"})
		return
	}

	if err := config.DB.Save(&inspection).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update accepted cost"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Accepted cost updated",
		"applied":    applied,
		"inspection": inspection,
	})
}

// notifyReviewOutcome mails the configured address when a reviewer settles a
// report. Best effort: mail problems are logged, never surfaced.
func notifyReviewOutcome(role string, applied []string, inspection *models.Inspection) {
	if role != services.RoleReviewer || inspection.StatusReviewer == models.StatusReviewerPending {
		return
	}
	statusApplied := false
	for _, field := range applied {
		if field == "status_reviewer" {
			statusApplied = true
			break
		}
	}
	if !statusApplied {
		return
	}

	to := os.Getenv("NOTIFY_EMAIL")
	if to == "" || !config.MailConfigured() {
		return
	}

	subject := fmt.Sprintf("Inspection %d (%s): %s",
		inspection.InspectionID, inspection.RegistrationNumber, inspection.StatusReviewer)
	body := fmt.Sprintf("<p>Inspection <b>%d</b> for vehicle <b>%s</b> was marked <b>%s</b> by the reviewer.</p>",
		inspection.InspectionID, inspection.RegistrationNumber, inspection.StatusReviewer)

	go func() {
		if err := config.SendMail([]string{to}, subject, body); err != nil {
			log.Printf("Warning: review notification failed: %v", err)
		}
	}()
}
