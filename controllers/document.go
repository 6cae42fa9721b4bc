package controllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"vehicle-inspection-api/config"
	"vehicle-inspection-api/models"
	"vehicle-inspection-api/services"
	"vehicle-inspection-api/utils"
)

// Store handles the dual disk/blob persistence of uploaded reports.
// Injected from main.
var Store *services.PDFStore

// maxUploadSize caps inspection report uploads at 10MB.
const maxUploadSize = int64(10 * 1024 * 1024)

var allowedUploadTypes = map[string]bool{
	".pdf": true,
}

// UploadInspection creates a new inspection from a registration number and a
// PDF attachment. The report bytes are written to the storage directory and
// stored inline on the row.
func UploadInspection(c *gin.Context) {
	registrationNumber := utils.SanitizeInput(c.PostForm("registration_number"))
	if registrationNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration number is required"})
		return
	}
	dealerName := utils.SanitizeInput(c.PostForm("dealer_name"))

	file, err := c.FormFile("pdf_file")
	if err != nil || file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a PDF file"})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 10MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadTypes[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	storedFilename := utils.TimestampedFilename(file.Filename, time.Now())
	if err := Store.Save(storedFilename, data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	inspection := models.Inspection{
		RegistrationNumber: registrationNumber,
		PDFFilename:        storedFilename,
		PDFData:            data,
		StatusAdmin:        models.StatusAdminPending,
		StatusReviewer:     models.StatusReviewerPending,
	}
	if dealerName != "" {
		inspection.DealerName = &dealerName
	}

	if err := config.DB.Create(&inspection).Error; err != nil {
		// Drop the uploaded file if the insert fails
		Store.Remove(storedFilename)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inspection"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Inspection uploaded",
		"inspection": inspection,
	})
}

// ViewPDF streams the stored report inline
func ViewPDF(c *gin.Context) {
	var inspection models.Inspection
	if err := config.DB.First(&inspection, "inspection_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inspection not found"})
		return
	}

	data, err := Store.Load(&inspection)
	if err != nil {
		if err == services.ErrPDFNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "PDF not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", inspection.PDFFilename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// DeletePDF removes the report payload from both the row and the disk.
// The inspection itself is kept.
func DeletePDF(c *gin.Context) {
	var inspection models.Inspection
	if err := config.DB.First(&inspection, "inspection_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inspection not found"})
		return
	}

	if err := Store.Delete(&inspection); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete PDF"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "PDF deleted"})
}
