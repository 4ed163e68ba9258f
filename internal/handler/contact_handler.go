package handler

import (
	"net/http"
	"time"

	"backoffice-service/internal/media"
	"backoffice-service/internal/middleware"
	"backoffice-service/internal/model"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"
	"backoffice-service/pkg/upload"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ContactPageRequest defines the multipart form fields for contact pages
type ContactPageRequest struct {
	ContactUsText string `form:"contactus_text"`
}

// ListContactPages retrieves the tenant's contact pages
func ListContactPages(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("contact_page", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var pages []model.ContactPage
	result := database.GetDB().Where("tenant_id = ?", tenantID).Order("id").Find(&pages)
	if result.Error != nil {
		log.Error("Failed to retrieve contact pages",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve contact pages",
		})
	}

	return c.JSON(http.StatusOK, pages)
}

// CreateContactPage creates a contact page entry
func CreateContactPage(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("contact_page", "create")

	var req ContactPageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	if req.ContactUsText == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Contact text is required",
		})
	}

	imageURL, err := media.SaveFormFile(c, "contactus_image", upload.KindImage)
	if err != nil {
		return fileError(c, log, err)
	}

	page := model.ContactPage{
		TenantID:       tenantID,
		ContactUsText:  req.ContactUsText,
		ContactUsImage: imageURL,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&page); result.Error != nil {
		log.Error("Failed to create contact page",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create contact page",
		})
	}

	log.Info("Contact page created successfully",
		zap.Uint("contact_page_id", page.ID),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, page)
}

// UpdateContactPage updates a contact page entry
func UpdateContactPage(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("contact_page", "update")

	var req ContactPageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	if req.ContactUsText == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Contact text is required",
		})
	}

	var page model.ContactPage
	result := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantID).First(&page)
	if result.Error != nil {
		log.Warn("Contact page not found",
			zap.String("contact_page_id", id),
			zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Contact page not found",
		})
	}

	imageURL, err := media.SaveFormFile(c, "contactus_image", upload.KindImage)
	if err != nil {
		return fileError(c, log, err)
	}

	page.ContactUsText = req.ContactUsText
	if imageURL != "" {
		page.ContactUsImage = imageURL
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&page); result.Error != nil {
		log.Error("Failed to update contact page",
			zap.String("contact_page_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to update contact page",
		})
	}

	log.Info("Contact page updated successfully",
		zap.String("contact_page_id", id),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, page)
}

// DeleteContactPage removes a contact page entry
func DeleteContactPage(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("contact_page", "delete")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Where("tenant_id = ?", tenantID).Delete(&model.ContactPage{}, id)
	if result.Error != nil {
		log.Error("Failed to delete contact page",
			zap.String("contact_page_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to delete contact page",
		})
	}

	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Contact page not found",
		})
	}

	log.Info("Contact page deleted successfully",
		zap.String("contact_page_id", id),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Contact page deleted successfully",
	})
}
