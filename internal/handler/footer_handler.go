package handler

import (
	"net/http"
	"time"

	"backoffice-service/internal/middleware"
	"backoffice-service/internal/model"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DisclaimerRequest is the JSON body for the footer disclaimers record
type DisclaimerRequest struct {
	SiteDisclaimer    string `json:"site_disclaimer"`
	ProductDisclaimer string `json:"product_disclaimer"`
	IncomeDisclaimer  string `json:"income_disclaimer"`
}

// GetDisclaimers retrieves the tenant's footer disclaimers
func GetDisclaimers(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("disclaimer", "get")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var record model.FooterDisclaimer
	result := database.GetDB().Where("tenant_id = ?", tenantID).First(&record)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{
				"message": "Disclaimers not found",
			})
		}
		log.Error("Failed to retrieve disclaimers",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve disclaimers",
		})
	}

	return c.JSON(http.StatusOK, record)
}

// CreateDisclaimers creates the tenant's footer disclaimers record
func CreateDisclaimers(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("disclaimer", "create")

	var req DisclaimerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	if req.SiteDisclaimer == "" && req.ProductDisclaimer == "" && req.IncomeDisclaimer == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "At least one disclaimer is required",
		})
	}

	var count int64
	database.GetDB().Model(&model.FooterDisclaimer{}).Where("tenant_id = ?", tenantID).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"message": "Disclaimers already exist, use update",
		})
	}

	record := model.FooterDisclaimer{
		TenantID:          tenantID,
		SiteDisclaimer:    req.SiteDisclaimer,
		ProductDisclaimer: req.ProductDisclaimer,
		IncomeDisclaimer:  req.IncomeDisclaimer,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&record); result.Error != nil {
		log.Error("Failed to create disclaimers",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create disclaimers",
		})
	}

	log.Info("Disclaimers created successfully", zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, record)
}

// UpdateDisclaimers overwrites the tenant's footer disclaimers record.
// The full record is replaced on every save.
func UpdateDisclaimers(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("disclaimer", "update")

	var req DisclaimerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	var record model.FooterDisclaimer
	result := database.GetDB().Where("tenant_id = ?", tenantID).First(&record)
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Disclaimers not found",
		})
	}

	record.SiteDisclaimer = req.SiteDisclaimer
	record.ProductDisclaimer = req.ProductDisclaimer
	record.IncomeDisclaimer = req.IncomeDisclaimer

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&record); result.Error != nil {
		log.Error("Failed to update disclaimers",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to update disclaimers",
		})
	}

	log.Info("Disclaimers updated successfully", zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, record)
}

// DeleteDisclaimers removes the tenant's footer disclaimers record
func DeleteDisclaimers(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("disclaimer", "delete")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	// Hard delete: tenant_id carries a unique index, so a soft-deleted
	// row would block the tenant from ever re-creating the record
	result := database.GetDB().Unscoped().Where("tenant_id = ?", tenantID).Delete(&model.FooterDisclaimer{})
	if result.Error != nil {
		log.Error("Failed to delete disclaimers",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to delete disclaimers",
		})
	}

	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Disclaimers not found",
		})
	}

	log.Info("Disclaimers deleted successfully", zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Disclaimers deleted successfully",
	})
}
