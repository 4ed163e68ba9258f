package handler

import (
	"net/http"
	"time"

	"backoffice-service/internal/model"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TemplateInfo describes one of the fixed site layouts
type TemplateInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var availableTemplates = []TemplateInfo{
	{ID: 1, Name: "Classic", Description: "Single column layout with a hero banner"},
	{ID: 2, Name: "Showcase", Description: "Product grid front and center"},
	{ID: 3, Name: "Story", Description: "Long-form layout leading with the company story"},
}

// ListTemplates returns the fixed set of site layouts tenants can pick from
func ListTemplates(c echo.Context) error {
	return c.JSON(http.StatusOK, availableTemplates)
}

// GetSiteBySlug resolves a tenant by its public slug and returns the data a
// renderer needs: the tenant record (including template_id), its home page
// and published settings.
func GetSiteBySlug(c echo.Context) error {
	log := logger.FromContext(c)
	slug := c.Param("slug")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var tenant model.Tenant
	result := database.GetDB().Where("slug = ? AND active = ?", slug, true).First(&tenant)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			log.Warn("Unknown site slug", zap.String("slug", slug))
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Site not found"})
		}
		log.Error("Failed to resolve site", zap.String("slug", slug), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to resolve site"})
	}

	var homePage model.HomePage
	hasHome := database.GetDB().Where("tenant_id = ?", tenant.ID).First(&homePage).Error == nil

	var settings model.TenantSetting
	hasSettings := database.GetDB().Where("tenant_id = ? AND publish_on_site = ?", tenant.ID, true).
		First(&settings).Error == nil

	response := echo.Map{"tenant": tenant}
	if hasHome {
		response["home_page"] = homePage
	}
	if hasSettings {
		response["settings"] = settings
	}

	return c.JSON(http.StatusOK, response)
}
