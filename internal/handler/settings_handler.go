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
	"gorm.io/gorm"
)

// SettingsRequest carries the full settings payload assembled by the wizard.
// The logo arrives under the multipart field "files".
type SettingsRequest struct {
	DomainType        string `form:"domain_type"`
	PrimaryDomainName string `form:"primary_domain_name"`
	SubDomain         string `form:"sub_domain"`
	WebsiteLink       string `form:"website_link"`
	FirstName         string `form:"first_name"`
	LastName          string `form:"last_name"`
	EmailID           string `form:"email_id"`
	Mobile            string `form:"mobile"`
	Address           string `form:"address"`
	Skype             string `form:"skype"`
	PublishOnSite     bool   `form:"publish_on_site"`
	SiteName          string `form:"site_name"`
	NHTWebsiteLink    string `form:"nht_website_link"`
	NHTStoreLink      string `form:"nht_store_link"`
	NHTJoiningLink    string `form:"nht_joining_link"`
}

func (req *SettingsRequest) apply(s *model.TenantSetting) {
	s.DomainType = req.DomainType
	s.PrimaryDomainName = req.PrimaryDomainName
	s.SubDomain = req.SubDomain
	s.WebsiteLink = req.WebsiteLink
	s.FirstName = req.FirstName
	s.LastName = req.LastName
	s.EmailID = req.EmailID
	s.Mobile = req.Mobile
	s.Address = req.Address
	s.Skype = req.Skype
	s.PublishOnSite = req.PublishOnSite
	s.SiteName = req.SiteName
	s.NHTWebsiteLink = req.NHTWebsiteLink
	s.NHTStoreLink = req.NHTStoreLink
	s.NHTJoiningLink = req.NHTJoiningLink
}

// GetSettings retrieves the tenant's settings record
func GetSettings(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("settings", "get")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var settings model.TenantSetting
	result := database.GetDB().Where("tenant_id = ?", tenantID).First(&settings)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{
				"message": "Settings not found",
			})
		}
		log.Error("Failed to retrieve settings",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve settings",
		})
	}

	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings upserts the tenant's settings record from the wizard's
// final multipart submission.
func UpdateSettings(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("settings", "update")

	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	if req.DomainType == "" || req.PrimaryDomainName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Domain type and primary domain are required",
		})
	}

	var settings model.TenantSetting
	result := database.GetDB().Where("tenant_id = ?", tenantID).First(&settings)
	created := false
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			log.Error("Failed to load settings",
				zap.Uint("tenant_id", tenantID),
				zap.Error(result.Error))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"message": "Failed to load settings",
			})
		}
		settings = model.TenantSetting{TenantID: tenantID}
		created = true
	}

	req.apply(&settings)

	logoURL, err := media.SaveFormFile(c, "files", upload.KindImage)
	if err != nil {
		return fileError(c, log, err)
	}
	if logoURL != "" {
		settings.SiteLogoURL = logoURL
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&settings); result.Error != nil {
		log.Error("Failed to save settings",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to save settings",
		})
	}

	log.Info("Settings saved successfully",
		zap.Uint("tenant_id", tenantID),
		zap.Bool("created", created))
	if created {
		return c.JSON(http.StatusCreated, settings)
	}
	return c.JSON(http.StatusOK, settings)
}
