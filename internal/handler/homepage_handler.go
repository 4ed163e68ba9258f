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

// HomePageRequest carries every homepage section field. The update contract
// is whole-record replacement: a section editor submits all sibling fields
// alongside the one it edited, and the handler persists all of them.
type HomePageRequest struct {
	WelcomeDescription          string `form:"welcome_description"`
	IntroductionContent         string `form:"introduction_content"`
	AboutCompanyTitle           string `form:"about_company_title"`
	AboutCompanyContent1        string `form:"about_company_content_1"`
	AboutCompanyContent2        string `form:"about_company_content_2"`
	WhyNetworkMarketingTitle    string `form:"why_network_marketing_title"`
	WhyNetworkMarketingContent  string `form:"why_network_marketing_content"`
	OpportunityVideoHeaderTitle string `form:"opportunity_video_header_title"`
	YoutubeLink                 string `form:"youtube_link"`
	SupportContent              string `form:"support_content"`
}

func (req *HomePageRequest) apply(page *model.HomePage) {
	page.WelcomeDescription = req.WelcomeDescription
	page.IntroductionContent = req.IntroductionContent
	page.AboutCompanyTitle = req.AboutCompanyTitle
	page.AboutCompanyContent1 = req.AboutCompanyContent1
	page.AboutCompanyContent2 = req.AboutCompanyContent2
	page.WhyNetworkMarketingTitle = req.WhyNetworkMarketingTitle
	page.WhyNetworkMarketingContent = req.WhyNetworkMarketingContent
	page.OpportunityVideoHeaderTitle = req.OpportunityVideoHeaderTitle
	page.OpportunityVideoURL = req.YoutubeLink
	page.SupportContent = req.SupportContent
}

func homePageFiles(c echo.Context, page *model.HomePage) error {
	if url, err := media.SaveFormFile(c, "introduction_image", upload.KindImage); err != nil {
		return err
	} else if url != "" {
		page.IntroductionImageURL = url
	}
	if url, err := media.SaveFormFile(c, "about_company_image", upload.KindImage); err != nil {
		return err
	} else if url != "" {
		page.AboutCompanyImageURL = url
	}
	if url, err := media.SaveFormFile(c, "opportunity_video", upload.KindVideo); err != nil {
		return err
	} else if url != "" {
		page.OpportunityVideoURL = url
	}
	return nil
}

// GetHomePage retrieves the tenant's homepage record
func GetHomePage(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("home_page", "get")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var page model.HomePage
	result := database.GetDB().Where("tenant_id = ?", tenantID).First(&page)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			log.Info("Home page not created yet", zap.Uint("tenant_id", tenantID))
			return c.JSON(http.StatusNotFound, echo.Map{
				"message": "Home page not found",
			})
		}
		log.Error("Failed to retrieve home page",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve home page",
		})
	}

	return c.JSON(http.StatusOK, page)
}

// CreateHomePage creates the tenant's homepage record
func CreateHomePage(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("home_page", "create")

	var count int64
	database.GetDB().Model(&model.HomePage{}).Where("tenant_id = ?", tenantID).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"message": "Home page already exists, use update",
		})
	}

	var req HomePageRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	page := model.HomePage{TenantID: tenantID}
	req.apply(&page)
	if err := homePageFiles(c, &page); err != nil {
		return fileError(c, log, err)
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&page); result.Error != nil {
		log.Error("Failed to create home page",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create home page",
		})
	}

	log.Info("Home page created successfully", zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, page)
}

// UpdateHomePage replaces the tenant's homepage record. Every field of the
// request is persisted; there is no partial patch.
func UpdateHomePage(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("home_page", "update")

	var page model.HomePage
	result := database.GetDB().Where("tenant_id = ?", tenantID).First(&page)
	if result.Error != nil {
		log.Warn("Home page not found for update", zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Home page not found",
		})
	}

	var req HomePageRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	req.apply(&page)
	if err := homePageFiles(c, &page); err != nil {
		return fileError(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&page); result.Error != nil {
		log.Error("Failed to update home page",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to update home page",
		})
	}

	log.Info("Home page updated successfully", zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, page)
}
