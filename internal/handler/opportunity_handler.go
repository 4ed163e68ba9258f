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

// OpportunityPageRequest carries every opportunity page field; the record is
// replaced as a whole on update. The update_type hint lets the compensation
// plan editor replace only its document while still resubmitting siblings.
type OpportunityPageRequest struct {
	WelcomeMessage   string `form:"welcome_message"`
	PageContent      string `form:"page_content"`
	HeaderTitle      string `form:"header_title"`
	VideoSectionLink string `form:"video_section_link"`
	UpdateType       string `form:"update_type"`
}

func (req *OpportunityPageRequest) apply(page *model.OpportunityPage) {
	// The plan-document editor submits only the document; text fields keep
	// their previous values in that case.
	if req.UpdateType == "plan_document_only" {
		return
	}
	page.WelcomeMessage = req.WelcomeMessage
	page.PageContent = req.PageContent
	page.HeaderTitle = req.HeaderTitle
	page.VideoSectionLink = req.VideoSectionLink
}

func opportunityPageFiles(c echo.Context, page *model.OpportunityPage) error {
	if url, err := media.SaveFormFile(c, "page_image", upload.KindImage); err != nil {
		return err
	} else if url != "" {
		page.PageImageURL = url
	}
	if url, err := media.SaveFormFile(c, "video_section", upload.KindVideo); err != nil {
		return err
	} else if url != "" {
		page.VideoSectionURL = url
	}
	if url, err := media.SaveFormFile(c, "plan_document", upload.KindDocument); err != nil {
		return err
	} else if url != "" {
		page.PlanDocumentURL = url
	}
	return nil
}

// GetOpportunityPage retrieves the tenant's opportunity page record
func GetOpportunityPage(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("opportunity_page", "get")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var page model.OpportunityPage
	result := database.GetDB().Where("tenant_id = ?", tenantID).First(&page)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			log.Info("Opportunity page not created yet", zap.Uint("tenant_id", tenantID))
			return c.JSON(http.StatusNotFound, echo.Map{
				"message": "Opportunity page not found",
			})
		}
		log.Error("Failed to retrieve opportunity page",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve opportunity page",
		})
	}

	return c.JSON(http.StatusOK, page)
}

// CreateOpportunityPage creates the tenant's opportunity page record
func CreateOpportunityPage(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("opportunity_page", "create")

	var count int64
	database.GetDB().Model(&model.OpportunityPage{}).Where("tenant_id = ?", tenantID).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"message": "Opportunity page already exists, use update",
		})
	}

	var req OpportunityPageRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	page := model.OpportunityPage{TenantID: tenantID}
	req.apply(&page)
	if err := opportunityPageFiles(c, &page); err != nil {
		return fileError(c, log, err)
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&page); result.Error != nil {
		log.Error("Failed to create opportunity page",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create opportunity page",
		})
	}

	log.Info("Opportunity page created successfully", zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, page)
}

// UpdateOpportunityPage replaces the tenant's opportunity page record
func UpdateOpportunityPage(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("opportunity_page", "update")

	var page model.OpportunityPage
	result := database.GetDB().Where("tenant_id = ?", tenantID).First(&page)
	if result.Error != nil {
		log.Warn("Opportunity page not found for update", zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Opportunity page not found",
		})
	}

	var req OpportunityPageRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	req.apply(&page)
	if err := opportunityPageFiles(c, &page); err != nil {
		return fileError(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&page); result.Error != nil {
		log.Error("Failed to update opportunity page",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to update opportunity page",
		})
	}

	log.Info("Opportunity page updated successfully", zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, page)
}
