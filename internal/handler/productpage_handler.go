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

// ProductPageRequest carries the products landing page fields; whole-record
// replacement like the other singleton pages.
type ProductPageRequest struct {
	BannerContent    string `form:"banner_content"`
	AboutDescription string `form:"about_description"`
	VideoSectionLink string `form:"video_section_link"`
}

func (req *ProductPageRequest) apply(page *model.ProductPage) {
	page.BannerContent = req.BannerContent
	page.AboutDescription = req.AboutDescription
	page.VideoSectionLink = req.VideoSectionLink
}

// GetProductPage retrieves the tenant's products landing page
func GetProductPage(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("product_page", "get")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var page model.ProductPage
	result := database.GetDB().Where("tenant_id = ?", tenantID).First(&page)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{
				"message": "Product page not found",
			})
		}
		log.Error("Failed to retrieve product page",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve product page",
		})
	}

	return c.JSON(http.StatusOK, page)
}

// CreateProductPage creates the tenant's products landing page
func CreateProductPage(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("product_page", "create")

	var count int64
	database.GetDB().Model(&model.ProductPage{}).Where("tenant_id = ?", tenantID).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"message": "Product page already exists, use update",
		})
	}

	var req ProductPageRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	page := model.ProductPage{TenantID: tenantID}
	req.apply(&page)

	if url, err := media.SaveFormFile(c, "banner_image", upload.KindImage); err != nil {
		return fileError(c, log, err)
	} else if url != "" {
		page.BannerImageURL = url
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&page); result.Error != nil {
		log.Error("Failed to create product page",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create product page",
		})
	}

	log.Info("Product page created successfully", zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, page)
}

// UpdateProductPage replaces the tenant's products landing page
func UpdateProductPage(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("product_page", "update")

	var page model.ProductPage
	result := database.GetDB().Where("tenant_id = ?", tenantID).First(&page)
	if result.Error != nil {
		log.Warn("Product page not found for update", zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Product page not found",
		})
	}

	var req ProductPageRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	req.apply(&page)

	if url, err := media.SaveFormFile(c, "banner_image", upload.KindImage); err != nil {
		return fileError(c, log, err)
	} else if url != "" {
		page.BannerImageURL = url
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&page); result.Error != nil {
		log.Error("Failed to update product page",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to update product page",
		})
	}

	log.Info("Product page updated successfully", zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, page)
}
