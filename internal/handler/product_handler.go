package handler

import (
	"net/http"
	"strconv"
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

// ProductRequest defines the multipart form fields for product creation/update
type ProductRequest struct {
	CategoryID       uint    `form:"category_id"`
	Name             string  `form:"name"`
	Title            string  `form:"title"`
	Price            float64 `form:"price"`
	PriceDescription string  `form:"price_description"`
	Availability     string  `form:"availability"`
	Status           string  `form:"status"`
	YoutubeLink      string  `form:"youtube_link"`
	Instructions     string  `form:"instructions"`
	Description      string  `form:"description"`
}

// productFiles uploads the optional file fields of a product form.
// Each file is checked against the upload rules before it leaves the server.
func productFiles(c echo.Context, p *model.Product) error {
	if url, err := media.SaveFormFile(c, "image", upload.KindImage); err != nil {
		return err
	} else if url != "" {
		p.ImageURL = url
	}
	if url, err := media.SaveFormFile(c, "banner_image", upload.KindImage); err != nil {
		return err
	} else if url != "" {
		p.BannerImageURL = url
	}
	if url, err := media.SaveFormFile(c, "guide_pdf", upload.KindDocument); err != nil {
		return err
	} else if url != "" {
		p.GuidePDFURL = url
	}
	if url, err := media.SaveFormFile(c, "video", upload.KindVideo); err != nil {
		return err
	} else if url != "" {
		p.VideoURL = url
	}
	return nil
}

// ListProducts retrieves all products for the tenant, with optional filtering
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("product", "list")

	query := database.GetDB().Where("tenant_id = ?", tenantID)

	// Filter by status if specified
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	// Filter by category if specified
	if categoryID := c.QueryParam("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var products []model.Product
	result := query.Order("id").Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products",
			zap.Error(result.Error),
			zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve products",
		})
	}

	log.Info("Products retrieved successfully",
		zap.Int("count", len(products)),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a single product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)

	var product model.Product
	result := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantID).First(&product)
	if result.Error != nil {
		log.Error("Product not found",
			zap.String("product_id", id),
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Product not found",
		})
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct creates a new product
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("product", "create")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	if req.Name == "" {
		log.Warn("Product name missing", zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Product name is required",
		})
	}
	if req.Availability == "" {
		req.Availability = "in_stock"
	}
	if req.Status == "" {
		req.Status = "active"
	}

	// A referenced category must exist for this tenant
	if req.CategoryID != 0 {
		var count int64
		database.GetDB().Model(&model.Category{}).
			Where("id = ? AND tenant_id = ?", req.CategoryID, tenantID).
			Count(&count)
		if count == 0 {
			log.Warn("Product references unknown category",
				zap.Uint("category_id", req.CategoryID),
				zap.Uint("tenant_id", tenantID))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "Category not found for this tenant",
			})
		}
	}

	product := model.Product{
		TenantID:         tenantID,
		CategoryID:       req.CategoryID,
		Name:             req.Name,
		Title:            req.Title,
		Price:            req.Price,
		PriceDescription: req.PriceDescription,
		Availability:     req.Availability,
		Status:           req.Status,
		YoutubeLink:      req.YoutubeLink,
		Instructions:     req.Instructions,
		Description:      req.Description,
	}

	if err := productFiles(c, &product); err != nil {
		return fileError(c, log, err)
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	result := database.GetDB().Create(&product)
	if result.Error != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create product",
		})
	}

	log.Info("Product created successfully",
		zap.String("product_id", strconv.FormatUint(uint64(product.ID), 10)),
		zap.String("name", product.Name),
		zap.Uint("tenant_id", product.TenantID))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct updates an existing product
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("product", "update")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Product name is required",
		})
	}

	var product model.Product
	result := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantID).First(&product)
	if result.Error != nil {
		log.Error("Product not found for update",
			zap.String("product_id", id),
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Product not found",
		})
	}

	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Title = req.Title
	product.Price = req.Price
	product.PriceDescription = req.PriceDescription
	if req.Availability != "" {
		product.Availability = req.Availability
	}
	if req.Status != "" {
		product.Status = req.Status
	}
	product.YoutubeLink = req.YoutubeLink
	product.Instructions = req.Instructions
	product.Description = req.Description

	if err := productFiles(c, &product); err != nil {
		return fileError(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	result = database.GetDB().Save(&product)
	if result.Error != nil {
		log.Error("Failed to update product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to update product",
		})
	}

	log.Info("Product updated successfully",
		zap.String("product_id", id),
		zap.String("name", product.Name),
		zap.Uint("tenant_id", product.TenantID))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct deletes a product (soft delete)
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("product", "delete")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Where("tenant_id = ?", tenantID).Delete(&model.Product{}, id)
	if result.Error != nil {
		log.Error("Failed to delete product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to delete product",
		})
	}

	if result.RowsAffected == 0 {
		log.Warn("Product not found for deletion",
			zap.String("product_id", id),
			zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Product not found",
		})
	}

	log.Info("Product deleted successfully",
		zap.String("product_id", id),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deleted successfully",
	})
}
