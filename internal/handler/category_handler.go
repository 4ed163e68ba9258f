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

// CategoryRequest defines the multipart form fields for category creation/update
type CategoryRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Status      string `form:"status"`
}

// ListCategories retrieves all categories for the tenant in the path
func ListCategories(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("category", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var categories []model.Category
	result := database.GetDB().Where("tenant_id = ?", tenantID).Order("id").Find(&categories)
	if result.Error != nil {
		log.Error("Failed to retrieve categories",
			zap.Error(result.Error),
			zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve categories",
		})
	}

	log.Info("Categories retrieved successfully",
		zap.Int("count", len(categories)),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, categories)
}

// GetCategory retrieves a specific category by ID
func GetCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)

	var category model.Category
	result := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantID).First(&category)
	if result.Error != nil {
		log.Error("Category not found or does not belong to tenant",
			zap.String("category_id", id),
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Category not found",
		})
	}

	return c.JSON(http.StatusOK, category)
}

// CreateCategory adds a new category for the tenant
func CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("category", "create")

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	if req.Name == "" {
		log.Warn("Category name missing", zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Category name is required",
		})
	}
	if req.Status == "" {
		req.Status = "active"
	}

	imageURL, err := media.SaveFormFile(c, "image", upload.KindImage)
	if err != nil {
		return fileError(c, log, err)
	}

	category := model.Category{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		ImageURL:    imageURL,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	result := database.GetDB().Create(&category)
	if result.Error != nil {
		log.Error("Failed to create category",
			zap.String("name", req.Name),
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create category",
		})
	}

	log.Info("Category created successfully",
		zap.String("category_id", strconv.FormatUint(uint64(category.ID), 10)),
		zap.String("name", category.Name),
		zap.Uint("tenant_id", category.TenantID))
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory updates an existing category
func UpdateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("category", "update")

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("category_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Category name is required",
		})
	}

	var category model.Category
	result := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantID).First(&category)
	if result.Error != nil {
		log.Error("Category not found",
			zap.String("category_id", id),
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Category not found",
		})
	}

	imageURL, err := media.SaveFormFile(c, "image", upload.KindImage)
	if err != nil {
		return fileError(c, log, err)
	}

	category.Name = req.Name
	category.Description = req.Description
	if req.Status != "" {
		category.Status = req.Status
	}
	if imageURL != "" {
		category.ImageURL = imageURL
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	result = database.GetDB().Save(&category)
	if result.Error != nil {
		log.Error("Failed to update category",
			zap.String("category_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to update category",
		})
	}

	log.Info("Category updated successfully",
		zap.String("category_id", id),
		zap.String("name", category.Name),
		zap.Uint("tenant_id", category.TenantID))
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category (soft delete)
func DeleteCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("category", "delete")

	var category model.Category
	preResult := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantID).First(&category)
	if preResult.Error != nil {
		log.Warn("Category not found or does not belong to tenant",
			zap.String("category_id", id),
			zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Category not found",
		})
	}

	// Refuse to delete a category that still has products
	var count int64
	database.GetDB().Model(&model.Product{}).
		Where("category_id = ? AND tenant_id = ?", id, tenantID).
		Count(&count)
	if count > 0 {
		log.Warn("Cannot delete category that is being used by products",
			zap.String("category_id", id),
			zap.Int64("product_count", count))
		return c.JSON(http.StatusConflict, echo.Map{
			"message": "Cannot delete category that is being used by products",
		})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&category)
	if result.Error != nil {
		log.Error("Failed to delete category",
			zap.String("category_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to delete category",
		})
	}

	log.Info("Category deleted successfully",
		zap.String("category_id", id),
		zap.Uint("tenant_id", category.TenantID))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Category deleted successfully",
	})
}
