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

// BlogRequest defines the multipart form fields for blog creation/update
type BlogRequest struct {
	Title     string `form:"title"`
	Content   string `form:"content"`
	IsVisible bool   `form:"is_visible"`
}

// BannerRequest defines the multipart form fields for blog banner creation/update
type BannerRequest struct {
	ImageContent string `form:"image_content"`
}

// ListBlogs retrieves all blog posts for the tenant, banners included
func ListBlogs(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("blog", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var blogs []model.Blog
	result := database.GetDB().Preload("Banners").
		Where("tenant_id = ?", tenantID).Order("id desc").Find(&blogs)
	if result.Error != nil {
		log.Error("Failed to retrieve blogs",
			zap.Error(result.Error),
			zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve blogs",
		})
	}

	log.Info("Blogs retrieved successfully",
		zap.Int("count", len(blogs)),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, blogs)
}

// GetBlog retrieves a single blog post with its banners
func GetBlog(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)

	var blog model.Blog
	result := database.GetDB().Preload("Banners").
		Where("id = ? AND tenant_id = ?", id, tenantID).First(&blog)
	if result.Error != nil {
		log.Error("Blog not found",
			zap.String("blog_id", id),
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Blog not found",
		})
	}

	return c.JSON(http.StatusOK, blog)
}

// CreateBlog creates a new blog post
func CreateBlog(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("blog", "create")

	var req BlogRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	if req.Title == "" || req.Content == "" {
		log.Warn("Blog title or content missing", zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Blog title and content are required",
		})
	}

	imageURL, err := media.SaveFormFile(c, "image", upload.KindImage)
	if err != nil {
		return fileError(c, log, err)
	}

	blog := model.Blog{
		TenantID:  tenantID,
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  imageURL,
		IsVisible: req.IsVisible,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	result := database.GetDB().Create(&blog)
	if result.Error != nil {
		log.Error("Failed to create blog",
			zap.String("title", req.Title),
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create blog",
		})
	}

	log.Info("Blog created successfully",
		zap.String("blog_id", strconv.FormatUint(uint64(blog.ID), 10)),
		zap.String("title", blog.Title),
		zap.Uint("tenant_id", blog.TenantID))
	return c.JSON(http.StatusCreated, blog)
}

// UpdateBlog updates an existing blog post
func UpdateBlog(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("blog", "update")

	var req BlogRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("blog_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	if req.Title == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Blog title and content are required",
		})
	}

	var blog model.Blog
	result := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantID).First(&blog)
	if result.Error != nil {
		log.Error("Blog not found for update",
			zap.String("blog_id", id),
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Blog not found",
		})
	}

	imageURL, err := media.SaveFormFile(c, "image", upload.KindImage)
	if err != nil {
		return fileError(c, log, err)
	}

	blog.Title = req.Title
	blog.Content = req.Content
	blog.IsVisible = req.IsVisible
	if imageURL != "" {
		blog.ImageURL = imageURL
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	result = database.GetDB().Save(&blog)
	if result.Error != nil {
		log.Error("Failed to update blog",
			zap.String("blog_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to update blog",
		})
	}

	log.Info("Blog updated successfully",
		zap.String("blog_id", id),
		zap.String("title", blog.Title),
		zap.Uint("tenant_id", blog.TenantID))
	return c.JSON(http.StatusOK, blog)
}

// DeleteBlog deletes a blog post and its banners (soft delete)
func DeleteBlog(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("blog", "delete")

	var blog model.Blog
	preResult := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantID).First(&blog)
	if preResult.Error != nil {
		log.Warn("Blog not found for deletion",
			zap.String("blog_id", id),
			zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Blog not found",
		})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	database.GetDB().Where("blog_id = ?", blog.ID).Delete(&model.BlogBanner{})
	result := database.GetDB().Delete(&blog)
	if result.Error != nil {
		log.Error("Failed to delete blog",
			zap.String("blog_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to delete blog",
		})
	}

	log.Info("Blog deleted successfully",
		zap.String("blog_id", id),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Blog deleted successfully",
	})
}

// blogForBanner loads the parent blog for a banner operation, enforcing
// tenant ownership through the parent.
func blogForBanner(c echo.Context, tenantID uint) (*model.Blog, error) {
	var blog model.Blog
	result := database.GetDB().
		Where("id = ? AND tenant_id = ?", c.Param("id"), tenantID).First(&blog)
	if result.Error != nil {
		return nil, result.Error
	}
	return &blog, nil
}

// CreateBlogBanner adds a banner to a blog post
func CreateBlogBanner(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("blog_banner", "create")

	blog, err := blogForBanner(c, tenantID)
	if err != nil {
		log.Warn("Parent blog not found for banner",
			zap.String("blog_id", c.Param("id")),
			zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Blog not found",
		})
	}

	var req BannerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	imageURL, err := media.SaveFormFile(c, "image", upload.KindImage)
	if err != nil {
		return fileError(c, log, err)
	}
	if imageURL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Banner image is required",
		})
	}

	banner := model.BlogBanner{
		BlogID:       blog.ID,
		ImageURL:     imageURL,
		ImageContent: req.ImageContent,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	result := database.GetDB().Create(&banner)
	if result.Error != nil {
		log.Error("Failed to create banner",
			zap.Uint("blog_id", blog.ID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to create banner",
		})
	}

	log.Info("Banner created successfully",
		zap.Uint("banner_id", banner.ID),
		zap.Uint("blog_id", blog.ID))
	return c.JSON(http.StatusCreated, banner)
}

// UpdateBlogBanner updates a banner within its parent blog
func UpdateBlogBanner(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("blog_banner", "update")

	blog, err := blogForBanner(c, tenantID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Blog not found",
		})
	}

	var banner model.BlogBanner
	result := database.GetDB().
		Where("id = ? AND blog_id = ?", c.Param("banner_id"), blog.ID).First(&banner)
	if result.Error != nil {
		log.Warn("Banner not found",
			zap.String("banner_id", c.Param("banner_id")),
			zap.Uint("blog_id", blog.ID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Banner not found",
		})
	}

	var req BannerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
		})
	}

	imageURL, err := media.SaveFormFile(c, "image", upload.KindImage)
	if err != nil {
		return fileError(c, log, err)
	}

	banner.ImageContent = req.ImageContent
	if imageURL != "" {
		banner.ImageURL = imageURL
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	result = database.GetDB().Save(&banner)
	if result.Error != nil {
		log.Error("Failed to update banner",
			zap.Uint("banner_id", banner.ID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to update banner",
		})
	}

	log.Info("Banner updated successfully",
		zap.Uint("banner_id", banner.ID),
		zap.Uint("blog_id", blog.ID))
	return c.JSON(http.StatusOK, banner)
}

// DeleteBlogBanner removes a banner from its parent blog
func DeleteBlogBanner(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("blog_banner", "delete")

	blog, err := blogForBanner(c, tenantID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Blog not found",
		})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().
		Where("blog_id = ?", blog.ID).Delete(&model.BlogBanner{}, c.Param("banner_id"))
	if result.Error != nil {
		log.Error("Failed to delete banner",
			zap.String("banner_id", c.Param("banner_id")),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to delete banner",
		})
	}

	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Banner not found",
		})
	}

	log.Info("Banner deleted successfully",
		zap.String("banner_id", c.Param("banner_id")),
		zap.Uint("blog_id", blog.ID))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Banner deleted successfully",
	})
}
