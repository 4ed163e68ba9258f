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
)

// FAQRequest is the JSON body for FAQ creation/update
type FAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TestimonialRequest is the JSON body for testimonial creation/update
type TestimonialRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// ListFAQs retrieves the tenant's FAQs
func ListFAQs(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("faq", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var faqs []model.FAQ
	if result := database.GetDB().Where("tenant_id = ?", tenantID).Order("id").Find(&faqs); result.Error != nil {
		log.Error("Failed to retrieve FAQs",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve FAQs",
		})
	}

	return c.JSON(http.StatusOK, faqs)
}

// CreateFAQ adds an FAQ entry
func CreateFAQ(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("faq", "create")

	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	if req.Question == "" || req.Answer == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Question and answer are required",
		})
	}

	faq := model.FAQ{TenantID: tenantID, Question: req.Question, Answer: req.Answer}
	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&faq); result.Error != nil {
		log.Error("Failed to create FAQ",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create FAQ"})
	}

	log.Info("FAQ created successfully",
		zap.Uint("faq_id", faq.ID),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, faq)
}

// UpdateFAQ updates an FAQ entry
func UpdateFAQ(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("faq", "update")

	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	if req.Question == "" || req.Answer == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Question and answer are required",
		})
	}

	var faq model.FAQ
	if result := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantID).First(&faq); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "FAQ not found"})
	}

	faq.Question = req.Question
	faq.Answer = req.Answer

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&faq); result.Error != nil {
		log.Error("Failed to update FAQ",
			zap.String("faq_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update FAQ"})
	}

	return c.JSON(http.StatusOK, faq)
}

// DeleteFAQ removes an FAQ entry
func DeleteFAQ(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("faq", "delete")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Where("tenant_id = ?", tenantID).Delete(&model.FAQ{}, id)
	if result.Error != nil {
		log.Error("Failed to delete FAQ",
			zap.String("faq_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to delete FAQ"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "FAQ not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "FAQ deleted successfully"})
}

// ListTestimonials retrieves the tenant's testimonials
func ListTestimonials(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("testimonial", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var testimonials []model.Testimonial
	if result := database.GetDB().Where("tenant_id = ?", tenantID).Order("id").Find(&testimonials); result.Error != nil {
		log.Error("Failed to retrieve testimonials",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to retrieve testimonials",
		})
	}

	return c.JSON(http.StatusOK, testimonials)
}

// CreateTestimonial adds a testimonial entry
func CreateTestimonial(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("testimonial", "create")

	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	if req.Author == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Author and content are required",
		})
	}

	testimonial := model.Testimonial{TenantID: tenantID, Author: req.Author, Content: req.Content}
	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&testimonial); result.Error != nil {
		log.Error("Failed to create testimonial",
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create testimonial"})
	}

	return c.JSON(http.StatusCreated, testimonial)
}

// UpdateTestimonial updates a testimonial entry
func UpdateTestimonial(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("testimonial", "update")

	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	if req.Author == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Author and content are required",
		})
	}

	var testimonial model.Testimonial
	if result := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantID).First(&testimonial); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Testimonial not found"})
	}

	testimonial.Author = req.Author
	testimonial.Content = req.Content

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&testimonial); result.Error != nil {
		log.Error("Failed to update testimonial",
			zap.String("testimonial_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update testimonial"})
	}

	return c.JSON(http.StatusOK, testimonial)
}

// DeleteTestimonial removes a testimonial entry
func DeleteTestimonial(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	prometheus.RecordContentOperation("testimonial", "delete")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Where("tenant_id = ?", tenantID).Delete(&model.Testimonial{}, id)
	if result.Error != nil {
		log.Error("Failed to delete testimonial",
			zap.String("testimonial_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to delete testimonial"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Testimonial not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Testimonial deleted successfully"})
}
