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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUserRequest is the JSON body for superadmin-driven account creation
type CreateUserRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	TenantName string `json:"tenant_name"`
	TemplateID int    `json:"template_id"`
}

// CreateUser lets a superadmin provision an account. When a tenant name is
// given an owner account is created together with its tenant; otherwise the
// account is standalone (for example another superadmin).
func CreateUser(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordContentOperation("user", "create")

	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required"})
	}

	role := req.Role
	if role == "" {
		role = "owner"
	}
	if role != "owner" && role != "superadmin" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Role must be owner or superadmin"})
	}
	if role == "owner" && req.TenantName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Tenant name is required for owner accounts"})
	}

	var count int64
	database.GetDB().Model(&model.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{"message": "Email is already registered"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create user"})
	}

	user := model.User{Email: req.Email, Password: string(hashed), Role: role}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if role == "superadmin" {
		if result := database.GetDB().Create(&user); result.Error != nil {
			log.Error("Failed to create user", zap.Error(result.Error))
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create user"})
		}
		log.Info("Superadmin created", zap.Uint("user_id", user.ID))
		return c.JSON(http.StatusCreated, echo.Map{"user": user})
	}

	slug := Slugify(req.TenantName)
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Tenant name must contain letters or digits"})
	}

	database.GetDB().Model(&model.Tenant{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{"message": "Tenant name is already taken"})
	}

	templateID := req.TemplateID
	if templateID == 0 {
		templateID = 1
	}
	tenant := model.Tenant{Name: req.TenantName, Slug: slug, TemplateID: templateID, Active: true}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&user); result.Error != nil {
			return result.Error
		}
		tenant.OwnerID = user.ID
		if result := tx.Create(&tenant); result.Error != nil {
			return result.Error
		}
		user.TenantID = &tenant.ID
		return tx.Save(&user).Error
	})
	if err != nil {
		log.Error("Failed to create user and tenant", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create user"})
	}

	log.Info("Owner account provisioned",
		zap.Uint("user_id", user.ID),
		zap.Uint("tenant_id", tenant.ID))
	return c.JSON(http.StatusCreated, echo.Map{"user": user, "tenant": tenant})
}
