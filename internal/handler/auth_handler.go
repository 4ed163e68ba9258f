package handler

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"backoffice-service/internal/model"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/jwtutil"
	"backoffice-service/pkg/logger"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginRequest is the JSON body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the JSON body for tenant sign-up. A registration
// creates both the owner account and the tenant it manages.
type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	TenantName string `json:"tenant_name"`
	TemplateID int    `json:"template_id"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a tenant name into its public URL segment
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Login authenticates a user and issues a JWT carrying the tenant context
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	result := database.GetDB().Where("email = ?", req.Email).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			log.Warn("Login attempt for unknown email", zap.String("email", req.Email))
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid email or password"})
		}
		log.Error("Failed to query user", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to process login"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("email", req.Email))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid email or password"})
	}

	tenantName := ""
	if user.TenantID != nil {
		var tenant model.Tenant
		if result := database.GetDB().First(&tenant, *user.TenantID); result.Error == nil {
			tenantName = tenant.Name
		}
	}

	token, err := jwtutil.GenerateTokenWithTenant(user.Email, user.ID, user.TenantID, tenantName, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to generate token"})
	}

	log.Info("User logged in successfully",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email))
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": echo.Map{
			"id":        user.ID,
			"email":     user.Email,
			"tenant_id": user.TenantID,
			"role":      user.Role,
		},
	})
}

// Register creates an owner account along with its tenant
func Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	if req.Email == "" || req.Password == "" || req.TenantName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Email, password and tenant name are required",
		})
	}

	slug := Slugify(req.TenantName)
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Tenant name must contain letters or digits"})
	}

	templateID := req.TemplateID
	if templateID == 0 {
		templateID = 1
	}

	var count int64
	database.GetDB().Model(&model.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{"message": "Email is already registered"})
	}

	database.GetDB().Model(&model.Tenant{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{"message": "Tenant name is already taken"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to process registration"})
	}

	user := model.User{Email: req.Email, Password: string(hashed), Role: "owner"}
	tenant := model.Tenant{Name: req.TenantName, Slug: slug, TemplateID: templateID, Active: true}

	defer prometheus.TrackDBOperation("insert")(time.Now())
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
		log.Error("Failed to register user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to process registration"})
	}

	token, err := jwtutil.GenerateTokenWithTenant(user.Email, user.ID, user.TenantID, tenant.Name, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to generate token"})
	}

	log.Info("User registered successfully",
		zap.Uint("user_id", user.ID),
		zap.Uint("tenant_id", tenant.ID),
		zap.String("slug", tenant.Slug))
	return c.JSON(http.StatusCreated, echo.Map{
		"token": token,
		"user": echo.Map{
			"id":        user.ID,
			"email":     user.Email,
			"tenant_id": user.TenantID,
			"role":      user.Role,
		},
		"tenant": tenant,
	})
}

// ProbeToken confirms the caller's token still grants access to the tenant.
// Backoffice clients call it on startup to decide between the editor and
// the login screen.
func ProbeToken(c echo.Context) error {
	log := logger.FromContext(c)

	tenantID, ok := c.Get("tenant_id").(uint)
	if !ok {
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "tenant_id is required in the token"})
	}

	userID, _ := c.Get("user_id").(uint)
	email, _ := c.Get("email").(string)

	log.Debug("Token probe succeeded",
		zap.Uint("user_id", userID),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{
		"valid": true,
		"user": echo.Map{
			"id":        userID,
			"email":     email,
			"tenant_id": tenantID,
		},
	})
}
