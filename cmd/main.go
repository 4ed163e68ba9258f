package main

import (
	"net/http"

	"backoffice-service/internal/handler"
	mid "backoffice-service/internal/middleware"
	"backoffice-service/internal/media"
	"backoffice-service/internal/model"
	"backoffice-service/internal/site"
	"backoffice-service/pkg/config"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/jwtutil"
	"backoffice-service/pkg/logger"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting backoffice-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if _, err := database.InitDB(&appConfig.DB); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Run migrations
	err = database.MigrateModels(
		&model.User{},
		&model.Tenant{},
		&model.Category{},
		&model.Product{},
		&model.Blog{},
		&model.BlogBanner{},
		&model.HomePage{},
		&model.OpportunityPage{},
		&model.ProductPage{},
		&model.ContactPage{},
		&model.FooterDisclaimer{},
		&model.TenantSetting{},
		&model.FAQ{},
		&model.Testimonial{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed")

	// Initialize media storage
	if err := media.Init(&appConfig.Media); err != nil {
		log.Fatal("Failed to initialize media storage", zap.Error(err))
	}
	log.Info("Media storage initialized", zap.String("folder", appConfig.Media.Folder))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Authentication routes
	e.POST("/users/login", handler.Login)
	e.POST("/users/register", handler.Register)
	e.GET("/users/:tenant_id", handler.ProbeToken, mid.AuthMiddleware, mid.TenantGuard)

	// Platform administration
	adminAPI := e.Group("/admin", mid.AuthMiddleware, mid.SuperadminOnly)
	adminAPI.POST("/create-user", handler.CreateUser)

	// Site resolution for external renderers
	e.GET("/site/:slug", handler.GetSiteBySlug)
	e.GET("/templates", handler.ListTemplates)

	// Tenant-scoped backoffice API
	tenantAPI := e.Group("/tenants/:tenant_id", mid.AuthMiddleware, mid.TenantGuard)

	tenantAPI.GET("/categories", handler.ListCategories)
	tenantAPI.GET("/categories/:id", handler.GetCategory)
	tenantAPI.POST("/categories", handler.CreateCategory)
	tenantAPI.PUT("/categories/:id", handler.UpdateCategory)
	tenantAPI.DELETE("/categories/:id", handler.DeleteCategory)

	tenantAPI.GET("/products", handler.ListProducts)
	tenantAPI.GET("/products/:id", handler.GetProduct)
	tenantAPI.POST("/products", handler.CreateProduct)
	tenantAPI.PUT("/products/:id", handler.UpdateProduct)
	tenantAPI.DELETE("/products/:id", handler.DeleteProduct)

	tenantAPI.GET("/blogs", handler.ListBlogs)
	tenantAPI.GET("/blogs/:id", handler.GetBlog)
	tenantAPI.POST("/blogs", handler.CreateBlog)
	tenantAPI.PUT("/blogs/:id", handler.UpdateBlog)
	tenantAPI.DELETE("/blogs/:id", handler.DeleteBlog)
	tenantAPI.POST("/blogs/:id/banners", handler.CreateBlogBanner)
	tenantAPI.PUT("/blogs/:id/banners/:banner_id", handler.UpdateBlogBanner)
	tenantAPI.DELETE("/blogs/:id/banners/:banner_id", handler.DeleteBlogBanner)

	tenantAPI.GET("/home-page", handler.GetHomePage)
	tenantAPI.POST("/home-page", handler.CreateHomePage)
	tenantAPI.PUT("/home-page", handler.UpdateHomePage)

	tenantAPI.GET("/opportunity-page", handler.GetOpportunityPage)
	tenantAPI.POST("/opportunity-page", handler.CreateOpportunityPage)
	tenantAPI.PUT("/opportunity-page", handler.UpdateOpportunityPage)

	tenantAPI.GET("/product-page", handler.GetProductPage)
	tenantAPI.POST("/product-page", handler.CreateProductPage)
	tenantAPI.PUT("/product-page", handler.UpdateProductPage)

	tenantAPI.GET("/contactus", handler.ListContactPages)
	tenantAPI.POST("/contactus", handler.CreateContactPage)
	tenantAPI.PUT("/contactus/:id", handler.UpdateContactPage)
	tenantAPI.DELETE("/contactus/:id", handler.DeleteContactPage)

	tenantAPI.GET("/footer/disclaimers", handler.GetDisclaimers)
	tenantAPI.POST("/footer/disclaimers", handler.CreateDisclaimers)
	tenantAPI.PUT("/footer/disclaimers", handler.UpdateDisclaimers)
	tenantAPI.DELETE("/footer/disclaimers", handler.DeleteDisclaimers)

	tenantAPI.GET("/settings", handler.GetSettings)
	tenantAPI.PUT("/settings", handler.UpdateSettings)

	tenantAPI.GET("/faqs", handler.ListFAQs)
	tenantAPI.POST("/faqs", handler.CreateFAQ)
	tenantAPI.PUT("/faqs/:id", handler.UpdateFAQ)
	tenantAPI.DELETE("/faqs/:id", handler.DeleteFAQ)

	tenantAPI.GET("/testimonials", handler.ListTestimonials)
	tenantAPI.POST("/testimonials", handler.CreateTestimonial)
	tenantAPI.PUT("/testimonials/:id", handler.UpdateTestimonial)
	tenantAPI.DELETE("/testimonials/:id", handler.DeleteTestimonial)

	// Public storefront pages, rendered per the tenant's chosen template
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK,
			`<!DOCTYPE html><html><head><title>Backoffice</title></head><body>`+
				`<h1>Backoffice</h1><p>Tenant sites are served under their own slug.</p></body></html>`)
	})
	e.GET("/:slug", site.RenderHome)
	e.GET("/:slug/products", site.RenderProducts)
	e.GET("/:slug/product/:id", site.RenderProduct)
	e.GET("/:slug/opportunity", site.RenderOpportunity)
	e.GET("/:slug/join-us", site.RenderJoin)
	e.GET("/:slug/contact", site.RenderContact)
	e.GET("/:slug/blog", site.RenderBlogList)
	e.GET("/:slug/blog/:id", site.RenderBlogPost)

	// Anything else goes back to the platform root
	echo.NotFoundHandler = func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/")
	}

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
