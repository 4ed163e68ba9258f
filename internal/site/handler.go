package site

import (
	"html/template"
	"net/http"
	"time"

	"backoffice-service/internal/model"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PageData is the payload handed to every public page template
type PageData struct {
	Tenant      model.Tenant
	Settings    *model.TenantSetting
	Disclaimers *model.FooterDisclaimer
	Title       string
	Data        interface{}
}

// resolveTenant loads the tenant behind a slug together with the template
// set its template_id selects. A missing tenant or an unknown template_id
// redirects the visitor to the platform root.
func resolveTenant(c echo.Context) (*model.Tenant, *renderTarget, error) {
	log := logger.FromContext(c)
	slug := c.Param("slug")

	var tenant model.Tenant
	result := database.GetDB().Where("slug = ? AND active = ?", slug, true).First(&tenant)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			log.Warn("Unknown site slug, redirecting to root", zap.String("slug", slug))
			return nil, nil, c.Redirect(http.StatusFound, "/")
		}
		log.Error("Failed to resolve site", zap.String("slug", slug), zap.Error(result.Error))
		return nil, nil, renderError(c, "We could not load this site right now.")
	}

	tmpl, name, ok := Resolve(tenant.TemplateID)
	if !ok {
		log.Warn("Tenant has unknown template, redirecting to root",
			zap.Uint("tenant_id", tenant.ID),
			zap.Int("template_id", tenant.TemplateID))
		return nil, nil, c.Redirect(http.StatusFound, "/")
	}

	return &tenant, &renderTarget{tmpl: tmpl, layout: name}, nil
}

type renderTarget struct {
	tmpl   *template.Template
	layout string
}

func (t *renderTarget) render(c echo.Context, page string, data *PageData) error {
	prometheus.RecordSiteRender(t.layout, page)
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if err := t.tmpl.ExecuteTemplate(c.Response(), page, data); err != nil {
		logger.FromContext(c).Error("Template execution failed",
			zap.String("page", page),
			zap.Error(err))
		return err
	}
	return nil
}

// renderError shows a standalone error page with a link back to the root
func renderError(c echo.Context, message string) error {
	prometheus.RecordSiteRender("error", "error")
	return c.HTML(http.StatusInternalServerError,
		`<!DOCTYPE html><html><head><title>Something went wrong</title></head><body>`+
			`<h1>Something went wrong</h1><p>`+template.HTMLEscapeString(message)+`</p>`+
			`<p><a href="/">Back to the home page</a></p></body></html>`)
}

func pageData(c echo.Context, tenant *model.Tenant, title string, data interface{}) *PageData {
	pd := &PageData{Tenant: *tenant, Title: title, Data: data}

	var settings model.TenantSetting
	if database.GetDB().Where("tenant_id = ? AND publish_on_site = ?", tenant.ID, true).
		First(&settings).Error == nil {
		pd.Settings = &settings
	}

	var disclaimers model.FooterDisclaimer
	if database.GetDB().Where("tenant_id = ?", tenant.ID).First(&disclaimers).Error == nil {
		pd.Disclaimers = &disclaimers
	}

	return pd
}

// RenderHome renders a tenant's landing page
func RenderHome(c echo.Context) error {
	tenant, target, err := resolveTenant(c)
	if tenant == nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var home model.HomePage
	data := struct {
		Home *model.HomePage
	}{}
	if database.GetDB().Where("tenant_id = ?", tenant.ID).First(&home).Error == nil {
		data.Home = &home
	}

	return target.render(c, "home", pageData(c, tenant, tenant.Name, data))
}

// RenderProducts renders the product catalog page
func RenderProducts(c echo.Context) error {
	tenant, target, err := resolveTenant(c)
	if tenant == nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var page model.ProductPage
	var products []model.Product
	var categories []model.Category
	database.GetDB().Where("tenant_id = ? AND status = ?", tenant.ID, "active").Order("id").Find(&products)
	database.GetDB().Where("tenant_id = ?", tenant.ID).Order("id").Find(&categories)

	data := struct {
		Page       *model.ProductPage
		Products   []model.Product
		Categories []model.Category
	}{Products: products, Categories: categories}
	if database.GetDB().Where("tenant_id = ?", tenant.ID).First(&page).Error == nil {
		data.Page = &page
	}

	return target.render(c, "products", pageData(c, tenant, "Products", data))
}

// RenderProduct renders a single product detail page
func RenderProduct(c echo.Context) error {
	tenant, target, err := resolveTenant(c)
	if tenant == nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var product model.Product
	result := database.GetDB().Where("id = ? AND tenant_id = ?", c.Param("id"), tenant.ID).First(&product)
	if result.Error != nil {
		return c.Redirect(http.StatusFound, "/"+tenant.Slug+"/products")
	}

	return target.render(c, "product", pageData(c, tenant, product.Name, &product))
}

// RenderOpportunity renders the business opportunity page
func RenderOpportunity(c echo.Context) error {
	tenant, target, err := resolveTenant(c)
	if tenant == nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var page model.OpportunityPage
	data := struct {
		Page *model.OpportunityPage
	}{}
	if database.GetDB().Where("tenant_id = ?", tenant.ID).First(&page).Error == nil {
		data.Page = &page
	}

	return target.render(c, "opportunity", pageData(c, tenant, "Opportunity", data))
}

// RenderJoin renders the join-us page with FAQs and testimonials
func RenderJoin(c echo.Context) error {
	tenant, target, err := resolveTenant(c)
	if tenant == nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var faqs []model.FAQ
	var testimonials []model.Testimonial
	database.GetDB().Where("tenant_id = ?", tenant.ID).Order("id").Find(&faqs)
	database.GetDB().Where("tenant_id = ?", tenant.ID).Order("id").Find(&testimonials)

	data := struct {
		FAQs         []model.FAQ
		Testimonials []model.Testimonial
	}{FAQs: faqs, Testimonials: testimonials}

	return target.render(c, "join", pageData(c, tenant, "Join Us", data))
}

// RenderContact renders the contact page
func RenderContact(c echo.Context) error {
	tenant, target, err := resolveTenant(c)
	if tenant == nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var pages []model.ContactPage
	database.GetDB().Where("tenant_id = ?", tenant.ID).Order("id").Find(&pages)

	data := struct {
		Pages []model.ContactPage
	}{Pages: pages}

	return target.render(c, "contact", pageData(c, tenant, "Contact", data))
}

// RenderBlogList renders the visible blog posts
func RenderBlogList(c echo.Context) error {
	tenant, target, err := resolveTenant(c)
	if tenant == nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var blogs []model.Blog
	database.GetDB().Where("tenant_id = ? AND is_visible = ?", tenant.ID, true).
		Order("created_at DESC").Find(&blogs)

	data := struct {
		Blogs []model.Blog
	}{Blogs: blogs}

	return target.render(c, "blogs", pageData(c, tenant, "Blog", data))
}

// RenderBlogPost renders one blog post with its banners
func RenderBlogPost(c echo.Context) error {
	tenant, target, err := resolveTenant(c)
	if tenant == nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var blog model.Blog
	result := database.GetDB().Preload("Banners").
		Where("id = ? AND tenant_id = ? AND is_visible = ?", c.Param("id"), tenant.ID, true).
		First(&blog)
	if result.Error != nil {
		return c.Redirect(http.StatusFound, "/"+tenant.Slug+"/blog")
	}

	return target.render(c, "blog", pageData(c, tenant, blog.Title, &blog))
}
