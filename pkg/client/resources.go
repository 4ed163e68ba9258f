package client

import "strings"

// The types below mirror the backend's JSON for the resources the
// backoffice edits. Each carries a GetID so the generic editor can
// address individual items.

// Category is a product category as the backend returns it
type Category struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Status      string `json:"status"`
}

// GetID implements Identifiable
func (c Category) GetID() uint { return c.ID }

// CategoryForm is the multipart form for category create/update
type CategoryForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Status      string `form:"status"`
}

// Product is a catalog product as the backend returns it
type Product struct {
	ID               uint    `json:"id"`
	CategoryID       uint    `json:"category_id"`
	Name             string  `json:"name"`
	Title            string  `json:"title"`
	Price            float64 `json:"price"`
	PriceDescription string  `json:"price_description"`
	Availability     string  `json:"availability"`
	Status           string  `json:"status"`
	ImageURL         string  `json:"image_url"`
	BannerImageURL   string  `json:"banner_image_url"`
	GuidePDFURL      string  `json:"guide_pdf_url"`
	VideoURL         string  `json:"video_url"`
	YoutubeLink      string  `json:"youtube_link"`
	Instructions     string  `json:"instructions"`
	Description      string  `json:"description"`
}

// GetID implements Identifiable
func (p Product) GetID() uint { return p.ID }

// ProductForm is the multipart form for product create/update
type ProductForm struct {
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

// Blog is a blog post as the backend returns it
type Blog struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	ImageURL  string       `json:"image_url"`
	IsVisible bool         `json:"is_visible"`
	Banners   []BlogBanner `json:"banners"`
}

// GetID implements Identifiable
func (b Blog) GetID() uint { return b.ID }

// BlogBanner is an in-post banner image
type BlogBanner struct {
	ID           uint   `json:"id"`
	BlogID       uint   `json:"blog_id"`
	ImageURL     string `json:"image_url"`
	ImageContent string `json:"image_content"`
}

// BlogForm is the multipart form for blog create/update
type BlogForm struct {
	Title     string `form:"title"`
	Content   string `form:"content"`
	IsVisible bool   `form:"is_visible"`
}

// ContactPage is a contact page entry as the backend returns it
type ContactPage struct {
	ID             uint   `json:"id"`
	ContactUsImage string `json:"contactus_image_url"`
	ContactUsText  string `json:"contactus_text"`
}

// GetID implements Identifiable
func (p ContactPage) GetID() uint { return p.ID }

// ContactPageForm is the multipart form for contact page create/update
type ContactPageForm struct {
	ContactUsText string `form:"contactus_text"`
}

// FAQ is a join-us FAQ entry
type FAQ struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GetID implements Identifiable
func (f FAQ) GetID() uint { return f.ID }

// Testimonial is a join-us testimonial entry
type Testimonial struct {
	ID      uint   `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// GetID implements Identifiable
func (t Testimonial) GetID() uint { return t.ID }

// HomePage is the tenant's landing page record. The form tags let the
// singleton editor resubmit every field on save; the stored video URL
// travels back under the backend's youtube_link form field. URL columns
// the backend only sets from file parts are ignored on submit.
type HomePage struct {
	ID                          uint   `json:"id" form:"id"`
	WelcomeDescription          string `json:"welcome_description" form:"welcome_description"`
	IntroductionContent         string `json:"introduction_content" form:"introduction_content"`
	IntroductionImageURL        string `json:"introduction_image_url" form:"introduction_image_url"`
	AboutCompanyTitle           string `json:"about_company_title" form:"about_company_title"`
	AboutCompanyContent1        string `json:"about_company_content_1" form:"about_company_content_1"`
	AboutCompanyContent2        string `json:"about_company_content_2" form:"about_company_content_2"`
	AboutCompanyImageURL        string `json:"about_company_image_url" form:"about_company_image_url"`
	WhyNetworkMarketingTitle    string `json:"why_network_marketing_title" form:"why_network_marketing_title"`
	WhyNetworkMarketingContent  string `json:"why_network_marketing_content" form:"why_network_marketing_content"`
	OpportunityVideoHeaderTitle string `json:"opportunity_video_header_title" form:"opportunity_video_header_title"`
	OpportunityVideoURL         string `json:"opportunity_video_url" form:"youtube_link"`
	SupportContent              string `json:"support_content" form:"support_content"`
}

// OpportunityPage is the tenant's opportunity page record
type OpportunityPage struct {
	ID               uint   `json:"id" form:"id"`
	WelcomeMessage   string `json:"welcome_message" form:"welcome_message"`
	PageContent      string `json:"page_content" form:"page_content"`
	PageImageURL     string `json:"page_image_url" form:"page_image_url"`
	HeaderTitle      string `json:"header_title" form:"header_title"`
	VideoSectionURL  string `json:"video_section_url" form:"video_section_url"`
	VideoSectionLink string `json:"video_section_link" form:"video_section_link"`
	PlanDocumentURL  string `json:"plan_document_url" form:"plan_document_url"`
}

// ProductPage is the tenant's products landing page record
type ProductPage struct {
	ID               uint   `json:"id" form:"id"`
	BannerContent    string `json:"banner_content" form:"banner_content"`
	BannerImageURL   string `json:"banner_image_url" form:"banner_image_url"`
	AboutDescription string `json:"about_description" form:"about_description"`
	VideoSectionLink string `json:"video_section_link" form:"video_section_link"`
}

// Disclaimers is the tenant's footer disclaimers record
type Disclaimers struct {
	ID                uint   `json:"id"`
	SiteDisclaimer    string `json:"site_disclaimer"`
	ProductDisclaimer string `json:"product_disclaimer"`
	IncomeDisclaimer  string `json:"income_disclaimer"`
}

// MatchByName is a Match function for resources searched by name
func MatchByName(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}
