package model

import (
	"time"

	"gorm.io/gorm"
)

// HomePage holds every homepage section for a tenant in one row.
// The update contract is whole-record replacement: each section editor
// rewrites all sibling fields alongside the one it owns.
type HomePage struct {
	ID                          uint           `json:"id" gorm:"primarykey"`
	TenantID                    uint           `json:"tenant_id" gorm:"uniqueIndex;not null"`
	WelcomeDescription          string         `json:"welcome_description" gorm:"type:text"`
	IntroductionContent         string         `json:"introduction_content" gorm:"type:text"`
	IntroductionImageURL        string         `json:"introduction_image_url" gorm:"type:text"`
	AboutCompanyTitle           string         `json:"about_company_title" gorm:"type:varchar(255)"`
	AboutCompanyContent1        string         `json:"about_company_content_1" gorm:"type:text"`
	AboutCompanyContent2        string         `json:"about_company_content_2" gorm:"type:text"`
	AboutCompanyImageURL        string         `json:"about_company_image_url" gorm:"type:text"`
	WhyNetworkMarketingTitle    string         `json:"why_network_marketing_title" gorm:"type:varchar(255)"`
	WhyNetworkMarketingContent  string         `json:"why_network_marketing_content" gorm:"type:text"`
	OpportunityVideoHeaderTitle string         `json:"opportunity_video_header_title" gorm:"type:varchar(255)"`
	OpportunityVideoURL         string         `json:"opportunity_video_url" gorm:"type:text"`
	SupportContent              string         `json:"support_content" gorm:"type:text"`
	CreatedAt                   time.Time      `json:"created_at"`
	UpdatedAt                   time.Time      `json:"updated_at"`
	DeletedAt                   gorm.DeletedAt `json:"-" gorm:"index"`
}

// OpportunityPage holds the opportunity overview sections for a tenant.
// Same whole-record replacement contract as HomePage.
type OpportunityPage struct {
	ID               uint           `json:"id" gorm:"primarykey"`
	TenantID         uint           `json:"tenant_id" gorm:"uniqueIndex;not null"`
	WelcomeMessage   string         `json:"welcome_message" gorm:"type:text"`
	PageContent      string         `json:"page_content" gorm:"type:text"`
	PageImageURL     string         `json:"page_image_url" gorm:"type:text"`
	HeaderTitle      string         `json:"header_title" gorm:"type:varchar(255)"`
	VideoSectionURL  string         `json:"video_section_url" gorm:"type:text"`
	VideoSectionLink string         `json:"video_section_link" gorm:"type:text"`
	PlanDocumentURL  string         `json:"plan_document_url" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// ProductPage holds the products landing page content for a tenant
type ProductPage struct {
	ID               uint           `json:"id" gorm:"primarykey"`
	TenantID         uint           `json:"tenant_id" gorm:"uniqueIndex;not null"`
	BannerContent    string         `json:"banner_content" gorm:"type:text"`
	BannerImageURL   string         `json:"banner_image_url" gorm:"type:text"`
	AboutDescription string         `json:"about_description" gorm:"type:text"`
	VideoSectionLink string         `json:"video_section_link" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// ContactPage is a contact-us entry for a tenant; editors treat these as a list
type ContactPage struct {
	ID              uint           `json:"id" gorm:"primarykey"`
	TenantID        uint           `json:"tenant_id" gorm:"index;not null"`
	ContactUsImage  string         `json:"contactus_image_url" gorm:"type:text;column:contactus_image_url"`
	ContactUsText   string         `json:"contactus_text" gorm:"type:text;column:contactus_text"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// FooterDisclaimer is the single per-tenant disclaimers record
type FooterDisclaimer struct {
	ID                 uint           `json:"id" gorm:"primarykey"`
	TenantID           uint           `json:"tenant_id" gorm:"uniqueIndex;not null"`
	SiteDisclaimer     string         `json:"site_disclaimer" gorm:"type:text"`
	ProductDisclaimer  string         `json:"product_disclaimer" gorm:"type:text"`
	IncomeDisclaimer   string         `json:"income_disclaimer" gorm:"type:text"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}
