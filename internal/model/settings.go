package model

import (
	"time"

	"gorm.io/gorm"
)

// TenantSetting is the single per-tenant settings record assembled by the
// multi-step settings wizard and submitted as one payload.
type TenantSetting struct {
	ID                uint           `json:"id" gorm:"primarykey"`
	TenantID          uint           `json:"tenant_id" gorm:"uniqueIndex;not null"`
	DomainType        string         `json:"domain_type" gorm:"type:varchar(50)"` // 'primary_domain' or 'sub_domain'
	PrimaryDomainName string         `json:"primary_domain_name" gorm:"type:varchar(255)"`
	SubDomain         string         `json:"sub_domain" gorm:"type:varchar(255)"`
	WebsiteLink       string         `json:"website_link" gorm:"type:text"`
	FirstName         string         `json:"first_name" gorm:"type:varchar(100)"`
	LastName          string         `json:"last_name" gorm:"type:varchar(100)"`
	EmailID           string         `json:"email_id" gorm:"type:varchar(100)"`
	Mobile            string         `json:"mobile" gorm:"type:varchar(50)"`
	Address           string         `json:"address" gorm:"type:text"`
	Skype             string         `json:"skype" gorm:"type:varchar(100)"`
	PublishOnSite     bool           `json:"publish_on_site" gorm:"default:false"`
	SiteName          string         `json:"site_name" gorm:"type:varchar(255)"`
	SiteLogoURL       string         `json:"site_logo_url" gorm:"type:text"`
	NHTWebsiteLink    string         `json:"nht_website_link" gorm:"type:text"`
	NHTStoreLink      string         `json:"nht_store_link" gorm:"type:text"`
	NHTJoiningLink    string         `json:"nht_joining_link" gorm:"type:text"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// FAQ is a tenant question/answer entry
type FAQ struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	TenantID  uint           `json:"tenant_id" gorm:"index;not null"`
	Question  string         `json:"question" gorm:"type:text;not null"`
	Answer    string         `json:"answer" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Testimonial is a tenant testimonial entry
type Testimonial struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	TenantID  uint           `json:"tenant_id" gorm:"index;not null"`
	Author    string         `json:"author" gorm:"type:varchar(255);not null"`
	Content   string         `json:"content" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
