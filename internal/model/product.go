package model

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a storefront product
type Product struct {
	ID               uint           `json:"id" gorm:"primarykey"`
	TenantID         uint           `json:"tenant_id" gorm:"index;not null"`
	CategoryID       uint           `json:"category_id" gorm:"index"`
	Name             string         `json:"name" gorm:"type:varchar(255);not null"`
	Title            string         `json:"title" gorm:"type:varchar(255)"`
	Price            float64        `json:"price"`
	PriceDescription string         `json:"price_description" gorm:"type:varchar(255)"`
	Availability     string         `json:"availability" gorm:"type:varchar(50);default:'in_stock'"`
	Status           string         `json:"status" gorm:"type:varchar(20);default:'active'"`
	ImageURL         string         `json:"image_url" gorm:"type:text"`
	BannerImageURL   string         `json:"banner_image_url" gorm:"type:text"`
	GuidePDFURL      string         `json:"guide_pdf_url" gorm:"type:text"`
	VideoURL         string         `json:"video_url" gorm:"type:text"`
	YoutubeLink      string         `json:"youtube_link" gorm:"type:text"`
	Instructions     string         `json:"instructions" gorm:"type:text"`
	Description      string         `json:"description" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Category groups products for a tenant
type Category struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	TenantID    uint           `json:"tenant_id" gorm:"index;not null"`
	Name        string         `json:"name" gorm:"type:varchar(100);not null"`
	Description string         `json:"description" gorm:"type:text"`
	ImageURL    string         `json:"image_url" gorm:"type:text"`
	Status      string         `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
