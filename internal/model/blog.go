package model

import (
	"time"

	"gorm.io/gorm"
)

// Blog represents a tenant blog post
type Blog struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	TenantID  uint           `json:"tenant_id" gorm:"index;not null"`
	Title     string         `json:"title" gorm:"type:varchar(255);not null"`
	Content   string         `json:"content" gorm:"type:text"`
	ImageURL  string         `json:"image_url" gorm:"type:text"`
	IsVisible bool           `json:"is_visible" gorm:"default:true"`
	Banners   []BlogBanner   `json:"banners,omitempty" gorm:"foreignKey:BlogID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// BlogBanner is an image banner owned by a blog post
type BlogBanner struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	BlogID       uint           `json:"blog_id" gorm:"index;not null"`
	ImageURL     string         `json:"image_url" gorm:"type:text"`
	ImageContent string         `json:"image_content" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
