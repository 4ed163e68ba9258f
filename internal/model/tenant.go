package model

import (
	"time"

	"gorm.io/gorm"
)

// Tenant represents a reseller storefront on the platform.
// The slug is the public URL segment; template_id selects which of the
// fixed site layouts is rendered for visitors.
type Tenant struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"type:varchar(100);not null"`
	Slug       string         `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
	TemplateID int            `json:"template_id" gorm:"default:1"`
	OwnerID    uint           `json:"owner_id" gorm:"index"`
	Active     bool           `json:"active" gorm:"default:true"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// User represents a backoffice or superadmin account
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Email     string         `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Password  string         `json:"-" gorm:"type:varchar(255)"`
	TenantID  *uint          `json:"tenant_id,omitempty" gorm:"index"`
	Role      string         `json:"role" gorm:"type:varchar(50);not null;default:'owner'"` // 'owner' or 'superadmin'
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
