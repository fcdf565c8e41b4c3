// internal/models/common.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Status    RecordStatus   `json:"status" gorm:"type:varchar(10);not null;default:'active';index"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = RecordStatusActive
	}
	return nil
}

// IsDeleted reports whether the row was logically removed.
func (b BaseModel) IsDeleted() bool {
	return b.Status == RecordStatusDeleted || b.DeletedAt.Valid
}

// SoftDeleteColumns is the column set written when a row is logically removed.
func SoftDeleteColumns(at time.Time) map[string]interface{} {
	return map[string]interface{}{
		"status":     RecordStatusDeleted,
		"deleted_at": at,
	}
}

// Enums
type RecordStatus string

const (
	RecordStatusActive  RecordStatus = "active"
	RecordStatusDeleted RecordStatus = "deleted"
)

type ProductImageType string

const (
	ProductImageTypeList   ProductImageType = "list"
	ProductImageTypeDetail ProductImageType = "detail"
	ProductImageTypeBanner ProductImageType = "banner"
)

func (t ProductImageType) Valid() bool {
	switch t {
	case ProductImageTypeList, ProductImageTypeDetail, ProductImageTypeBanner:
		return true
	}
	return false
}
