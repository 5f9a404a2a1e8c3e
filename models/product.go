package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductType enum
type ProductType string

const (
	TypeFrame        ProductType = "frame"
	TypeSingleVision ProductType = "single-vision"
	TypeBifocal      ProductType = "bifocal"
	TypeProgressive  ProductType = "progressive"
	TypeContact      ProductType = "contact"
)

// ProductCategory enum
type ProductCategory string

const (
	CategoryFrames ProductCategory = "frames"
	CategoryLenses ProductCategory = "lenses"
)

// CategoryFor returns the catalog category a product type belongs to.
// Frames stand alone; every lens type (including contacts) is "lenses".
func CategoryFor(t ProductType) ProductCategory {
	if t == TypeFrame {
		return CategoryFrames
	}
	return CategoryLenses
}

type Product struct {
	Id           string          `json:"id" gorm:"primaryKey"`
	SKU          string          `json:"sku" gorm:"not null"` // free text, not enforced unique
	Brand        string          `json:"brand" gorm:"not null"`
	Model        string          `json:"model" gorm:"not null"`
	Type         ProductType     `json:"type" gorm:"size:20;not null"`
	Category     ProductCategory `json:"category" gorm:"size:10;not null"`
	CostPrice    float64         `json:"cost_price" gorm:"type:numeric(12,2)"`
	SellingPrice float64         `json:"selling_price" gorm:"type:numeric(12,2)"`
	Stock        int             `json:"stock" gorm:"not null;default:0"`
}

func (product *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if product.Id == "" {
		product.Id = uuid.NewString()
	}
	return
}
