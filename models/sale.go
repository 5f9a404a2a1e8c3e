package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is an immutable record of a completed POS transaction. Totals
// are stored as computed at the time of sale and never recalculated.
type Sale struct {
	Id         string `json:"id" gorm:"primaryKey"`
	ClientId   string `json:"client_id" gorm:"index"`
	ClientName string `json:"client_name"` // snapshot; survives client deletion

	Items []SaleItem `json:"items" gorm:"foreignKey:SaleId;constraint:OnDelete:CASCADE"`

	Subtotal float64 `json:"subtotal" gorm:"type:numeric(12,2)"`
	Discount float64 `json:"discount" gorm:"type:numeric(12,2)"`
	Total    float64 `json:"total" gorm:"type:numeric(12,2)"`
	Profit   float64 `json:"profit" gorm:"type:numeric(12,2)"`

	Date string `json:"date" gorm:"size:10;index"` // YYYY-MM-DD
}

// SaleItem snapshots a product line at the moment of sale. Name and
// prices are frozen; later catalog edits never touch recorded sales.
type SaleItem struct {
	ID          uint    `json:"-" gorm:"primaryKey"`
	SaleId      string  `json:"-" gorm:"index"`
	ProductId   string  `json:"product_id" gorm:"not null;index"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price" gorm:"type:numeric(12,2)"`
	CostPrice   float64 `json:"cost_price" gorm:"type:numeric(12,2)"`
}

func (sale *Sale) BeforeCreate(tx *gorm.DB) (err error) {
	if sale.Id == "" {
		sale.Id = uuid.NewString()
	}
	return
}
