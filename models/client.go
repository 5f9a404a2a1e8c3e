package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Prescription holds the optical correction values for both eyes
// (OD = right, OI = left). Values are free-form strings; an empty
// string means "not prescribed".
type Prescription struct {
	ODSphere   string `json:"od_sphere"`
	ODCylinder string `json:"od_cylinder"`
	ODAxis     string `json:"od_axis"`
	ODAddition string `json:"od_addition"`
	OISphere   string `json:"oi_sphere"`
	OICylinder string `json:"oi_cylinder"`
	OIAxis     string `json:"oi_axis"`
	OIAddition string `json:"oi_addition"`
}

type Client struct {
	Id           string `json:"id" gorm:"primaryKey"`
	FullName     string `json:"full_name" gorm:"not null"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	LastExamDate string `json:"last_exam_date" gorm:"size:10"` // YYYY-MM-DD
	ExamInStore  bool   `json:"exam_in_store"`

	Prescription datatypes.JSONType[Prescription] `json:"prescription"`

	Notes            string `json:"notes"`
	LastPurchaseDate string `json:"last_purchase_date" gorm:"size:10"`
}

func (client *Client) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4; seed fixtures arrive with their own ids
	if client.Id == "" {
		client.Id = uuid.NewString()
	}
	return
}
