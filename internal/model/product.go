package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product always belongs to one Supplier. Image holds the stored file name
// only; the bytes live wherever the upload component put them.
type Product struct {
	Entity
	SupplierID  uuid.UUID       `gorm:"type:uuid;not null;index" validate:"required"`
	Name        string          `gorm:"size:100;not null"        validate:"required,max=100"`
	Description string          `gorm:"size:100;not null"        validate:"required,max=100"`
	Image       string          `gorm:"size:100"                 validate:"max=100"`
	Value       decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
}

func (Product) TableName() string { return "products" }

func NewProduct(supplierID uuid.UUID, name, description string, value decimal.Decimal) *Product {
	return &Product{
		Entity:      NewEntity(),
		SupplierID:  supplierID,
		Name:        name,
		Description: description,
		Value:       value,
	}
}
