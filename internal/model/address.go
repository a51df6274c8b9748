package model

import "github.com/google/uuid"

// Address is owned by exactly one Supplier and has no lifecycle of its own.
type Address struct {
	Entity
	SupplierID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	Street     string    `gorm:"size:100;not null" validate:"required,max=100"`
	Number     string    `gorm:"size:100;not null" validate:"required,max=100"`
	Complement *string   `gorm:"size:100"          validate:"omitempty,max=100"`
	PostalCode string    `gorm:"size:100;not null" validate:"required,max=100"`
	District   string    `gorm:"size:100;not null" validate:"required,max=100"`
	City       string    `gorm:"size:100;not null" validate:"required,max=100"`
	State      string    `gorm:"size:100;not null" validate:"required,max=100"`
}

func (Address) TableName() string { return "addresses" }

func NewAddress(street, number, postalCode, district, city, state string) *Address {
	return &Address{
		Entity:     NewEntity(),
		Street:     street,
		Number:     number,
		PostalCode: postalCode,
		District:   district,
		City:       city,
		State:      state,
	}
}
