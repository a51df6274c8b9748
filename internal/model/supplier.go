package model

import (
	"strings"
)

// SupplierKind decides which document format applies to a supplier.
type SupplierKind int

const (
	SupplierIndividual SupplierKind = 1
	SupplierCompany    SupplierKind = 2
)

func (k SupplierKind) String() string {
	switch k {
	case SupplierIndividual:
		return "individual"
	case SupplierCompany:
		return "company"
	default:
		return "unknown"
	}
}

// Supplier owns at most one Address and is referenced by any number of
// Products. Deleting a supplier never cascades: products must be removed or
// reassigned first, and the address is removed explicitly by the service.
type Supplier struct {
	Entity
	Name     string       `gorm:"size:100;not null"             validate:"required,max=100"`
	Document string       `gorm:"size:100;uniqueIndex;not null" validate:"required,max=100"`
	Kind     SupplierKind `gorm:"not null"                      validate:"oneof=1 2"`

	Address  *Address  `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
	Products []Product `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
}

func (Supplier) TableName() string { return "suppliers" }

// NewSupplier builds an active supplier with a fresh identity.
func NewSupplier(name, document string, kind SupplierKind) *Supplier {
	return &Supplier{
		Entity:   NewEntity(),
		Name:     name,
		Document: document,
		Kind:     kind,
	}
}

// AttachAddress makes a the address of s and points it back at s.
func (s *Supplier) AttachAddress(a *Address) {
	a.SupplierID = s.ID
	s.Address = a
}

// DocumentDigits strips the punctuation commonly typed into tax numbers.
// The second return value is false when anything other than digits and
// separators is present.
func DocumentDigits(document string) (string, bool) {
	var b strings.Builder
	for _, r := range document {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '/' || r == ' ':
		default:
			return "", false
		}
	}
	return b.String(), true
}

// NormalizeDocument returns the digits of document, which is the form it is
// stored and compared in. Anything that is not a tax number is returned
// trimmed but otherwise untouched, so validation can still reject it.
func NormalizeDocument(document string) string {
	if digits, ok := DocumentDigits(document); ok {
		return digits
	}
	return strings.TrimSpace(document)
}

// ValidDocument applies the per-kind length rule: individuals carry an
// 11-digit personal number, companies a 14-digit registration, or the
// owner's 11-digit number when registered as a sole proprietorship.
func ValidDocument(kind SupplierKind, document string) bool {
	digits, ok := DocumentDigits(document)
	if !ok {
		return false
	}
	switch kind {
	case SupplierIndividual:
		return len(digits) == 11
	case SupplierCompany:
		return len(digits) == 14 || len(digits) == 11
	default:
		return false
	}
}
