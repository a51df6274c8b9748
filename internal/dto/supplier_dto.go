package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────
// Business rules (lengths, document format, uniqueness) are checked by the
// services so every client gets the same messages; the tags here only cover
// what must hold before a model can be built at all.

type AddressInput struct {
	Street     string  `json:"street"`
	Number     string  `json:"number"`
	Complement *string `json:"complement"`
	PostalCode string  `json:"postal_code"`
	District   string  `json:"district"`
	City       string  `json:"city"`
	State      string  `json:"state"`
}

type SupplierRequest struct {
	Name     string        `json:"name"`
	Document string        `json:"document"`
	Kind     int           `json:"kind"`
	Active   *bool         `json:"active"` // defaults to true on create
	Address  *AddressInput `json:"address"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AddressResponse struct {
	ID         string  `json:"id"`
	Street     string  `json:"street"`
	Number     string  `json:"number"`
	Complement *string `json:"complement,omitempty"`
	PostalCode string  `json:"postal_code"`
	District   string  `json:"district"`
	City       string  `json:"city"`
	State      string  `json:"state"`
}

type SupplierResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Document string            `json:"document"`
	Kind     int               `json:"kind"`
	KindName string            `json:"kind_name"`
	Active   bool              `json:"active"`
	Address  *AddressResponse  `json:"address,omitempty"`
	Products []ProductResponse `json:"products,omitempty"`
}

type SupplierListResponse struct {
	Data  []SupplierResponse `json:"data"`
	Total int                `json:"total"`
}
