package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ProductRequest struct {
	SupplierID  string          `json:"supplier_id" validate:"required,uuid"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"` // stored file name, uploads are handled elsewhere
	Value       decimal.Decimal `json:"value"`
	Active      *bool           `json:"active"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Image        string          `json:"image,omitempty"`
	Value        decimal.Decimal `json:"value"`
	Active       bool            `json:"active"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
}
