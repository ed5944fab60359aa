package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLedgerRequest body para POST /api/ledgers.
type CreateLedgerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Kind string `json:"kind" validate:"required,oneof=customer supplier sales purchase other"`
}

// LedgerResponse libro mayor en respuestas.
type LedgerResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
}

// CreateCustomerRequest body para POST /api/customers. Si LedgerID va vacío se
// crea el libro de la parte junto con el cliente.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	TaxID    string `json:"tax_id" validate:"required,min=1,max=30"`
	LedgerID string `json:"ledger_id,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// CustomerResponse cliente/proveedor en respuestas.
type CustomerResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	LedgerID  string `json:"ledger_id"`
	Name      string `json:"name"`
	TaxID     string `json:"tax_id"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=60"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Description  string          `json:"description,omitempty"`
	CategoryID   string          `json:"category_id,omitempty"`
	Rate         decimal.Decimal `json:"rate"`
	PurchaseRate decimal.Decimal `json:"purchase_rate"`
	TaxRate      decimal.Decimal `json:"tax_rate"` // porcentaje (ej. 18)
	Unit         string          `json:"unit,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	CategoryID   *string          `json:"category_id"`
	Rate         *decimal.Decimal `json:"rate"`
	PurchaseRate *decimal.Decimal `json:"purchase_rate"`
	TaxRate      *decimal.Decimal `json:"tax_rate"`
	Unit         *string          `json:"unit"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	CategoryID   string          `json:"category_id,omitempty"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Rate         decimal.Decimal `json:"rate"`
	PurchaseRate decimal.Decimal `json:"purchase_rate"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Unit         string          `json:"unit,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Code     string `json:"code" validate:"required,min=1,max=30"`
	ParentID string `json:"parent_id,omitempty"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	ParentID  string `json:"parent_id,omitempty"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Status    string `json:"status"`
}
