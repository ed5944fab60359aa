package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	TaxID      string `json:"tax_id" validate:"required,min=1,max=30"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email" validate:"omitempty,email"`
	TaxEnabled bool   `json:"tax_enabled"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
// TaxEnabled no se edita por aquí: cambiar la bandera de impuestos con
// borradores abiertos no es una transición soportada.
type UpdateCompanyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Status  *string `json:"status" validate:"omitempty,oneof=active suspended inactive"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TaxID      string    `json:"tax_id"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	TaxEnabled bool      `json:"tax_enabled"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
