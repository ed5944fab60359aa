package entity

import "time"

// Customer representa un cliente o proveedor de la empresa. Cada customer
// tiene asociado su libro mayor (LedgerID), que actúa como libro de la parte
// en los comprobantes.
type Customer struct {
	ID        string
	CompanyID string
	LedgerID  string // libro mayor de la parte (cuenta por cobrar / por pagar)
	Name      string
	TaxID     string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
