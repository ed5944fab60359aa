package entity

import "time"

// Tipos de libro mayor. Los libros "party" (customer/supplier) se balancean
// contra los libros de control (sales/purchase) en cada comprobante.
const (
	LedgerKindCustomer = "customer" // cuenta por cobrar de un cliente
	LedgerKindSupplier = "supplier" // cuenta por pagar de un proveedor
	LedgerKindSales    = "sales"    // contrapartida de ventas
	LedgerKindPurchase = "purchase" // contrapartida de compras
	LedgerKindOther    = "other"
)

// Ledger representa un libro mayor (cuenta contable) de la empresa.
type Ledger struct {
	ID        string
	CompanyID string
	Name      string
	Kind      string // ver constantes LedgerKind*
	CreatedAt time.Time
	UpdatedAt time.Time
}
