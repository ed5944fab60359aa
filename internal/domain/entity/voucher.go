package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

// Voucher representa la cabecera persistida de un comprobante (venta o compra).
// Los totales se congelan en el momento del envío a partir del TotalsSnapshot;
// la cabecera es inmutable después de un envío exitoso.
type Voucher struct {
	ID               string
	CompanyID        string
	Kind             voucher.TransactionKind
	Number           string // número de comprobante del servicio de numeración; opaco
	Date             time.Time
	PartyLedgerID    string
	CounterLedgerID  string
	AdditionalCharge decimal.Decimal
	PaidAmount       decimal.Decimal
	DueDate          *time.Time // nil si no aplica
	PaymentMode      string     // vacío si no aplica
	Net              decimal.Decimal
	TaxTotal         decimal.Decimal
	TaxApplied       bool // false = impuestos no aplicables (distinto de impuesto cero)
	RoundOff         decimal.Decimal
	GrandTotal       decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// VoucherLine representa una línea persistida del comprobante.
type VoucherLine struct {
	ID        string
	VoucherID string
	ItemID    string
	Quantity  decimal.Decimal
	Rate      decimal.Decimal
	Discount  decimal.Decimal
	TaxRate   decimal.Decimal
	TaxAmount decimal.Decimal
	LineTotal decimal.Decimal
}

// VoucherPosting representa una pierna persistida de la partida doble del
// comprobante. Position preserva el orden parte (0) / contrapartida (1).
type VoucherPosting struct {
	ID        string
	VoucherID string
	LedgerID  string
	Amount    decimal.Decimal
	Position  int
}
