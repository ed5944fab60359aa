package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

// Draft es el comprobante en edición como valor inmutable: cada mutación
// devuelve un Draft nuevo en lugar de editar en sitio, de modo que la
// recomputación de totales es una función pura del último snapshot y puede
// correr en cada edición sin efectos ni debouncing.
type Draft struct {
	Kind             voucher.TransactionKind
	Date             time.Time // zero = fecha sin seleccionar
	PartyLedgerID    string
	CounterLedgerID  string
	AdditionalCharge decimal.Decimal
	PaidAmount       decimal.Decimal
	DueDate          *time.Time
	PaymentMode      string
	VoucherNumber    string // del servicio de numeración, obtenido una vez al abrir
	TaxEnabled       bool   // bandera de impuestos de la empresa, leída al abrir

	items []voucher.LineItem
}

// NewDraft abre un borrador vacío. VoucherNumber y TaxEnabled se fijan aquí y
// no cambian durante la vida del borrador.
func NewDraft(kind voucher.TransactionKind, voucherNumber string, taxEnabled bool) Draft {
	return Draft{
		Kind:          kind,
		VoucherNumber: voucherNumber,
		TaxEnabled:    taxEnabled,
	}
}

// Items devuelve una copia de la secuencia ordenada de líneas.
func (d Draft) Items() []voucher.LineItem {
	out := make([]voucher.LineItem, len(d.items))
	copy(out, d.items)
	return out
}

// ItemCount cantidad de líneas del borrador.
func (d Draft) ItemCount() int { return len(d.items) }

func (d Draft) cloneItems(extra int) []voucher.LineItem {
	out := make([]voucher.LineItem, len(d.items), len(d.items)+extra)
	copy(out, d.items)
	return out
}

// WithItemAppended agrega una línea al final.
func (d Draft) WithItemAppended(item voucher.LineItem) Draft {
	d.items = append(d.cloneItems(1), item)
	return d
}

// WithItemReplaced reemplaza la línea en la posición i; fuera de rango es no-op.
func (d Draft) WithItemReplaced(i int, item voucher.LineItem) Draft {
	if i < 0 || i >= len(d.items) {
		return d
	}
	items := d.cloneItems(0)
	items[i] = item
	d.items = items
	return d
}

// WithItemRemoved elimina la línea en la posición i; fuera de rango es no-op.
func (d Draft) WithItemRemoved(i int) Draft {
	if i < 0 || i >= len(d.items) {
		return d
	}
	items := d.cloneItems(0)
	d.items = append(items[:i], items[i+1:]...)
	return d
}

// WithDate fija la fecha del comprobante.
func (d Draft) WithDate(date time.Time) Draft {
	d.Date = date
	return d
}

// WithParty fija el libro mayor de la parte (cliente/proveedor).
func (d Draft) WithParty(ledgerID string) Draft {
	d.PartyLedgerID = ledgerID
	return d
}

// WithCounter fija el libro de contrapartida (control de ventas/compras).
func (d Draft) WithCounter(ledgerID string) Draft {
	d.CounterLedgerID = ledgerID
	return d
}

// WithAdditionalCharge fija el cargo adicional de cabecera (con signo).
func (d Draft) WithAdditionalCharge(charge decimal.Decimal) Draft {
	d.AdditionalCharge = charge
	return d
}

// WithPaidAmount fija el monto pagado.
func (d Draft) WithPaidAmount(paid decimal.Decimal) Draft {
	d.PaidAmount = paid
	return d
}

// WithDueDate fija la fecha de vencimiento (nil la limpia).
func (d Draft) WithDueDate(due *time.Time) Draft {
	d.DueDate = due
	return d
}

// WithPaymentMode fija el modo de pago.
func (d Draft) WithPaymentMode(mode string) Draft {
	d.PaymentMode = mode
	return d
}

// Totals recalcula el snapshot de totales del borrador. Puro y determinista:
// el mismo borrador produce siempre el mismo snapshot.
func (d Draft) Totals() voucher.TotalsSnapshot {
	return voucher.AssembleTotals(voucher.AggregateItems(d.items), d.AdditionalCharge)
}
