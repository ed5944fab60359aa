package voucher

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Errores de construcción de líneas.
var (
	ErrNegativeQuantity  = errors.New("la cantidad no puede ser negativa")
	ErrNegativeRate      = errors.New("el precio unitario no puede ser negativo")
	ErrDiscountExceeds   = errors.New("el descuento excede el importe de la línea")
	ErrNegativeLineTotal = errors.New("el total de la línea no puede ser negativo")
)

// LineItem es una línea del comprobante: producto, cantidad, precio unitario,
// descuento e impuesto opcional. Es un valor inmutable; los campos derivados
// (Amount, TaxAmount, LineTotal) se calculan en NewLineItem y nunca se editan sueltos.
type LineItem struct {
	ItemID    string
	Quantity  decimal.Decimal
	Rate      decimal.Decimal
	Amount    decimal.Decimal // Quantity × Rate, antes de descuento
	Discount  decimal.Decimal
	TaxRate   decimal.Decimal // porcentaje (ej. 18); cero si el impuesto no aplica
	TaxAmount decimal.Decimal // (Amount − Discount) × TaxRate / 100
	LineTotal decimal.Decimal // Amount − Discount + TaxAmount; invariante: ≥ 0
}

var hundred = decimal.NewFromInt(100)

// NewLineItem construye la línea y deriva importe, impuesto y total.
// El impuesto se calcula sobre la base ya descontada (importe − descuento),
// con TaxRate expresado en porcentaje.
func NewLineItem(itemID string, quantity, rate, discount, taxRate decimal.Decimal) (LineItem, error) {
	if quantity.IsNegative() {
		return LineItem{}, ErrNegativeQuantity
	}
	if rate.IsNegative() {
		return LineItem{}, ErrNegativeRate
	}
	amount := quantity.Mul(rate)
	if discount.IsNegative() || discount.GreaterThan(amount) {
		return LineItem{}, ErrDiscountExceeds
	}
	base := amount.Sub(discount)
	taxAmount := base.Mul(taxRate).Div(hundred)
	lineTotal := base.Add(taxAmount)
	if lineTotal.IsNegative() {
		// Solo alcanzable con TaxRate negativo; se rechaza en vez de coercionar a cero.
		return LineItem{}, ErrNegativeLineTotal
	}
	return LineItem{
		ItemID:    itemID,
		Quantity:  quantity,
		Rate:      rate,
		Amount:    amount,
		Discount:  discount,
		TaxRate:   taxRate,
		TaxAmount: taxAmount,
		LineTotal: lineTotal,
	}, nil
}
