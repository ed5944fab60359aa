package voucher

import "github.com/shopspring/decimal"

// RoundOff redondea el subtotal al entero más cercano (mitades alejándose de
// cero, convención de facturación: 0.50 sube) y devuelve el residuo con signo.
//
//	rounded  = nearestInteger(preRound)
//	residual = rounded − preRound, con |residual| < 1
//
// El residuo se expone como línea visible "round off" del comprobante; nunca se
// absorbe en silencio. Para subtotales ya enteros el residuo es exactamente cero.
func RoundOff(preRound decimal.Decimal) (rounded, residual decimal.Decimal) {
	rounded = preRound.Round(0)
	residual = rounded.Sub(preRound)
	return rounded, residual
}
