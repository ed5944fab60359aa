package voucher

import "github.com/shopspring/decimal"

// TotalsSnapshot son los agregados monetarios presentados al operador y
// enviados en el payload. Valor derivado: se recalcula completo en cada
// mutación del borrador y nunca se persiste de forma independiente.
//
// Invariantes:
//
//	GrandTotal == round(PreRoundSubtotal)
//	GrandTotal == Net + TaxTotal + AdditionalCharge + RoundOff (exacto)
type TotalsSnapshot struct {
	Gross            decimal.Decimal
	DiscountTotal    decimal.Decimal
	Net              decimal.Decimal // Gross − DiscountTotal
	TaxTotal         decimal.Decimal
	AdditionalCharge decimal.Decimal
	PreRoundSubtotal decimal.Decimal // Σ LineTotal + AdditionalCharge
	RoundOff         decimal.Decimal // residuo con signo, |RoundOff| < 1
	GrandTotal       decimal.Decimal
}

// AssembleTotals combina el agregado de líneas, el cargo adicional de cabecera
// y la política de redondeo en el snapshot final. Determinista e idempotente:
// el mismo borrador produce siempre el mismo snapshot.
func AssembleTotals(agg Aggregate, additionalCharge decimal.Decimal) TotalsSnapshot {
	preRound := agg.LineTotalSum.Add(additionalCharge)
	_, residual := RoundOff(preRound)
	net := agg.Gross.Sub(agg.Discount)
	return TotalsSnapshot{
		Gross:            agg.Gross,
		DiscountTotal:    agg.Discount,
		Net:              net,
		TaxTotal:         agg.Tax,
		AdditionalCharge: additionalCharge,
		PreRoundSubtotal: preRound,
		RoundOff:         residual,
		GrandTotal:       net.Add(agg.Tax).Add(additionalCharge).Add(residual),
	}
}
