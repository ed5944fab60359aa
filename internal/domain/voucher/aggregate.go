package voucher

import "github.com/shopspring/decimal"

// Aggregate son las sumas escalares de la colección de líneas, sin redondeo.
// El redondeo se difiere a RoundOff para operar sobre la suma verdadera y no
// acumular error de redondeos parciales línea a línea.
type Aggregate struct {
	Gross        decimal.Decimal // Σ Amount (antes de descuento)
	Discount     decimal.Decimal // Σ Discount
	Tax          decimal.Decimal // Σ TaxAmount
	LineTotalSum decimal.Decimal // Σ LineTotal
}

// AggregateItems pliega las líneas en sus cuatro sumas. Función pura:
// secuencia vacía produce ceros y el orden de las líneas no altera el resultado.
func AggregateItems(items []LineItem) Aggregate {
	var agg Aggregate
	for _, it := range items {
		agg.Gross = agg.Gross.Add(it.Amount)
		agg.Discount = agg.Discount.Add(it.Discount)
		agg.Tax = agg.Tax.Add(it.TaxAmount)
		agg.LineTotalSum = agg.LineTotalSum.Add(it.LineTotal)
	}
	return agg
}
