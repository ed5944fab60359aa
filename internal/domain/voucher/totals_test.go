package voucher_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

// Un ítem, qty=2, rate=100, sin descuento ni impuesto ni cargo adicional:
// neto = 200, gran total = 200, residuo = 0.
func TestAssembleTotals_VentaSimpleSinImpuesto(t *testing.T) {
	items := []voucher.LineItem{mustItem(t, "2", "100", "0", "0")}
	snap := voucher.AssembleTotals(voucher.AggregateItems(items), decimal.Zero)

	assert.True(t, snap.Net.Equal(dec("200")))
	assert.True(t, snap.TaxTotal.IsZero())
	assert.True(t, snap.RoundOff.IsZero())
	assert.True(t, snap.GrandTotal.Equal(dec("200")))
}

// Subtotal 199.4 → residuo +0.6 y gran total redondeado 200.
func TestAssembleTotals_ResiduoPositivo(t *testing.T) {
	items := []voucher.LineItem{mustItem(t, "1", "199.4", "0", "0")}
	snap := voucher.AssembleTotals(voucher.AggregateItems(items), decimal.Zero)

	assert.True(t, snap.PreRoundSubtotal.Equal(dec("199.4")))
	assert.True(t, snap.RoundOff.Equal(dec("0.6")))
	assert.True(t, snap.GrandTotal.Equal(dec("200")))
}

// Dos ítems con impuesto 18%: rates 50 y 75 → impuesto 22.5, neto 125,
// subtotal 147.5 → gran total 148 con residuo +0.5.
func TestAssembleTotals_DosItemsConImpuesto(t *testing.T) {
	items := []voucher.LineItem{
		mustItem(t, "1", "50", "0", "18"),
		mustItem(t, "1", "75", "0", "18"),
	}
	snap := voucher.AssembleTotals(voucher.AggregateItems(items), decimal.Zero)

	assert.True(t, snap.Net.Equal(dec("125")))
	assert.True(t, snap.TaxTotal.Equal(dec("22.5")))
	assert.True(t, snap.PreRoundSubtotal.Equal(dec("147.5")))
	assert.True(t, snap.RoundOff.Equal(dec("0.5")))
	assert.True(t, snap.GrandTotal.Equal(dec("148")))
}

// El cargo adicional de cabecera entra al subtotal antes del redondeo.
func TestAssembleTotals_CargoAdicional(t *testing.T) {
	items := []voucher.LineItem{mustItem(t, "1", "100.30", "0", "0")}
	snap := voucher.AssembleTotals(voucher.AggregateItems(items), dec("10.10"))

	assert.True(t, snap.PreRoundSubtotal.Equal(dec("110.40")))
	assert.True(t, snap.RoundOff.Equal(dec("-0.4")))
	assert.True(t, snap.GrandTotal.Equal(dec("110")))
}

// Cargo adicional negativo (rebaja de cabecera) también balancea.
func TestAssembleTotals_CargoNegativo(t *testing.T) {
	items := []voucher.LineItem{mustItem(t, "1", "100", "0", "0")}
	snap := voucher.AssembleTotals(voucher.AggregateItems(items), dec("-0.25"))

	assert.True(t, snap.PreRoundSubtotal.Equal(dec("99.75")))
	assert.True(t, snap.GrandTotal.Equal(dec("100")))
	assert.True(t, snap.RoundOff.Equal(dec("0.25")))
}

// GrandTotal == round(PreRoundSubtotal) y
// GrandTotal == Net + TaxTotal + AdditionalCharge + RoundOff, exacto.
func TestAssembleTotals_Invariantes(t *testing.T) {
	cases := [][]voucher.LineItem{
		nil,
		{mustItem(t, "2", "100", "10", "18")},
		{mustItem(t, "3", "33.33", "0", "19"), mustItem(t, "1", "0.005", "0", "0")},
		{mustItem(t, "7", "142.857", "100", "5"), mustItem(t, "2", "0.49", "0", "18")},
	}
	charges := []string{"0", "12.34", "-5.5"}
	for _, items := range cases {
		for _, ch := range charges {
			snap := voucher.AssembleTotals(voucher.AggregateItems(items), dec(ch))

			rounded, _ := voucher.RoundOff(snap.PreRoundSubtotal)
			assert.True(t, snap.GrandTotal.Equal(rounded),
				"GrandTotal (%s) debe ser el subtotal redondeado (%s)", snap.GrandTotal, rounded)

			sum := snap.Net.Add(snap.TaxTotal).Add(snap.AdditionalCharge).Add(snap.RoundOff)
			assert.True(t, snap.GrandTotal.Equal(sum),
				"GrandTotal (%s) debe ser neto+impuesto+cargo+residuo (%s)", snap.GrandTotal, sum)
		}
	}
}

// Recalcular sobre el mismo borrador produce un snapshot idéntico.
func TestAssembleTotals_Idempotente(t *testing.T) {
	items := []voucher.LineItem{
		mustItem(t, "2", "100", "10", "18"),
		mustItem(t, "1", "33.335", "0", "0"),
	}
	charge := dec("7.77")

	snap1 := voucher.AssembleTotals(voucher.AggregateItems(items), charge)
	snap2 := voucher.AssembleTotals(voucher.AggregateItems(items), charge)

	require.Equal(t, snap1, snap2, "dos recomputaciones del mismo borrador deben ser idénticas")
}
