package voucher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

func mustItem(t *testing.T, qty, rate, discount, taxRate string) voucher.LineItem {
	t.Helper()
	it, err := voucher.NewLineItem("item", dec(qty), dec(rate), dec(discount), dec(taxRate))
	require.NoError(t, err)
	return it
}

func TestAggregateItems_SecuenciaVacia(t *testing.T) {
	agg := voucher.AggregateItems(nil)
	assert.True(t, agg.Gross.IsZero())
	assert.True(t, agg.Discount.IsZero())
	assert.True(t, agg.Tax.IsZero())
	assert.True(t, agg.LineTotalSum.IsZero())
}

func TestAggregateItems_SumaSinRedondeo(t *testing.T) {
	items := []voucher.LineItem{
		mustItem(t, "2", "100", "10", "18"),
		mustItem(t, "1", "33.335", "0", "0"),
	}
	agg := voucher.AggregateItems(items)

	assert.True(t, agg.Gross.Equal(dec("233.335")), "el agregador no redondea: %s", agg.Gross)
	assert.True(t, agg.Discount.Equal(dec("10")))
	assert.True(t, agg.Tax.Equal(dec("34.2")))
	assert.True(t, agg.LineTotalSum.Equal(dec("257.535")))
}

// La agregación es independiente del orden de las líneas (propiedad de aditividad).
func TestAggregateItems_IndependienteDelOrden(t *testing.T) {
	a := mustItem(t, "2", "100", "5", "18")
	b := mustItem(t, "3", "75.50", "0", "5")
	c := mustItem(t, "1", "0.01", "0", "0")

	agg1 := voucher.AggregateItems([]voucher.LineItem{a, b, c})
	agg2 := voucher.AggregateItems([]voucher.LineItem{c, a, b})

	assert.True(t, agg1.Gross.Equal(agg2.Gross))
	assert.True(t, agg1.Discount.Equal(agg2.Discount))
	assert.True(t, agg1.Tax.Equal(agg2.Tax))
	assert.True(t, agg1.LineTotalSum.Equal(agg2.LineTotalSum))
}

// Σ LineTotal == (Gross − Discount) + Tax para cualquier conjunto de líneas.
func TestAggregateItems_AditividadNetoMasImpuesto(t *testing.T) {
	items := []voucher.LineItem{
		mustItem(t, "2", "100", "10", "18"),
		mustItem(t, "4", "25.25", "1.25", "5"),
		mustItem(t, "10", "9.99", "0", "19"),
	}
	agg := voucher.AggregateItems(items)

	net := agg.Gross.Sub(agg.Discount)
	assert.True(t, agg.LineTotalSum.Equal(net.Add(agg.Tax)),
		"Σ LineTotal (%s) debe ser neto + impuesto (%s)", agg.LineTotalSum, net.Add(agg.Tax))
}
