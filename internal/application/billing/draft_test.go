package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func line(t *testing.T, qty, rate, discount, taxRate string) voucher.LineItem {
	t.Helper()
	it, err := voucher.NewLineItem("item", dec(qty), dec(rate), dec(discount), dec(taxRate))
	require.NoError(t, err)
	return it
}

// Cada mutación devuelve un borrador nuevo; el snapshot anterior queda intacto.
func TestDraft_MutacionesInmutables(t *testing.T) {
	d0 := NewDraft(voucher.KindOutgoing, "V-001", false)
	d1 := d0.WithItemAppended(line(t, "2", "100", "0", "0"))
	d2 := d1.WithItemAppended(line(t, "1", "50", "0", "0"))

	assert.Equal(t, 0, d0.ItemCount(), "el borrador original no se muta")
	assert.Equal(t, 1, d1.ItemCount())
	assert.Equal(t, 2, d2.ItemCount())

	d3 := d2.WithItemRemoved(0)
	assert.Equal(t, 2, d2.ItemCount(), "remover produce un snapshot nuevo")
	assert.Equal(t, 1, d3.ItemCount())
	assert.True(t, d3.Totals().GrandTotal.Equal(dec("50")))
}

func TestDraft_ReemplazoDeLinea(t *testing.T) {
	d := NewDraft(voucher.KindOutgoing, "V-001", false).
		WithItemAppended(line(t, "2", "100", "0", "0"))
	d2 := d.WithItemReplaced(0, line(t, "3", "100", "0", "0"))

	assert.True(t, d.Totals().GrandTotal.Equal(dec("200")))
	assert.True(t, d2.Totals().GrandTotal.Equal(dec("300")))

	// Índice fuera de rango: no-op.
	assert.Equal(t, d2, d2.WithItemReplaced(5, line(t, "1", "1", "0", "0")))
	assert.Equal(t, d2, d2.WithItemRemoved(-1))
}

// Items() entrega una copia: modificarla no toca el borrador.
func TestDraft_ItemsEsCopia(t *testing.T) {
	d := NewDraft(voucher.KindOutgoing, "V-001", false).
		WithItemAppended(line(t, "2", "100", "0", "0"))
	items := d.Items()
	items[0] = line(t, "9", "9", "0", "0")
	assert.True(t, d.Totals().GrandTotal.Equal(dec("200")))
}

// Totals es pura: dos llamadas sobre el mismo borrador son idénticas.
func TestDraft_TotalsIdempotente(t *testing.T) {
	due := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	d := NewDraft(voucher.KindIncoming, "C-007", true).
		WithItemAppended(line(t, "1", "50", "0", "18")).
		WithItemAppended(line(t, "1", "75", "0", "18")).
		WithDueDate(&due).
		WithAdditionalCharge(dec("0"))

	require.Equal(t, d.Totals(), d.Totals())
	assert.True(t, d.Totals().GrandTotal.Equal(dec("148")))
	assert.True(t, d.Totals().RoundOff.Equal(dec("0.5")))
}
