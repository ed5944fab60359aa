package voucher_test

import (
	"testing"

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

func TestNewLineItem_DerivaImporteYTotal(t *testing.T) {
	it, err := voucher.NewLineItem("item-1", dec("2"), dec("100"), dec("10"), dec("18"))
	require.NoError(t, err)

	assert.True(t, it.Amount.Equal(dec("200")), "Amount = cantidad × precio")
	assert.True(t, it.TaxAmount.Equal(dec("34.2")), "impuesto sobre la base descontada: 190 × 18%%")
	assert.True(t, it.LineTotal.Equal(dec("224.2")), "LineTotal = importe − descuento + impuesto")
}

func TestNewLineItem_SinImpuesto(t *testing.T) {
	it, err := voucher.NewLineItem("item-1", dec("3"), dec("50"), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, it.TaxAmount.IsZero())
	assert.True(t, it.LineTotal.Equal(dec("150")))
}

func TestNewLineItem_CantidadCero(t *testing.T) {
	it, err := voucher.NewLineItem("item-1", decimal.Zero, dec("100"), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, it.LineTotal.IsZero(), "cantidad cero produce línea en cero, no error")
}

func TestNewLineItem_Invalidos(t *testing.T) {
	_, err := voucher.NewLineItem("i", dec("-1"), dec("10"), decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, voucher.ErrNegativeQuantity)

	_, err = voucher.NewLineItem("i", dec("1"), dec("-10"), decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, voucher.ErrNegativeRate)

	_, err = voucher.NewLineItem("i", dec("1"), dec("10"), dec("11"), decimal.Zero)
	assert.ErrorIs(t, err, voucher.ErrDiscountExceeds, "descuento mayor que el importe se rechaza")

	_, err = voucher.NewLineItem("i", dec("1"), dec("10"), dec("-1"), decimal.Zero)
	assert.ErrorIs(t, err, voucher.ErrDiscountExceeds, "descuento negativo se rechaza")
}
