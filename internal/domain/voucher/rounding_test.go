package voucher_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

func TestRoundOff_MitadesSeAlejanDeCero(t *testing.T) {
	cases := []struct {
		in, rounded, residual string
	}{
		{"199.4", "199", "-0.4"},
		{"199.5", "200", "0.5"},  // 0.50 sube, convención de facturación
		{"199.6", "200", "0.4"},
		{"-199.5", "-200", "-0.5"}, // mitades negativas se alejan de cero
		{"-199.4", "-199", "0.4"},
		{"0.5", "1", "0.5"},
		{"0.49", "0", "-0.49"},
	}
	for _, c := range cases {
		rounded, residual := voucher.RoundOff(dec(c.in))
		assert.True(t, rounded.Equal(dec(c.rounded)), "rounded(%s) = %s, esperado %s", c.in, rounded, c.rounded)
		assert.True(t, residual.Equal(dec(c.residual)), "residual(%s) = %s, esperado %s", c.in, residual, c.residual)
	}
}

func TestRoundOff_EnteroProduceResiduoCeroExacto(t *testing.T) {
	rounded, residual := voucher.RoundOff(dec("200"))
	assert.True(t, rounded.Equal(dec("200")))
	assert.True(t, residual.IsZero())
	// Nunca "-0": la representación canónica del residuo cero es "0".
	assert.Equal(t, "0", residual.String())

	_, residual = voucher.RoundOff(dec("-300"))
	assert.Equal(t, "0", residual.String())
}

// |residual| < 1 y rounded es entero para cualquier subtotal.
func TestRoundOff_CotaDelResiduo(t *testing.T) {
	one := decimal.NewFromInt(1)
	for _, s := range []string{"0", "0.001", "123.456", "-987.654", "55555.5", "-0.5", "999999.999999"} {
		rounded, residual := voucher.RoundOff(dec(s))
		assert.True(t, residual.Abs().LessThan(one), "|residual(%s)| = %s debe ser < 1", s, residual.Abs())
		assert.True(t, rounded.Equal(rounded.Truncate(0)), "rounded(%s) = %s debe ser entero", s, rounded)
	}
}
