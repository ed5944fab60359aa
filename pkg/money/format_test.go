package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"github.com/tu-usuario/libros-pyme/pkg/money"
)

func TestFormat_DosDecimalesYAgrupacion(t *testing.T) {
	f := money.NewFormatter(language.AmericanEnglish)

	cases := map[string]string{
		"200":        "200.00",
		"1234567.5":  "1,234,567.50",
		"-987.654":   "-987.65",
		"0":          "0.00",
	}
	for in, want := range cases {
		d, err := decimal.NewFromString(in)
		assert.NoError(t, err)
		assert.Equal(t, want, f.Format(d), "formato de %s", in)
	}
}

// El formateo nunca altera el valor almacenado: es una función de solo lectura.
func TestFormat_NoMutaElValor(t *testing.T) {
	f := money.Default()
	d, _ := decimal.NewFromString("147.555")
	_ = f.Format(d)
	assert.Equal(t, "147.555", d.String(), "el decimal de entrada queda intacto")
}
