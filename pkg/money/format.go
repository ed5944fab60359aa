// Package money formatea importes para presentación: agrupación según locale
// y exactamente dos decimales. Es una preocupación puramente visual; los
// valores almacenados y transmitidos siempre van a precisión completa y ningún
// invariante se compara contra el string formateado.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea decimales según un locale fijo.
type Formatter struct {
	p *message.Printer
}

// NewFormatter construye el formateador para el tag de locale dado.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// Default formateador con el locale español por defecto de la aplicación.
func Default() *Formatter {
	return NewFormatter(language.Spanish)
}

// Format representa el importe con separadores de miles del locale y dos
// decimales fijos. El paso por float64 es aceptable aquí porque el resultado
// es solo para pantalla.
func (f *Formatter) Format(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return f.p.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
