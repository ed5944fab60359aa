package entity

import "time"

// Company representa una organización/tenant del sistema.
// TaxEnabled es la bandera de la funcionalidad de impuestos: se lee una sola
// vez al abrir cada borrador; cambiarla a mitad de un borrador no es una
// transición soportada (el borrador se reabre).
type Company struct {
	ID         string
	Name       string
	TaxID      string // identificación fiscal de la empresa
	Address    string
	Phone      string
	Email      string
	TaxEnabled bool   // impuestos aplican a los comprobantes de esta empresa
	Status     string // active, suspended, inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
