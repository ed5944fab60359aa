package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o servicio facturable.
// TaxRate es el porcentaje de impuesto del ítem (ej. 18); solo se aplica si la
// empresa tiene la funcionalidad de impuestos activa.
type Product struct {
	ID           string
	CompanyID    string
	CategoryID   string // vacío si no está categorizado
	SKU          string // código único por empresa
	Name         string
	Description  string
	Rate         decimal.Decimal // precio unitario de venta
	PurchaseRate decimal.Decimal // precio unitario de compra
	TaxRate      decimal.Decimal // porcentaje de impuesto del ítem
	Unit         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
