package dto

import "github.com/shopspring/decimal"

// VoucherDraftRequest body para POST /api/vouchers y /api/vouchers/preview.
// Kind viaja como string ("outgoing" | "incoming") y se parsea una sola vez
// en el borde; dentro del núcleo circula el enum.
type VoucherDraftRequest struct {
	Kind             string               `json:"kind"`
	Date             string               `json:"date"` // YYYY-MM-DD
	PartyLedgerID    string               `json:"party_ledger_id"`
	CounterLedgerID  string               `json:"counter_ledger_id,omitempty"` // vacío = libro de control según kind
	AdditionalCharge decimal.Decimal      `json:"additional_charge"`
	PaidAmount       decimal.Decimal      `json:"paid_amount"`
	DueDate          string               `json:"due_date,omitempty"`
	PaymentMode      string               `json:"payment_mode,omitempty"`
	Items            []VoucherItemRequest `json:"items"`
}

// VoucherItemRequest línea del borrador. Rate en cero usa el precio del
// producto; TaxRate nil usa el porcentaje del producto (si impuestos aplican).
type VoucherItemRequest struct {
	ItemID   string           `json:"item_id"`
	Quantity decimal.Decimal  `json:"quantity"`
	Rate     decimal.Decimal  `json:"rate"`
	Discount decimal.Decimal  `json:"discount"`
	TaxRate  *decimal.Decimal `json:"tax_rate,omitempty"`
}

// TotalsResponse snapshot de totales para el operador (preview y detalle).
// Los valores numéricos van a precisión completa; Display es solo presentación
// y jamás se usa como valor almacenado o comparado.
type TotalsResponse struct {
	Gross            decimal.Decimal  `json:"gross"`
	DiscountTotal    decimal.Decimal  `json:"discount_total"`
	Net              decimal.Decimal  `json:"net"`
	TaxTotal         *decimal.Decimal `json:"tax_total,omitempty"` // ausente = impuestos no aplicables
	AdditionalCharge decimal.Decimal  `json:"additional_charge"`
	RoundOff         decimal.Decimal  `json:"round_off"`
	GrandTotal       decimal.Decimal  `json:"grand_total"`
	Display          TotalsDisplay    `json:"display"`
}

// TotalsDisplay totales formateados con agrupación por locale y dos decimales.
type TotalsDisplay struct {
	Net        string `json:"net"`
	TaxTotal   string `json:"tax_total,omitempty"`
	RoundOff   string `json:"round_off"`
	GrandTotal string `json:"grand_total"`
}

// SubmissionPayload es el payload que se entrega al colaborador de
// persistencia en el envío: cabecera + ítems + totales + las dos partidas.
// Los campos de impuesto están presentes solo si la empresa tiene la
// funcionalidad activa; su ausencia (no un cero) significa "no aplica".
type SubmissionPayload struct {
	Header   SubmissionHeader     `json:"header"`
	Totals   SubmissionTotals     `json:"totals"`
	Items    []SubmissionItem     `json:"items"`
	Postings [2]SubmissionPosting `json:"postings"`
}

// SubmissionHeader cabecera del comprobante en el payload.
type SubmissionHeader struct {
	Date             string          `json:"date"`
	VoucherNumber    string          `json:"voucher_number"` // opaco, del servicio de numeración
	Kind             string          `json:"kind"`
	PartyID          string          `json:"party_id"`
	CounterID        string          `json:"counter_id"`
	AdditionalCharge decimal.Decimal `json:"additional_charge"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	DueDate          string          `json:"due_date,omitempty"`
	PaymentMode      string          `json:"payment_mode,omitempty"`
}

// SubmissionTotals totales del payload.
type SubmissionTotals struct {
	Net        decimal.Decimal  `json:"net"`
	Tax        *decimal.Decimal `json:"tax,omitempty"`
	RoundOff   decimal.Decimal  `json:"round_off"`
	GrandTotal decimal.Decimal  `json:"grand_total"`
}

// SubmissionItem línea del payload.
type SubmissionItem struct {
	ItemID    string           `json:"item_id"`
	Quantity  decimal.Decimal  `json:"quantity"`
	Rate      decimal.Decimal  `json:"rate"`
	Discount  decimal.Decimal  `json:"discount"`
	TaxRate   *decimal.Decimal `json:"tax_rate,omitempty"`
	TaxAmount *decimal.Decimal `json:"tax_amount,omitempty"`
	LineTotal decimal.Decimal  `json:"line_total"`
}

// SubmissionPosting una pierna de la partida doble en el payload.
type SubmissionPosting struct {
	LedgerID string          `json:"ledger_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// VoucherResponse comprobante persistido con líneas y partidas,
// para GET /api/vouchers/:id.
type VoucherResponse struct {
	ID          string               `json:"id"`
	CompanyID   string               `json:"company_id"`
	Kind        string               `json:"kind"`
	Number      string               `json:"number"`
	Date        string               `json:"date"`
	PartyID     string               `json:"party_id"`
	CounterID   string               `json:"counter_id"`
	PaidAmount  decimal.Decimal      `json:"paid_amount"`
	DueDate     string               `json:"due_date,omitempty"`
	PaymentMode string               `json:"payment_mode,omitempty"`
	Totals      TotalsResponse       `json:"totals"`
	Items       []SubmissionItem     `json:"items"`
	Postings    []SubmissionPosting  `json:"postings"`
}

// VoucherListItem fila ligera para listados de comprobantes.
type VoucherListItem struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Number     string          `json:"number"`
	Date       string          `json:"date"`
	PartyID    string          `json:"party_id"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}
