package billing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tu-usuario/libros-pyme/internal/application/dto"
	"github.com/tu-usuario/libros-pyme/internal/domain"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

// DraftState estados del controlador de borrador.
type DraftState int

const (
	// StateEditing el borrador acepta mutaciones; los totales se recalculan en cada una.
	StateEditing DraftState = iota
	// StateSubmitting hay un envío en vuelo; mutaciones y reenvíos se rechazan.
	StateSubmitting
	// StateSubmitted estado terminal: el borrador se persistió y el controlador se descarta.
	StateSubmitted
)

// String nombre del estado para logs.
func (s DraftState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("DraftState(%d)", int(s))
	}
}

// Claves del conjunto de violaciones de validación.
const (
	ViolationDate  = "date"
	ViolationParty = "party_ledger"
	ViolationItems = "items"
)

// ValidationError es el conjunto completo campo→mensaje de un intento de envío
// inválido. Las tres reglas se evalúan siempre (sin cortocircuito) para que el
// operador vea todos los problemas de una vez. Es recuperable: el controlador
// permanece en edición con el borrador intacto.
type ValidationError struct {
	Violations map[string]string
}

// Error implementa error; lista los campos violados en orden estable.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f := range e.Violations {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validación del borrador: " + strings.Join(fields, ", ")
}

// SubmissionError envuelve un rechazo del colaborador de persistencia.
// Recuperable con reintento: el borrador queda intacto y los totales no se
// recalculan (los números ya eran correctos, solo falló la llamada externa).
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string { return "envío del comprobante: " + e.Err.Error() }
func (e *SubmissionError) Unwrap() error { return e.Err }

// DraftController es el orquestador del borrador: dueño del snapshot vigente,
// de la validación y del envío. Máquina de estados
// Editing → (Validating) → Submitting → Submitted, con retorno a Editing si la
// validación o el envío fallan. El guard de "envío en vuelo" hace que un
// segundo disparo de Submit (doble clic, evento duplicado) sea un no-op en
// lugar de una llamada duplicada al colaborador.
type DraftController struct {
	mu         sync.Mutex
	state      DraftState
	draft      Draft
	inFlight   bool
	closed     bool
	companyID  string
	submission SubmissionPort
}

// NewDraftController construye el controlador sobre un borrador abierto.
func NewDraftController(companyID string, draft Draft, submission SubmissionPort) *DraftController {
	return &DraftController{
		state:      StateEditing,
		draft:      draft,
		companyID:  companyID,
		submission: submission,
	}
}

// State estado actual.
func (c *DraftController) State() DraftState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Draft snapshot vigente del borrador.
func (c *DraftController) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Apply ejecuta una mutación sobre el snapshot vigente y devuelve el nuevo
// snapshot con sus totales recalculados. Solo válido en edición.
func (c *DraftController) Apply(mutate func(Draft) Draft) (Draft, voucher.TotalsSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state == StateSubmitted {
		return Draft{}, voucher.TotalsSnapshot{}, domain.ErrDraftClosed
	}
	if c.state != StateEditing {
		return Draft{}, voucher.TotalsSnapshot{}, domain.ErrConflict
	}
	c.draft = mutate(c.draft)
	return c.draft, c.draft.Totals(), nil
}

// Validate evalúa las tres reglas del borrador y devuelve el conjunto completo
// de violaciones, o nil si el borrador es enviable.
func (c *DraftController) Validate() *ValidationError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return validateDraft(c.draft)
}

func validateDraft(d Draft) *ValidationError {
	violations := make(map[string]string)
	if d.Date.IsZero() {
		violations[ViolationDate] = "seleccione una fecha"
	}
	if d.PartyLedgerID == "" {
		violations[ViolationParty] = "seleccione un cliente o proveedor"
	}
	if d.ItemCount() == 0 {
		violations[ViolationItems] = "agregue al menos una línea"
	}
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

// Submit valida el borrador, arma el payload (totales + partida doble) y lo
// entrega al colaborador de persistencia exactamente una vez.
//
//   - Violaciones de validación: retorna *ValidationError, estado sigue Editing.
//   - Envío ya en vuelo: no-op, retorna domain.ErrSubmitInFlight.
//   - Rechazo del colaborador: retorna *SubmissionError, vuelve a Editing con
//     el borrador intacto.
//   - Éxito: estado terminal Submitted.
func (c *DraftController) Submit(ctx context.Context) (string, *dto.SubmissionPayload, error) {
	c.mu.Lock()
	if c.closed || c.state == StateSubmitted {
		c.mu.Unlock()
		return "", nil, domain.ErrDraftClosed
	}
	if c.inFlight {
		c.mu.Unlock()
		return "", nil, domain.ErrSubmitInFlight
	}
	// Validating: las tres reglas corren siempre; si algo falla se vuelve a Editing.
	if verr := validateDraft(c.draft); verr != nil {
		c.mu.Unlock()
		return "", nil, verr
	}
	payload, err := BuildPayload(c.draft)
	if err != nil {
		// Precondición violada (ej. contrapartida vacía): error duro, sin partida emitida.
		c.mu.Unlock()
		return "", nil, err
	}
	c.state = StateSubmitting
	c.inFlight = true
	draft := c.draft
	c.mu.Unlock()

	voucherID, submitErr := c.submission.Submit(ctx, c.companyID, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
	if c.closed {
		// El operador navegó fuera durante el envío: el resultado se descarta
		// sin mutar estado; el controlador ya no está vivo.
		return "", nil, domain.ErrDraftClosed
	}
	if submitErr != nil {
		c.state = StateEditing
		c.draft = draft
		return "", nil, &SubmissionError{Err: submitErr}
	}
	c.state = StateSubmitted
	return voucherID, payload, nil
}

// Close marca el controlador como muerto (navegación fuera). Un envío en vuelo
// puede completar, pero su resultado se descarta.
func (c *DraftController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// BuildPayload congela el borrador en el payload de envío: cabecera, líneas,
// totales y las dos partidas balanceadas. Determinista: dos llamadas sobre el
// mismo borrador producen payloads idénticos. Los campos de impuesto se omiten
// por completo cuando la empresa no tiene la funcionalidad activa (ausencia,
// no cero, significa "no aplica").
func BuildPayload(d Draft) (*dto.SubmissionPayload, error) {
	totals := d.Totals()
	postings, err := voucher.AssemblePostings(totals.GrandTotal, d.Kind, d.PartyLedgerID, d.CounterLedgerID)
	if err != nil {
		return nil, err
	}

	header := dto.SubmissionHeader{
		Date:             d.Date.Format("2006-01-02"),
		VoucherNumber:    d.VoucherNumber,
		Kind:             d.Kind.String(),
		PartyID:          d.PartyLedgerID,
		CounterID:        d.CounterLedgerID,
		AdditionalCharge: d.AdditionalCharge,
		PaidAmount:       d.PaidAmount,
		PaymentMode:      d.PaymentMode,
	}
	if d.DueDate != nil {
		header.DueDate = d.DueDate.Format("2006-01-02")
	}

	payloadTotals := dto.SubmissionTotals{
		Net:        totals.Net,
		RoundOff:   totals.RoundOff,
		GrandTotal: totals.GrandTotal,
	}
	if d.TaxEnabled {
		tax := totals.TaxTotal
		payloadTotals.Tax = &tax
	}

	items := make([]dto.SubmissionItem, 0, d.ItemCount())
	for _, it := range d.Items() {
		item := dto.SubmissionItem{
			ItemID:    it.ItemID,
			Quantity:  it.Quantity,
			Rate:      it.Rate,
			Discount:  it.Discount,
			LineTotal: it.LineTotal,
		}
		if d.TaxEnabled {
			taxRate, taxAmount := it.TaxRate, it.TaxAmount
			item.TaxRate = &taxRate
			item.TaxAmount = &taxAmount
		}
		items = append(items, item)
	}

	return &dto.SubmissionPayload{
		Header: header,
		Totals: payloadTotals,
		Items:  items,
		Postings: [2]dto.SubmissionPosting{
			{LedgerID: postings[0].LedgerID, Amount: postings[0].Amount},
			{LedgerID: postings[1].LedgerID, Amount: postings[1].Amount},
		},
	}, nil
}
