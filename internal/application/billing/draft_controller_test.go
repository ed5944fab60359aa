package billing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/libros-pyme/internal/application/dto"
	"github.com/tu-usuario/libros-pyme/internal/domain"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

// fakeSubmission implementa SubmissionPort para tests. Si block no es nil, el
// envío espera hasta que el canal se cierre (simula la llamada de red en vuelo).
type fakeSubmission struct {
	mu      sync.Mutex
	calls   int
	err     error
	block   chan struct{}
	payload *dto.SubmissionPayload
}

func (f *fakeSubmission) Submit(ctx context.Context, companyID string, payload *dto.SubmissionPayload) (string, error) {
	f.mu.Lock()
	f.calls++
	f.payload = payload
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return "", f.err
	}
	return "voucher-1", nil
}

func (f *fakeSubmission) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func submittableDraft(t *testing.T) Draft {
	t.Helper()
	return NewDraft(voucher.KindOutgoing, "V-001", false).
		WithDate(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)).
		WithParty("cliente-1").
		WithCounter("ventas").
		WithItemAppended(line(t, "2", "100", "0", "0"))
}

// Envío sin fecha, sin parte y sin líneas: las tres reglas corren siempre y el
// conjunto reporta exactamente las violadas; el controlador sigue en edición.
func TestDraftController_ValidacionCompleta(t *testing.T) {
	port := &fakeSubmission{}
	draft := NewDraft(voucher.KindOutgoing, "V-001", false).
		WithDate(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)) // solo la fecha está
	ctrl := NewDraftController("empresa-1", draft, port)

	_, _, err := ctrl.Submit(context.Background())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2, "exactamente dos violaciones: parte e ítems")
	assert.Contains(t, verr.Violations, ViolationParty)
	assert.Contains(t, verr.Violations, ViolationItems)
	assert.NotContains(t, verr.Violations, ViolationDate)

	assert.Equal(t, StateEditing, ctrl.State(), "la validación fallida regresa a edición")
	assert.Equal(t, 0, port.callCount(), "nada llega al colaborador de persistencia")
}

func TestDraftController_EnvioExitoso(t *testing.T) {
	port := &fakeSubmission{}
	ctrl := NewDraftController("empresa-1", submittableDraft(t), port)

	id, payload, err := ctrl.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "voucher-1", id)
	assert.Equal(t, StateSubmitted, ctrl.State())
	assert.Equal(t, 1, port.callCount())

	// Venta de 200: parte −200, contrapartida +200.
	assert.True(t, payload.Totals.GrandTotal.Equal(dec("200")))
	assert.Equal(t, "cliente-1", payload.Postings[0].LedgerID)
	assert.True(t, payload.Postings[0].Amount.Equal(dec("-200")))
	assert.True(t, payload.Postings[1].Amount.Equal(dec("200")))
	assert.Nil(t, payload.Totals.Tax, "impuestos desactivados: el campo se omite, no va en cero")
}

// Submitted es terminal: un nuevo envío o mutación se rechaza.
func TestDraftController_SubmittedEsTerminal(t *testing.T) {
	port := &fakeSubmission{}
	ctrl := NewDraftController("empresa-1", submittableDraft(t), port)

	_, _, err := ctrl.Submit(context.Background())
	require.NoError(t, err)

	_, _, err = ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrDraftClosed)

	_, _, err = ctrl.Apply(func(d Draft) Draft { return d.WithPaymentMode("cash") })
	assert.ErrorIs(t, err, domain.ErrDraftClosed)
	assert.Equal(t, 1, port.callCount())
}

// Doble disparo de Submit mientras hay un envío en vuelo: el segundo es no-op.
func TestDraftController_GuardEnvioEnVuelo(t *testing.T) {
	port := &fakeSubmission{block: make(chan struct{})}
	ctrl := NewDraftController("empresa-1", submittableDraft(t), port)

	done := make(chan error, 1)
	go func() {
		_, _, err := ctrl.Submit(context.Background())
		done <- err
	}()

	// Esperar a que el primer envío esté en vuelo.
	require.Eventually(t, func() bool { return port.callCount() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, StateSubmitting, ctrl.State())

	_, _, err := ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight, "el doble clic no genera llamada duplicada")

	close(port.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, port.callCount(), "el colaborador se invocó exactamente una vez")
	assert.Equal(t, StateSubmitted, ctrl.State())
}

// Rechazo del colaborador: vuelve a edición con el borrador intacto; reintentar funciona.
func TestDraftController_RechazoDePersistencia(t *testing.T) {
	port := &fakeSubmission{err: errors.New("api caída")}
	draft := submittableDraft(t)
	ctrl := NewDraftController("empresa-1", draft, port)

	_, _, err := ctrl.Submit(context.Background())

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StateEditing, ctrl.State())
	require.Equal(t, draft.Totals(), ctrl.Draft().Totals(), "el borrador no se toca tras el fallo")

	// Reintento tras recuperarse el colaborador.
	port.err = nil
	id, _, err := ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "voucher-1", id)
	assert.Equal(t, 2, port.callCount())
}

// Navegación fuera con envío en vuelo: el resultado llega pero se descarta.
func TestDraftController_CierreDuranteEnvio(t *testing.T) {
	port := &fakeSubmission{block: make(chan struct{})}
	ctrl := NewDraftController("empresa-1", submittableDraft(t), port)

	done := make(chan error, 1)
	go func() {
		_, _, err := ctrl.Submit(context.Background())
		done <- err
	}()
	require.Eventually(t, func() bool { return port.callCount() == 1 }, time.Second, time.Millisecond)

	ctrl.Close()
	close(port.block)

	assert.ErrorIs(t, <-done, domain.ErrDraftClosed, "el resultado del envío se descarta")
	assert.NotEqual(t, StateSubmitted, ctrl.State(), "ningún estado se aplica tras el cierre")
}

// La recomputación vía Apply devuelve totales del snapshot nuevo.
func TestDraftController_ApplyRecalcula(t *testing.T) {
	ctrl := NewDraftController("empresa-1", submittableDraft(t), &fakeSubmission{})

	_, totals, err := ctrl.Apply(func(d Draft) Draft {
		return d.WithItemAppended(line(t, "1", "99.4", "0", "0"))
	})
	require.NoError(t, err)
	assert.True(t, totals.PreRoundSubtotal.Equal(dec("299.4")))
	assert.True(t, totals.GrandTotal.Equal(dec("299")))
}

// Contrapartida vacía al armar el payload: violación de precondición, error
// duro sin llamada al colaborador.
func TestDraftController_ContrapartidaVacia(t *testing.T) {
	port := &fakeSubmission{}
	draft := submittableDraft(t).WithCounter("")
	ctrl := NewDraftController("empresa-1", draft, port)

	_, _, err := ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, voucher.ErrMissingLedgerRef)
	assert.Equal(t, 0, port.callCount())
}

// Compra con gran total 500: parte +500, contrapartida −500; con impuestos
// activos los campos de impuesto viajan en el payload.
func TestBuildPayload_CompraConImpuestos(t *testing.T) {
	draft := NewDraft(voucher.KindIncoming, "C-055", true).
		WithDate(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)).
		WithParty("proveedor-9").
		WithCounter("compras").
		WithItemAppended(line(t, "5", "100", "0", "0"))

	payload, err := BuildPayload(draft)
	require.NoError(t, err)

	assert.True(t, payload.Postings[0].Amount.Equal(dec("500")))
	assert.True(t, payload.Postings[1].Amount.Equal(dec("-500")))
	require.NotNil(t, payload.Totals.Tax)
	assert.True(t, payload.Totals.Tax.IsZero(), "impuestos aplican: cero explícito, no ausencia")
	require.Len(t, payload.Items, 1)
	assert.NotNil(t, payload.Items[0].TaxRate)
	assert.NotNil(t, payload.Items[0].TaxAmount)
}

// BuildPayload es determinista: el mismo borrador produce payloads idénticos.
func TestBuildPayload_Determinista(t *testing.T) {
	draft := submittableDraft(t)
	p1, err := BuildPayload(draft)
	require.NoError(t, err)
	p2, err := BuildPayload(draft)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}
