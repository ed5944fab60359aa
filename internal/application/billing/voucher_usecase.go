package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/libros-pyme/internal/application/dto"
	"github.com/tu-usuario/libros-pyme/internal/domain"
	"github.com/tu-usuario/libros-pyme/internal/domain/entity"
	"github.com/tu-usuario/libros-pyme/internal/domain/repository"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
	"github.com/tu-usuario/libros-pyme/pkg/money"
)

const dateLayout = "2006-01-02"

// VoucherUseCase arma borradores de comprobante desde el request HTTP, expone
// la recomputación de totales (preview, sin efectos) y orquesta el envío a
// través del DraftController.
type VoucherUseCase struct {
	companyRepo repository.CompanyRepository
	ledgerRepo  repository.LedgerRepository
	productRepo repository.ProductRepository
	voucherRepo repository.VoucherRepository
	numbers     VoucherNumberService
	submission  SubmissionPort
	format      *money.Formatter
}

// NewVoucherUseCase construye el caso de uso.
func NewVoucherUseCase(
	companyRepo repository.CompanyRepository,
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	voucherRepo repository.VoucherRepository,
	numbers VoucherNumberService,
	submission SubmissionPort,
	format *money.Formatter,
) *VoucherUseCase {
	return &VoucherUseCase{
		companyRepo: companyRepo,
		ledgerRepo:  ledgerRepo,
		productRepo: productRepo,
		voucherRepo: voucherRepo,
		numbers:     numbers,
		submission:  submission,
		format:      format,
	}
}

// Preview recalcula los totales del borrador sin efectos: ni persistencia ni
// numeración (el número de comprobante solo se consume en la apertura real).
// Seguro de llamar en cada edición del operador.
func (uc *VoucherUseCase) Preview(ctx context.Context, companyID string, in dto.VoucherDraftRequest) (*dto.TotalsResponse, error) {
	draft, err := uc.buildDraft(ctx, companyID, in, "")
	if err != nil {
		return nil, err
	}
	resp := uc.totalsResponse(draft.Totals(), draft.TaxEnabled)
	return &resp, nil
}

// Submit abre el borrador (número de comprobante + bandera de impuestos),
// aplica las líneas, valida y envía una sola vez vía el DraftController.
func (uc *VoucherUseCase) Submit(ctx context.Context, companyID string, in dto.VoucherDraftRequest) (*dto.VoucherResponse, error) {
	kind, err := voucher.ParseTransactionKind(in.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	number, err := uc.numbers.NextNumber(ctx, companyID, kind)
	if err != nil {
		return nil, fmt.Errorf("obtener número de comprobante: %w", err)
	}
	draft, err := uc.buildDraft(ctx, companyID, in, number)
	if err != nil {
		return nil, err
	}

	ctrl := NewDraftController(companyID, draft, uc.submission)
	voucherID, payload, err := ctrl.Submit(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(voucherID, companyID, payload, draft.TaxEnabled), nil
}

// GetVoucher obtiene un comprobante persistido con líneas y partidas.
func (uc *VoucherUseCase) GetVoucher(ctx context.Context, companyID, id string) (*dto.VoucherResponse, error) {
	v, err := uc.voucherRepo.GetByID(id)
	if err != nil || v == nil {
		return nil, domain.ErrNotFound
	}
	if v.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	lines, err := uc.voucherRepo.GetLinesByVoucherID(id)
	if err != nil {
		return nil, err
	}
	postings, err := uc.voucherRepo.GetPostingsByVoucherID(id)
	if err != nil {
		return nil, err
	}
	return uc.storedResponse(v, lines, postings), nil
}

// ListVouchers lista comprobantes de la empresa con paginación.
func (uc *VoucherUseCase) ListVouchers(ctx context.Context, companyID string, limit, offset int) ([]*dto.VoucherListItem, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.voucherRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VoucherListItem, 0, len(list))
	for _, v := range list {
		out = append(out, &dto.VoucherListItem{
			ID:         v.ID,
			Kind:       v.Kind.String(),
			Number:     v.Number,
			Date:       v.Date.Format(dateLayout),
			PartyID:    v.PartyLedgerID,
			GrandTotal: v.GrandTotal,
		})
	}
	return out, nil
}

// buildDraft convierte el request en un Draft inmutable: parsea kind y fechas,
// resuelve libros y productos, y deriva cada línea. La bandera de impuestos de
// la empresa se lee aquí, una sola vez por borrador.
func (uc *VoucherUseCase) buildDraft(ctx context.Context, companyID string, in dto.VoucherDraftRequest, number string) (Draft, error) {
	kind, err := voucher.ParseTransactionKind(in.Kind)
	if err != nil {
		return Draft{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return Draft{}, domain.ErrNotFound
	}

	draft := NewDraft(kind, number, company.TaxEnabled).
		WithAdditionalCharge(in.AdditionalCharge).
		WithPaidAmount(in.PaidAmount).
		WithPaymentMode(in.PaymentMode)

	if in.Date != "" {
		date, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return Draft{}, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Date)
		}
		draft = draft.WithDate(date)
	}
	if in.DueDate != "" {
		due, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return Draft{}, fmt.Errorf("%w: vencimiento %q", domain.ErrInvalidInput, in.DueDate)
		}
		draft = draft.WithDueDate(&due)
	}

	// Libro de la parte: debe existir y pertenecer a la empresa. Que esté sin
	// seleccionar no es error aquí: lo reporta la validación del controlador.
	if in.PartyLedgerID != "" {
		party, err := uc.ledgerRepo.GetByID(in.PartyLedgerID)
		if err != nil || party == nil {
			return Draft{}, domain.ErrNotFound
		}
		if party.CompanyID != companyID {
			return Draft{}, domain.ErrForbidden
		}
		draft = draft.WithParty(party.ID)
	}

	counterID, err := uc.resolveCounter(companyID, kind, in.CounterLedgerID)
	if err != nil {
		return Draft{}, err
	}
	draft = draft.WithCounter(counterID)

	for i, item := range in.Items {
		if item.ItemID == "" {
			return Draft{}, fmt.Errorf("%w: línea %d sin producto", domain.ErrInvalidInput, i+1)
		}
		product, err := uc.productRepo.GetByID(item.ItemID)
		if err != nil || product == nil {
			return Draft{}, domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return Draft{}, domain.ErrForbidden
		}

		rate := item.Rate
		if rate.IsZero() {
			if kind == voucher.KindIncoming {
				rate = product.PurchaseRate
			} else {
				rate = product.Rate
			}
		}
		// Sin la funcionalidad de impuestos las líneas van sin impuesto; con
		// ella, el porcentaje del producto salvo override explícito.
		taxRate := decimal.Zero
		if company.TaxEnabled {
			taxRate = product.TaxRate
			if item.TaxRate != nil {
				taxRate = *item.TaxRate
			}
		}

		line, err := voucher.NewLineItem(item.ItemID, item.Quantity, rate, item.Discount, taxRate)
		if err != nil {
			return Draft{}, fmt.Errorf("%w: línea %d: %v", domain.ErrInvalidInput, i+1, err)
		}
		draft = draft.WithItemAppended(line)
	}
	return draft, nil
}

// resolveCounter devuelve el libro de contrapartida: el indicado en el request
// o el libro de control de ventas/compras de la empresa según el kind.
func (uc *VoucherUseCase) resolveCounter(companyID string, kind voucher.TransactionKind, counterID string) (string, error) {
	if counterID != "" {
		counter, err := uc.ledgerRepo.GetByID(counterID)
		if err != nil || counter == nil {
			return "", domain.ErrNotFound
		}
		if counter.CompanyID != companyID {
			return "", domain.ErrForbidden
		}
		return counter.ID, nil
	}
	ledgerKind := entity.LedgerKindSales
	if kind == voucher.KindIncoming {
		ledgerKind = entity.LedgerKindPurchase
	}
	counter, err := uc.ledgerRepo.GetByCompanyAndKind(companyID, ledgerKind)
	if err != nil || counter == nil {
		return "", fmt.Errorf("%w: libro de control %q no configurado", domain.ErrNotFound, ledgerKind)
	}
	return counter.ID, nil
}

func (uc *VoucherUseCase) totalsResponse(snap voucher.TotalsSnapshot, taxEnabled bool) dto.TotalsResponse {
	resp := dto.TotalsResponse{
		Gross:            snap.Gross,
		DiscountTotal:    snap.DiscountTotal,
		Net:              snap.Net,
		AdditionalCharge: snap.AdditionalCharge,
		RoundOff:         snap.RoundOff,
		GrandTotal:       snap.GrandTotal,
		Display: dto.TotalsDisplay{
			Net:        uc.format.Format(snap.Net),
			RoundOff:   uc.format.Format(snap.RoundOff),
			GrandTotal: uc.format.Format(snap.GrandTotal),
		},
	}
	if taxEnabled {
		tax := snap.TaxTotal
		resp.TaxTotal = &tax
		resp.Display.TaxTotal = uc.format.Format(snap.TaxTotal)
	}
	return resp
}

func (uc *VoucherUseCase) toResponse(voucherID, companyID string, payload *dto.SubmissionPayload, taxEnabled bool) *dto.VoucherResponse {
	resp := &dto.VoucherResponse{
		ID:          voucherID,
		CompanyID:   companyID,
		Kind:        payload.Header.Kind,
		Number:      payload.Header.VoucherNumber,
		Date:        payload.Header.Date,
		PartyID:     payload.Header.PartyID,
		CounterID:   payload.Header.CounterID,
		PaidAmount:  payload.Header.PaidAmount,
		DueDate:     payload.Header.DueDate,
		PaymentMode: payload.Header.PaymentMode,
		Items:       payload.Items,
		Postings:    payload.Postings[:],
	}

	// Reconstrucción de los agregados visibles desde las líneas del payload.
	var gross, discount, taxTotal decimal.Decimal
	for _, it := range payload.Items {
		gross = gross.Add(it.Quantity.Mul(it.Rate))
		discount = discount.Add(it.Discount)
		if it.TaxAmount != nil {
			taxTotal = taxTotal.Add(*it.TaxAmount)
		}
	}
	snap := voucher.TotalsSnapshot{
		Gross:            gross,
		DiscountTotal:    discount,
		Net:              payload.Totals.Net,
		TaxTotal:         taxTotal,
		AdditionalCharge: payload.Header.AdditionalCharge,
		RoundOff:         payload.Totals.RoundOff,
		GrandTotal:       payload.Totals.GrandTotal,
	}
	resp.Totals = uc.totalsResponse(snap, taxEnabled)
	return resp
}

func (uc *VoucherUseCase) storedResponse(v *entity.Voucher, lines []*entity.VoucherLine, postings []*entity.VoucherPosting) *dto.VoucherResponse {
	resp := &dto.VoucherResponse{
		ID:          v.ID,
		CompanyID:   v.CompanyID,
		Kind:        v.Kind.String(),
		Number:      v.Number,
		Date:        v.Date.Format(dateLayout),
		PartyID:     v.PartyLedgerID,
		CounterID:   v.CounterLedgerID,
		PaidAmount:  v.PaidAmount,
		PaymentMode: v.PaymentMode,
	}
	if v.DueDate != nil {
		resp.DueDate = v.DueDate.Format(dateLayout)
	}

	var gross, discount decimal.Decimal
	for _, l := range lines {
		item := dto.SubmissionItem{
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			Rate:      l.Rate,
			Discount:  l.Discount,
			LineTotal: l.LineTotal,
		}
		if v.TaxApplied {
			taxRate, taxAmount := l.TaxRate, l.TaxAmount
			item.TaxRate = &taxRate
			item.TaxAmount = &taxAmount
		}
		resp.Items = append(resp.Items, item)
		gross = gross.Add(l.Quantity.Mul(l.Rate))
		discount = discount.Add(l.Discount)
	}
	for _, p := range postings {
		resp.Postings = append(resp.Postings, dto.SubmissionPosting{LedgerID: p.LedgerID, Amount: p.Amount})
	}

	snap := voucher.TotalsSnapshot{
		Gross:            gross,
		DiscountTotal:    discount,
		Net:              v.Net,
		TaxTotal:         v.TaxTotal,
		AdditionalCharge: v.AdditionalCharge,
		RoundOff:         v.RoundOff,
		GrandTotal:       v.GrandTotal,
	}
	resp.Totals = uc.totalsResponse(snap, v.TaxApplied)
	return resp
}
