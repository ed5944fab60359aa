package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/libros-pyme/internal/application/billing"
	"github.com/tu-usuario/libros-pyme/internal/application/dto"
	"github.com/tu-usuario/libros-pyme/internal/domain"
	"github.com/tu-usuario/libros-pyme/internal/domain/entity"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

var _ billing.SubmissionPort = (*SubmissionAdapter)(nil)

const submissionDateLayout = "2006-01-02"

// SubmissionAdapter persiste el payload de envío en una sola transacción:
// cabecera, líneas y las dos piernas de la partida doble. O se guarda todo
// o no se guarda nada.
type SubmissionAdapter struct {
	runner *TxRunner
}

func NewSubmissionAdapter(runner *TxRunner) *SubmissionAdapter {
	return &SubmissionAdapter{runner: runner}
}

// Submit guarda el comprobante completo y devuelve su ID.
func (a *SubmissionAdapter) Submit(ctx context.Context, companyID string, payload *dto.SubmissionPayload) (string, error) {
	header, err := buildVoucherHeader(companyID, payload)
	if err != nil {
		return "", err
	}

	err = a.runner.RunInTx(ctx, func(q Querier) error {
		repo := NewVoucherRepository(q)
		if err := repo.Create(header); err != nil {
			return err
		}
		for _, it := range payload.Items {
			line := &entity.VoucherLine{
				ID:        uuid.New().String(),
				VoucherID: header.ID,
				ItemID:    it.ItemID,
				Quantity:  it.Quantity,
				Rate:      it.Rate,
				Discount:  it.Discount,
				TaxRate:   derefDecimal(it.TaxRate),
				TaxAmount: derefDecimal(it.TaxAmount),
				LineTotal: it.LineTotal,
			}
			if err := repo.CreateLine(line); err != nil {
				return err
			}
		}
		for i, p := range payload.Postings {
			posting := &entity.VoucherPosting{
				ID:        uuid.New().String(),
				VoucherID: header.ID,
				LedgerID:  p.LedgerID,
				Amount:    p.Amount,
				Position:  i,
			}
			if err := repo.CreatePosting(posting); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return header.ID, nil
}

func buildVoucherHeader(companyID string, payload *dto.SubmissionPayload) (*entity.Voucher, error) {
	kind, err := voucher.ParseTransactionKind(payload.Header.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	date, err := time.Parse(submissionDateLayout, payload.Header.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, payload.Header.Date)
	}
	var dueDate *time.Time
	if payload.Header.DueDate != "" {
		d, err := time.Parse(submissionDateLayout, payload.Header.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: vencimiento inválido %q", domain.ErrInvalidInput, payload.Header.DueDate)
		}
		dueDate = &d
	}

	now := time.Now().UTC()
	return &entity.Voucher{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		Kind:             kind,
		Number:           payload.Header.VoucherNumber,
		Date:             date,
		PartyLedgerID:    payload.Header.PartyID,
		CounterLedgerID:  payload.Header.CounterID,
		AdditionalCharge: payload.Header.AdditionalCharge,
		PaidAmount:       payload.Header.PaidAmount,
		DueDate:          dueDate,
		PaymentMode:      payload.Header.PaymentMode,
		Net:              payload.Totals.Net,
		TaxTotal:         derefDecimal(payload.Totals.Tax),
		TaxApplied:       payload.Totals.Tax != nil,
		RoundOff:         payload.Totals.RoundOff,
		GrandTotal:       payload.Totals.GrandTotal,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func derefDecimal(p *decimal.Decimal) decimal.Decimal {
	if p != nil {
		return *p
	}
	return decimal.Zero
}
