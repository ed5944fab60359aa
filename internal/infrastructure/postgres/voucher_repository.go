package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/libros-pyme/internal/domain/entity"
	"github.com/tu-usuario/libros-pyme/internal/domain/repository"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

var _ repository.VoucherRepository = (*VoucherRepo)(nil)

// VoucherRepo implementación de VoucherRepository (usable con pool o tx).
type VoucherRepo struct {
	q Querier
}

// NewVoucherRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVoucherRepository(q Querier) *VoucherRepo {
	return &VoucherRepo{q: q}
}

// Create persiste la cabecera del comprobante.
func (r *VoucherRepo) Create(v *entity.Voucher) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	query := `
		INSERT INTO vouchers (id, company_id, kind, number, date, party_ledger_id, counter_ledger_id,
		                      additional_charge, paid_amount, due_date, payment_mode,
		                      net_total, tax_total, tax_applied, round_off, grand_total,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.CompanyID, v.Kind.String(), v.Number, v.Date,
		v.PartyLedgerID, v.CounterLedgerID,
		v.AdditionalCharge, v.PaidAmount, v.DueDate, nullIfEmpty(v.PaymentMode),
		v.Net, v.TaxTotal, v.TaxApplied, v.RoundOff, v.GrandTotal,
		v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("voucher number already exists: %w", err)
		}
		return fmt.Errorf("insert voucher: %w", err)
	}
	return nil
}

// CreateLine persiste una línea del comprobante.
func (r *VoucherRepo) CreateLine(line *entity.VoucherLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO voucher_lines (id, voucher_id, item_id, quantity, rate, discount, tax_rate, tax_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.VoucherID, line.ItemID, line.Quantity, line.Rate,
		line.Discount, line.TaxRate, line.TaxAmount, line.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert voucher line: %w", err)
	}
	return nil
}

// CreatePosting persiste una pierna de la partida doble.
func (r *VoucherRepo) CreatePosting(p *entity.VoucherPosting) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO voucher_postings (id, voucher_id, ledger_id, amount, position)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.VoucherID, p.LedgerID, p.Amount, p.Position,
	)
	if err != nil {
		return fmt.Errorf("insert voucher posting: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un comprobante por ID.
func (r *VoucherRepo) GetByID(id string) (*entity.Voucher, error) {
	query := `
		SELECT id, company_id, kind, number, date, party_ledger_id, counter_ledger_id,
		       additional_charge, paid_amount, due_date, COALESCE(payment_mode, ''),
		       net_total, tax_total, tax_applied, round_off, grand_total,
		       created_at, updated_at
		FROM vouchers WHERE id = $1`
	v, err := scanVoucher(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher: %w", err)
	}
	return v, nil
}

// GetLinesByVoucherID obtiene todas las líneas de un comprobante.
func (r *VoucherRepo) GetLinesByVoucherID(voucherID string) ([]*entity.VoucherLine, error) {
	query := `
		SELECT id, voucher_id, item_id, quantity, rate, discount, tax_rate, tax_amount, line_total
		FROM voucher_lines WHERE voucher_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, voucherID)
	if err != nil {
		return nil, fmt.Errorf("query voucher lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.VoucherLine
	for rows.Next() {
		var l entity.VoucherLine
		if err := rows.Scan(
			&l.ID, &l.VoucherID, &l.ItemID, &l.Quantity, &l.Rate,
			&l.Discount, &l.TaxRate, &l.TaxAmount, &l.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("scan voucher line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// GetPostingsByVoucherID obtiene las dos piernas de un comprobante en orden.
func (r *VoucherRepo) GetPostingsByVoucherID(voucherID string) ([]*entity.VoucherPosting, error) {
	query := `
		SELECT id, voucher_id, ledger_id, amount, position
		FROM voucher_postings WHERE voucher_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, voucherID)
	if err != nil {
		return nil, fmt.Errorf("query voucher postings: %w", err)
	}
	defer rows.Close()

	var postings []*entity.VoucherPosting
	for rows.Next() {
		var p entity.VoucherPosting
		if err := rows.Scan(&p.ID, &p.VoucherID, &p.LedgerID, &p.Amount, &p.Position); err != nil {
			return nil, fmt.Errorf("scan voucher posting: %w", err)
		}
		postings = append(postings, &p)
	}
	return postings, rows.Err()
}

// ListByCompany lista cabeceras de comprobantes de una empresa, más recientes primero.
func (r *VoucherRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Voucher, error) {
	query := `
		SELECT id, company_id, kind, number, date, party_ledger_id, counter_ledger_id,
		       additional_charge, paid_amount, due_date, COALESCE(payment_mode, ''),
		       net_total, tax_total, tax_applied, round_off, grand_total,
		       created_at, updated_at
		FROM vouchers WHERE company_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []*entity.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("scan voucher: %w", err)
		}
		vouchers = append(vouchers, v)
	}
	return vouchers, rows.Err()
}

// scanVoucher mapea una fila de vouchers; el kind se almacena como texto.
func scanVoucher(row pgx.Row) (*entity.Voucher, error) {
	var v entity.Voucher
	var kind string
	err := row.Scan(
		&v.ID, &v.CompanyID, &kind, &v.Number, &v.Date,
		&v.PartyLedgerID, &v.CounterLedgerID,
		&v.AdditionalCharge, &v.PaidAmount, &v.DueDate, &v.PaymentMode,
		&v.Net, &v.TaxTotal, &v.TaxApplied, &v.RoundOff, &v.GrandTotal,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	k, err := voucher.ParseTransactionKind(kind)
	if err != nil {
		return nil, fmt.Errorf("stored kind: %w", err)
	}
	v.Kind = k
	return &v, nil
}
