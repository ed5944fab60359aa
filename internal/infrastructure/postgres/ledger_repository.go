package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/libros-pyme/internal/domain/entity"
	"github.com/tu-usuario/libros-pyme/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

func (r *LedgerRepo) Create(ledger *entity.Ledger) error {
	if ledger.ID == "" {
		ledger.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ledgers (id, company_id, name, kind, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		ledger.ID, ledger.CompanyID, ledger.Name, ledger.Kind,
		ledger.CreatedAt, ledger.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("ledger already exists: %w", err)
		}
		return fmt.Errorf("insert ledger: %w", err)
	}
	return nil
}

func (r *LedgerRepo) GetByID(id string) (*entity.Ledger, error) {
	query := `
		SELECT id, company_id, name, kind, created_at, updated_at
		FROM ledgers WHERE id = $1`
	var l entity.Ledger
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.CompanyID, &l.Name, &l.Kind, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger: %w", err)
	}
	return &l, nil
}

// GetByCompanyAndKind devuelve el libro de control de un tipo dado (sales,
// purchase). Si la empresa tiene varios del mismo tipo devuelve el más antiguo.
func (r *LedgerRepo) GetByCompanyAndKind(companyID, kind string) (*entity.Ledger, error) {
	query := `
		SELECT id, company_id, name, kind, created_at, updated_at
		FROM ledgers WHERE company_id = $1 AND kind = $2
		ORDER BY created_at ASC LIMIT 1`
	var l entity.Ledger
	err := r.q.QueryRow(context.Background(), query, companyID, kind).Scan(
		&l.ID, &l.CompanyID, &l.Name, &l.Kind, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger by kind: %w", err)
	}
	return &l, nil
}

func (r *LedgerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Ledger, error) {
	query := `
		SELECT id, company_id, name, kind, created_at, updated_at
		FROM ledgers WHERE company_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []*entity.Ledger
	for rows.Next() {
		var l entity.Ledger
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.Name, &l.Kind, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger: %w", err)
		}
		ledgers = append(ledgers, &l)
	}
	return ledgers, rows.Err()
}

func (r *LedgerRepo) Update(ledger *entity.Ledger) error {
	query := `
		UPDATE ledgers
		SET name = $2, kind = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ledger.ID, ledger.Name, ledger.Kind, ledger.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ledger: %w", err)
	}
	return nil
}

func (r *LedgerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ledgers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ledger: %w", err)
	}
	return nil
}
