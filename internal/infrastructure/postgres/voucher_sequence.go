package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/libros-pyme/internal/application/billing"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

var _ billing.VoucherNumberService = (*VoucherSequence)(nil)

// VoucherSequence implementa el servicio de numeración con un contador por
// empresa y tipo de comprobante. El upsert atómico garantiza números únicos
// y consecutivos aunque haya envíos concurrentes; el número resultante es
// opaco para el motor de borradores.
type VoucherSequence struct {
	pool *pgxpool.Pool
}

func NewVoucherSequence(pool *pgxpool.Pool) *VoucherSequence {
	return &VoucherSequence{pool: pool}
}

// NextNumber reserva y devuelve el siguiente número para la empresa y tipo.
func (s *VoucherSequence) NextNumber(ctx context.Context, companyID string, kind voucher.TransactionKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("next number: unknown kind %d", kind)
	}
	query := `
		INSERT INTO voucher_sequences (company_id, kind, last_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, kind)
		DO UPDATE SET last_number = voucher_sequences.last_number + 1
		RETURNING last_number`
	var n int64
	if err := s.pool.QueryRow(ctx, query, companyID, kind.String()).Scan(&n); err != nil {
		return "", fmt.Errorf("next voucher number: %w", err)
	}
	return fmt.Sprintf("%s-%06d", sequencePrefix(kind), n), nil
}

func sequencePrefix(kind voucher.TransactionKind) string {
	if kind == voucher.KindIncoming {
		return "PUR"
	}
	return "INV"
}
