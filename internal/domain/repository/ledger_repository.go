package repository

import "github.com/tu-usuario/libros-pyme/internal/domain/entity"

// LedgerRepository define el puerto de persistencia para libros mayores.
type LedgerRepository interface {
	Create(ledger *entity.Ledger) error
	GetByID(id string) (*entity.Ledger, error)
	GetByCompanyAndKind(companyID, kind string) (*entity.Ledger, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Ledger, error)
	Update(ledger *entity.Ledger) error
	Delete(id string) error
}
