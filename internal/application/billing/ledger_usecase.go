package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/libros-pyme/internal/application/dto"
	"github.com/tu-usuario/libros-pyme/internal/domain"
	"github.com/tu-usuario/libros-pyme/internal/domain/entity"
	"github.com/tu-usuario/libros-pyme/internal/domain/repository"
)

// LedgerUseCase casos de uso para libros mayores.
type LedgerUseCase struct {
	repo repository.LedgerRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(repo repository.LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{repo: repo}
}

func validLedgerKind(kind string) bool {
	switch kind {
	case entity.LedgerKindCustomer, entity.LedgerKindSupplier,
		entity.LedgerKindSales, entity.LedgerKindPurchase, entity.LedgerKindOther:
		return true
	}
	return false
}

// Create crea un libro mayor.
func (uc *LedgerUseCase) Create(companyID string, in dto.CreateLedgerRequest) (*dto.LedgerResponse, error) {
	if in.Name == "" || !validLedgerKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ledger := &entity.Ledger{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Kind:      in.Kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ledger); err != nil {
		return nil, err
	}
	return toLedgerResponse(ledger), nil
}

// GetByID obtiene un libro mayor de la empresa.
func (uc *LedgerUseCase) GetByID(companyID, id string) (*dto.LedgerResponse, error) {
	ledger, err := uc.repo.GetByID(id)
	if err != nil || ledger == nil {
		return nil, domain.ErrNotFound
	}
	if ledger.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toLedgerResponse(ledger), nil
}

// List lista libros mayores de la empresa.
func (uc *LedgerUseCase) List(companyID string, limit, offset int) ([]*dto.LedgerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LedgerResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLedgerResponse(l))
	}
	return out, nil
}

func toLedgerResponse(l *entity.Ledger) *dto.LedgerResponse {
	return &dto.LedgerResponse{
		ID:        l.ID,
		CompanyID: l.CompanyID,
		Name:      l.Name,
		Kind:      l.Kind,
	}
}
