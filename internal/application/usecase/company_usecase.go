package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/libros-pyme/internal/application/dto"
	"github.com/tu-usuario/libros-pyme/internal/domain"
	"github.com/tu-usuario/libros-pyme/internal/domain/entity"
	"github.com/tu-usuario/libros-pyme/internal/domain/repository"
)

// CompanyUseCase casos de uso de empresas (tenant).
type CompanyUseCase struct {
	repo       repository.CompanyRepository
	ledgerRepo repository.LedgerRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository, ledgerRepo repository.LedgerRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, ledgerRepo: ledgerRepo}
}

// Create crea la empresa junto con sus libros de control de ventas y compras,
// que los comprobantes usan como contrapartida por defecto.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:         uuid.New().String(),
		Name:       in.Name,
		TaxID:      in.TaxID,
		Address:    in.Address,
		Phone:      in.Phone,
		Email:      in.Email,
		TaxEnabled: in.TaxEnabled,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	for name, kind := range map[string]string{
		"Ventas":  entity.LedgerKindSales,
		"Compras": entity.LedgerKindPurchase,
	} {
		ledger := &entity.Ledger{
			ID:        uuid.New().String(),
			CompanyID: company.ID,
			Name:      name,
			Kind:      kind,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.ledgerRepo.Create(ledger); err != nil {
			return nil, err
		}
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(limit, offset int) ([]*dto.CompanyResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompanyResponse(c))
	}
	return out, nil
}

// Update actualiza campos opcionales de la empresa.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:         c.ID,
		Name:       c.Name,
		TaxID:      c.TaxID,
		Address:    c.Address,
		Phone:      c.Phone,
		Email:      c.Email,
		TaxEnabled: c.TaxEnabled,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
