package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/libros-pyme/internal/application/dto"
	"github.com/tu-usuario/libros-pyme/internal/domain"
	"github.com/tu-usuario/libros-pyme/internal/domain/entity"
	"github.com/tu-usuario/libros-pyme/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes/proveedores (facturación).
type CustomerUseCase struct {
	repo       repository.CustomerRepository
	ledgerRepo repository.LedgerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, ledgerRepo repository.LedgerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, ledgerRepo: ledgerRepo}
}

// Create crea un cliente. Si no llega LedgerID, crea también su libro de la
// parte (cuenta por cobrar) con el mismo nombre.
func (uc *CustomerUseCase) Create(companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndTaxID(companyID, in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()

	ledgerID := in.LedgerID
	if ledgerID == "" {
		ledger := &entity.Ledger{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			Name:      in.Name,
			Kind:      entity.LedgerKindCustomer,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.ledgerRepo.Create(ledger); err != nil {
			return nil, err
		}
		ledgerID = ledger.ID
	} else {
		ledger, err := uc.ledgerRepo.GetByID(ledgerID)
		if err != nil || ledger == nil {
			return nil, domain.ErrNotFound
		}
		if ledger.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
	}

	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		LedgerID:  ledgerID,
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente de la empresa.
func (uc *CustomerUseCase) GetByID(companyID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes de la empresa.
func (uc *CustomerUseCase) List(companyID string, limit, offset int) ([]*dto.CustomerResponse, error) {
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
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		LedgerID:  c.LedgerID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
