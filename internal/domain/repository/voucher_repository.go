package repository

import "github.com/tu-usuario/libros-pyme/internal/domain/entity"

// VoucherRepository define el puerto de persistencia para comprobantes:
// cabecera, líneas y las dos piernas de la partida doble.
type VoucherRepository interface {
	Create(v *entity.Voucher) error
	CreateLine(line *entity.VoucherLine) error
	CreatePosting(posting *entity.VoucherPosting) error
	GetByID(id string) (*entity.Voucher, error)
	GetLinesByVoucherID(voucherID string) ([]*entity.VoucherLine, error)
	GetPostingsByVoucherID(voucherID string) ([]*entity.VoucherPosting, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Voucher, error)
}
