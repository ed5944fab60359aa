package billing

import (
	"context"

	"github.com/tu-usuario/libros-pyme/internal/application/dto"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

// SubmissionPort es el colaborador externo de persistencia: recibe el payload
// de envío (cabecera + ítems + totales + dos partidas) y lo guarda atómico.
// Se invoca exactamente una vez por acción de envío.
type SubmissionPort interface {
	Submit(ctx context.Context, companyID string, payload *dto.SubmissionPayload) (voucherID string, err error)
}

// VoucherNumberService es el servicio externo de numeración de comprobantes.
// Se consulta una sola vez por vida del borrador (al abrirlo, no al enviar);
// el valor retornado es opaco y viaja intacto en el payload. El motor nunca
// genera ni incrementa números por su cuenta; la concurrencia del contador es
// responsabilidad del servicio.
type VoucherNumberService interface {
	NextNumber(ctx context.Context, companyID string, kind voucher.TransactionKind) (string, error)
}
