package voucher

import "fmt"

// TransactionKind es la dirección del comprobante: venta (saliente) o compra (entrante).
// Enum cerrado de dos variantes; el núcleo nunca compara strings de UI para decidir signos.
type TransactionKind int

const (
	// KindOutgoing venta: se acredita el libro del cliente y se carga el libro de ventas.
	KindOutgoing TransactionKind = iota + 1
	// KindIncoming compra: signos invertidos respecto a la venta.
	KindIncoming
)

// Valid indica si el valor pertenece al enum.
func (k TransactionKind) Valid() bool {
	return k == KindOutgoing || k == KindIncoming
}

// String representación canónica ("outgoing" | "incoming"), usada solo para serializar.
func (k TransactionKind) String() string {
	switch k {
	case KindOutgoing:
		return "outgoing"
	case KindIncoming:
		return "incoming"
	default:
		return fmt.Sprintf("TransactionKind(%d)", int(k))
	}
}

// ParseTransactionKind convierte el valor del wire al enum. Solo se usa en el borde
// (DTO/HTTP); dentro del núcleo siempre circula el enum.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch s {
	case "outgoing":
		return KindOutgoing, nil
	case "incoming":
		return KindIncoming, nil
	default:
		return 0, fmt.Errorf("transaction kind desconocido: %q", s)
	}
}
