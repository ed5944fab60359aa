package voucher

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMissingLedgerRef violación de precondición: nunca se emite una partida
// con referencia de libro vacía. Es error del programador, no se corrige ni
// se asume un libro por defecto.
var ErrMissingLedgerRef = errors.New("referencia de libro mayor vacía")

// Posting es una pierna de la partida doble: libro mayor + importe con signo.
type Posting struct {
	LedgerID string
	Amount   decimal.Decimal
}

// AssemblePostings emite exactamente dos partidas balanceadas para el gran total:
//
//	venta  (outgoing): { libro de la parte: −G, libro contrapartida: +G }
//	compra (incoming): { libro de la parte: +G, libro contrapartida: −G }
//
// La suma de ambas piernas es siempre cero. Esta es la única función que decide
// signos contables; el kind llega como enum, jamás inferido de un label de pantalla.
func AssemblePostings(grandTotal decimal.Decimal, kind TransactionKind, partyID, counterID string) ([2]Posting, error) {
	if partyID == "" || counterID == "" {
		return [2]Posting{}, ErrMissingLedgerRef
	}
	switch kind {
	case KindOutgoing:
		return [2]Posting{
			{LedgerID: partyID, Amount: grandTotal.Neg()},
			{LedgerID: counterID, Amount: grandTotal},
		}, nil
	case KindIncoming:
		return [2]Posting{
			{LedgerID: partyID, Amount: grandTotal},
			{LedgerID: counterID, Amount: grandTotal.Neg()},
		}, nil
	default:
		return [2]Posting{}, fmt.Errorf("transaction kind inválido: %d", int(kind))
	}
}
