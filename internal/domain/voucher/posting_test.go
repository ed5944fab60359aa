package voucher_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/libros-pyme/internal/domain/voucher"
)

// Venta: libro de la parte −G, contrapartida +G.
func TestAssemblePostings_Venta(t *testing.T) {
	postings, err := voucher.AssemblePostings(dec("200"), voucher.KindOutgoing, "cliente-1", "ventas")
	require.NoError(t, err)

	assert.Equal(t, "cliente-1", postings[0].LedgerID)
	assert.True(t, postings[0].Amount.Equal(dec("-200")))
	assert.Equal(t, "ventas", postings[1].LedgerID)
	assert.True(t, postings[1].Amount.Equal(dec("200")))
}

// Compra con gran total 500: parte +500, contrapartida −500.
func TestAssemblePostings_Compra(t *testing.T) {
	postings, err := voucher.AssemblePostings(dec("500"), voucher.KindIncoming, "proveedor-9", "compras")
	require.NoError(t, err)

	assert.True(t, postings[0].Amount.Equal(dec("500")))
	assert.True(t, postings[1].Amount.Equal(dec("-500")))
}

// Para todo (kind, G): la suma de las dos piernas es cero y |pierna| == G.
func TestAssemblePostings_InvarianteDeBalance(t *testing.T) {
	for _, kind := range []voucher.TransactionKind{voucher.KindOutgoing, voucher.KindIncoming} {
		for _, g := range []string{"0", "0.01", "148", "99999.99"} {
			postings, err := voucher.AssemblePostings(dec(g), kind, "parte", "contra")
			require.NoError(t, err)

			sum := postings[0].Amount.Add(postings[1].Amount)
			assert.True(t, sum.IsZero(), "kind=%s G=%s: la partida debe balancear, suma=%s", kind, g, sum)
			assert.True(t, postings[0].Amount.Abs().Equal(dec(g)),
				"kind=%s: |importe de la parte| debe ser el gran total", kind)
		}
	}
}

// post(G, outgoing, A, B) == post(G, incoming, A, B) con ambos importes negados.
func TestAssemblePostings_SimetriaDeSigno(t *testing.T) {
	g := dec("147.5")
	out, err := voucher.AssemblePostings(g, voucher.KindOutgoing, "A", "B")
	require.NoError(t, err)
	in, err := voucher.AssemblePostings(g, voucher.KindIncoming, "A", "B")
	require.NoError(t, err)

	for i := range out {
		assert.Equal(t, out[i].LedgerID, in[i].LedgerID)
		assert.True(t, out[i].Amount.Equal(in[i].Amount.Neg()),
			"pierna %d: venta y compra deben diferir solo en el signo", i)
	}
}

// Referencia de libro vacía es violación de precondición: error duro, jamás
// una partida con pierna en cero o desbalanceada.
func TestAssemblePostings_LibroVacio(t *testing.T) {
	_, err := voucher.AssemblePostings(dec("100"), voucher.KindOutgoing, "", "ventas")
	assert.ErrorIs(t, err, voucher.ErrMissingLedgerRef)

	_, err = voucher.AssemblePostings(dec("100"), voucher.KindIncoming, "proveedor", "")
	assert.ErrorIs(t, err, voucher.ErrMissingLedgerRef)
}

func TestAssemblePostings_KindInvalido(t *testing.T) {
	_, err := voucher.AssemblePostings(decimal.Zero, voucher.TransactionKind(0), "a", "b")
	assert.Error(t, err)
}

func TestParseTransactionKind(t *testing.T) {
	k, err := voucher.ParseTransactionKind("outgoing")
	require.NoError(t, err)
	assert.Equal(t, voucher.KindOutgoing, k)

	k, err = voucher.ParseTransactionKind("incoming")
	require.NoError(t, err)
	assert.Equal(t, voucher.KindIncoming, k)

	_, err = voucher.ParseTransactionKind("Sales") // labels de UI no son kinds
	assert.Error(t, err)

	assert.Equal(t, "outgoing", voucher.KindOutgoing.String())
	assert.Equal(t, "incoming", voucher.KindIncoming.String())
	assert.False(t, voucher.TransactionKind(7).Valid())
}
