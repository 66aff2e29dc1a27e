package credit_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacion-api/internal/application/credit"
	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/infrastructure/memory"
)

// fakeStatementGenerator generador determinista para tests.
type fakeStatementGenerator struct {
	lastData credit.StatementData
}

func (f *fakeStatementGenerator) GenerateStatementPDF(ctx context.Context, data credit.StatementData) ([]byte, error) {
	f.lastData = data
	return []byte("%PDF-fake"), nil
}

func buildCreditUC(gen credit.StatementPDFGenerator) *credit.CreditUseCase {
	return credit.NewCreditUseCase(memory.NewDebitRepository(memory.NewStore()), gen)
}

func debitRequest(customerID string, quantity, rate int64) dto.CreateDebitRequest {
	return dto.CreateDebitRequest{
		CustomerID: customerID, CustomerName: "Sarah Customer", Phone: "+1234567893",
		Description: "Petrol purchase", FuelType: "Petrol",
		Quantity: decimal.NewFromInt(quantity), Rate: decimal.NewFromInt(rate),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordDebit
// ──────────────────────────────────────────────────────────────────────────────

// Amount = Quantity × Rate se calcula en el servidor; Balance nace igual a Amount.
func TestRecordDebit_CalculaAmountYBalance(t *testing.T) {
	uc := buildCreditUC(nil)

	out, err := uc.RecordDebit(debitRequest("CUST001", 10, 50))
	require.NoError(t, err)
	assert.True(t, out.Amount.Equal(decimal.NewFromInt(500)), "amount = 10 × 50, got %s", out.Amount)
	assert.True(t, out.Balance.Equal(out.Amount), "el balance nace igual al amount")
}

func TestRecordDebit_FechaPorDefectoEsHoy(t *testing.T) {
	uc := buildCreditUC(nil)

	out, err := uc.RecordDebit(debitRequest("CUST001", 1, 1))
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), out.Date)
}

func TestRecordDebit_Validacion(t *testing.T) {
	uc := buildCreditUC(nil)

	in := debitRequest("", 10, 50)
	_, err := uc.RecordDebit(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "customer_id es obligatorio")

	in = debitRequest("CUST001", 0, 50)
	_, err = uc.RecordDebit(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity debe ser positiva")

	in = debitRequest("CUST001", 10, 0)
	_, err = uc.RecordDebit(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rate debe ser positivo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de saldo — escenario 0 → 500 → 750
// ──────────────────────────────────────────────────────────────────────────────

// Un cliente sin registros tiene saldo cero (no not-found); cada débito suma
// a su saldo; los débitos de otros clientes no.
func TestTotalBalance_AcumulaPorCliente(t *testing.T) {
	uc := buildCreditUC(nil)

	empty, err := uc.TotalBalance("CUST001")
	require.NoError(t, err)
	assert.True(t, empty.Balance.IsZero(), "cliente sin registros tiene saldo 0")

	_, err = uc.RecordDebit(debitRequest("CUST001", 10, 50)) // 500
	require.NoError(t, err)
	afterFirst, err := uc.TotalBalance("CUST001")
	require.NoError(t, err)
	assert.True(t, afterFirst.Balance.Equal(decimal.NewFromInt(500)), "got %s", afterFirst.Balance)

	_, err = uc.RecordDebit(debitRequest("CUST001", 5, 50)) // +250
	require.NoError(t, err)
	_, err = uc.RecordDebit(debitRequest("CUST999", 100, 50)) // otro cliente
	require.NoError(t, err)

	afterSecond, err := uc.TotalBalance("CUST001")
	require.NoError(t, err)
	assert.True(t, afterSecond.Balance.Equal(decimal.NewFromInt(750)),
		"500 + 250, sin contaminación de otros clientes; got %s", afterSecond.Balance)
}

func TestOverview_AgrupaPorClienteYTotaliza(t *testing.T) {
	uc := buildCreditUC(nil)

	_, err := uc.RecordDebit(debitRequest("CUST001", 10, 50)) // 500
	require.NoError(t, err)
	_, err = uc.RecordDebit(debitRequest("CUST001", 5, 50)) // 250
	require.NoError(t, err)
	in := debitRequest("CUST002", 40, 45) // 1800
	in.CustomerName = "Robert Wilson"
	_, err = uc.RecordDebit(in)
	require.NoError(t, err)

	out, err := uc.Overview()
	require.NoError(t, err)
	require.Len(t, out.Customers, 2)
	assert.True(t, out.TotalOutstanding.Equal(decimal.NewFromInt(2550)), "got %s", out.TotalOutstanding)

	first := out.Customers[0]
	assert.Equal(t, "CUST001", first.CustomerID)
	assert.Len(t, first.Debits, 2)
	assert.True(t, first.TotalBalance.Equal(decimal.NewFromInt(750)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests History — agrupación mensual descendente
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_AgrupaPorMesDescendente(t *testing.T) {
	uc := buildCreditUC(nil)

	enero := debitRequest("CUST001", 10, 50)
	enero.Date = "2025-01-20"
	_, err := uc.RecordDebit(enero)
	require.NoError(t, err)

	eneroBis := debitRequest("CUST001", 2, 50)
	eneroBis.Date = "2025-01-25"
	_, err = uc.RecordDebit(eneroBis)
	require.NoError(t, err)

	marzo := debitRequest("CUST001", 4, 50)
	marzo.Date = "2025-03-01"
	_, err = uc.RecordDebit(marzo)
	require.NoError(t, err)

	out, err := uc.History("CUST001")
	require.NoError(t, err)
	require.Len(t, out.Months, 2)
	assert.Equal(t, "2025-03", out.Months[0].Month, "el mes más reciente va primero")
	assert.Equal(t, "2025-01", out.Months[1].Month)
	assert.Len(t, out.Months[1].Debits, 2)
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(800)))
}

func TestHistory_SinCustomerID(t *testing.T) {
	uc := buildCreditUC(nil)
	_, err := uc.History("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DownloadStatement
// ──────────────────────────────────────────────────────────────────────────────

func TestDownloadStatement_GeneraPDFConSaldo(t *testing.T) {
	gen := &fakeStatementGenerator{}
	uc := buildCreditUC(gen)

	_, err := uc.RecordDebit(debitRequest("CUST001", 10, 50))
	require.NoError(t, err)
	_, err = uc.RecordDebit(debitRequest("CUST001", 5, 50))
	require.NoError(t, err)

	data, filename, err := uc.DownloadStatement(context.Background(), "CUST001")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "estado_cuenta_CUST001.pdf", filename)
	assert.Equal(t, "Sarah Customer", gen.lastData.CustomerName)
	assert.Len(t, gen.lastData.Debits, 2)
	assert.True(t, gen.lastData.Balance.Equal(decimal.NewFromInt(750)))
}

func TestDownloadStatement_ClienteSinDebitos(t *testing.T) {
	uc := buildCreditUC(&fakeStatementGenerator{})
	_, _, err := uc.DownloadStatement(context.Background(), "CUST999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
