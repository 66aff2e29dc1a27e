// Package credit contiene los casos de uso del crédito de combustible:
// débitos de clientes, saldos pendientes y estados de cuenta.
package credit

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

// CreditUseCase casos de uso de crédito de clientes.
type CreditUseCase struct {
	repo      repository.DebitRepository
	generator StatementPDFGenerator
}

// NewCreditUseCase construye el caso de uso. generator puede ser nil si la
// descarga de estados de cuenta no está habilitada.
func NewCreditUseCase(repo repository.DebitRepository, generator StatementPDFGenerator) *CreditUseCase {
	return &CreditUseCase{repo: repo, generator: generator}
}

// RecordDebit registra un cargo a crédito. Amount = Quantity × Rate se
// calcula aquí; Balance nace igual a Amount (sin abonos parciales).
func (uc *CreditUseCase) RecordDebit(in dto.CreateDebitRequest) (*dto.DebitResponse, error) {
	if in.CustomerID == "" || in.CustomerName == "" || in.FuelType == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.IsPositive() || !in.Rate.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	amount := in.Quantity.Mul(in.Rate)
	record := &entity.CustomerDebit{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Date:         date,
		Amount:       amount,
		Description:  in.Description,
		FuelType:     in.FuelType,
		Quantity:     in.Quantity,
		Rate:         in.Rate,
		Balance:      amount,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	resp := toDebitResponse(record)
	return &resp, nil
}

// TotalBalance suma el saldo pendiente de un cliente; cero si no tiene registros.
func (uc *CreditUseCase) TotalBalance(customerID string) (*dto.CustomerBalanceResponse, error) {
	total, err := uc.repo.TotalBalanceByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerBalanceResponse{CustomerID: customerID, Balance: total}, nil
}

// Overview agrupa todos los débitos por cliente con su saldo (pantalla de
// clientes del owner/supervisor) más el total general pendiente.
func (uc *CreditUseCase) Overview() (*dto.CustomerOverviewResponse, error) {
	debits, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*dto.CustomerGroupResponse)
	order := make([]string, 0)
	totalOutstanding := decimal.Zero

	for _, d := range debits {
		g, ok := groups[d.CustomerID]
		if !ok {
			g = &dto.CustomerGroupResponse{
				CustomerID:   d.CustomerID,
				CustomerName: d.CustomerName,
				Phone:        d.Phone,
				TotalBalance: decimal.Zero,
			}
			groups[d.CustomerID] = g
			order = append(order, d.CustomerID)
		}
		g.Debits = append(g.Debits, toDebitResponse(d))
		g.TotalBalance = g.TotalBalance.Add(d.Balance)
		totalOutstanding = totalOutstanding.Add(d.Balance)
	}

	out := &dto.CustomerOverviewResponse{
		Customers:        make([]dto.CustomerGroupResponse, 0, len(order)),
		TotalOutstanding: totalOutstanding,
	}
	for _, id := range order {
		out.Customers = append(out.Customers, *groups[id])
	}
	return out, nil
}

// History devuelve el historial del cliente agrupado por mes, meses
// descendentes (pantalla de transacciones del cliente).
func (uc *CreditUseCase) History(customerID string) (*dto.TransactionHistoryResponse, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	debits, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	balance, err := uc.repo.TotalBalanceByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string][]dto.DebitResponse)
	for _, d := range debits {
		month := d.Date
		if len(month) >= 7 {
			month = month[:7] // YYYY-MM
		}
		byMonth[month] = append(byMonth[month], toDebitResponse(d))
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	out := &dto.TransactionHistoryResponse{
		CustomerID: customerID,
		Balance:    balance,
		Months:     make([]dto.MonthGroupResponse, 0, len(months)),
	}
	for _, m := range months {
		out.Months = append(out.Months, dto.MonthGroupResponse{Month: m, Debits: byMonth[m]})
	}
	return out, nil
}

// DownloadStatement genera el estado de cuenta del cliente en PDF.
// Retorna (bytes, filename, error); domain.ErrNotFound si el cliente no
// tiene ningún débito registrado.
func (uc *CreditUseCase) DownloadStatement(ctx context.Context, customerID string) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("statement: generador PDF no configurado")
	}
	debits, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, "", fmt.Errorf("statement: obtener débitos: %w", err)
	}
	if len(debits) == 0 {
		return nil, "", domain.ErrNotFound
	}
	balance, err := uc.repo.TotalBalanceByCustomer(customerID)
	if err != nil {
		return nil, "", fmt.Errorf("statement: calcular saldo: %w", err)
	}

	data := StatementData{
		CustomerID:   customerID,
		CustomerName: debits[0].CustomerName,
		Phone:        debits[0].Phone,
		Balance:      balance,
		Debits:       debits,
	}
	pdfBytes, err := uc.generator.GenerateStatementPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("statement: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("estado_cuenta_%s.pdf", customerID)
	return pdfBytes, filename, nil
}

func toDebitResponse(d *entity.CustomerDebit) dto.DebitResponse {
	return dto.DebitResponse{
		ID:           d.ID,
		CustomerID:   d.CustomerID,
		CustomerName: d.CustomerName,
		Phone:        d.Phone,
		Date:         d.Date,
		Amount:       d.Amount,
		Description:  d.Description,
		FuelType:     d.FuelType,
		Quantity:     d.Quantity,
		Rate:         d.Rate,
		Balance:      d.Balance,
	}
}
