package dto

import "github.com/shopspring/decimal"

// CreateDebitRequest body para POST /api/customers/debits.
// Amount NO se recibe: siempre se calcula como Quantity × Rate en el servidor.
type CreateDebitRequest struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Date         string          `json:"date,omitempty"` // por defecto hoy
	Description  string          `json:"description"`
	FuelType     string          `json:"fuel_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Rate         decimal.Decimal `json:"rate"`
}

// DebitResponse débito en respuestas.
type DebitResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	FuelType     string          `json:"fuel_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Rate         decimal.Decimal `json:"rate"`
	Balance      decimal.Decimal `json:"balance"`
}

// CustomerBalanceResponse saldo pendiente de un cliente.
type CustomerBalanceResponse struct {
	CustomerID string          `json:"customer_id"`
	Balance    decimal.Decimal `json:"balance"`
}

// CustomerGroupResponse cliente con sus débitos y saldo (vista del owner).
type CustomerGroupResponse struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	Debits       []DebitResponse `json:"debits"`
}

// CustomerOverviewResponse agrupación por cliente + total general pendiente.
type CustomerOverviewResponse struct {
	Customers        []CustomerGroupResponse `json:"customers"`
	TotalOutstanding decimal.Decimal         `json:"total_outstanding"`
}

// MonthGroupResponse transacciones de un cliente agrupadas por mes
// (pantalla de historial, meses descendentes).
type MonthGroupResponse struct {
	Month  string          `json:"month"` // YYYY-MM
	Debits []DebitResponse `json:"debits"`
}

// TransactionHistoryResponse historial del cliente autenticado.
type TransactionHistoryResponse struct {
	CustomerID string               `json:"customer_id"`
	Balance    decimal.Decimal      `json:"balance"`
	Months     []MonthGroupResponse `json:"months"`
}
