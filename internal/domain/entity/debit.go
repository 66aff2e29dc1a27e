package entity

import "github.com/shopspring/decimal"

// CustomerDebit cargo a crédito de un cliente por combustible.
// Amount = Quantity × Rate se calcula al crear; Balance nace igual a Amount
// (no hay modelo de abonos parciales).
type CustomerDebit struct {
	ID           string
	CustomerID   string
	CustomerName string
	Phone        string
	Date         string // YYYY-MM-DD
	Amount       decimal.Decimal
	Description  string
	FuelType     string // Petrol | Diesel | ...
	Quantity     decimal.Decimal // litros
	Rate         decimal.Decimal // precio por litro
	Balance      decimal.Decimal
}
