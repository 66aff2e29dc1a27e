package dto

import "time"

// LoginRequest entrada para login (email + contraseña compartida del directorio).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse identidad en respuestas (sin hash de contraseña).
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	EmployeeID string    `json:"employee_id,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CapabilitiesResponse acciones permitidas del rol; el cliente compone su
// pantalla a partir de esto en lugar de comparar strings de rol.
type CapabilitiesResponse struct {
	ManageAttendance bool `json:"manage_attendance"`
	PunchAttendance  bool `json:"punch_attendance"`
	RecordLoss       bool `json:"record_loss"`
	RecordDebit      bool `json:"record_debit"`
	RequestAdvance   bool `json:"request_advance"`
	ApproveAdvance   bool `json:"approve_advance"`
	ManageSalary     bool `json:"manage_salary"`
	ViewReports      bool `json:"view_reports"`
	ViewOwnCredit    bool `json:"view_own_credit"`
}

// LoginResponse salida con token JWT, usuario y capacidades del rol.
type LoginResponse struct {
	Token        string               `json:"token"`
	User         UserResponse         `json:"user"`
	Capabilities CapabilitiesResponse `json:"capabilities"`
}
