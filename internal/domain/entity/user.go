package entity

import "time"

// Role rol de un usuario. Conjunto cerrado: owner, supervisor, dsm, customer.
// Tipado (no string libre) para que el dispatch por rol sea exhaustivo.
type Role string

const (
	RoleOwner      Role = "owner"      // dueño de la estación
	RoleSupervisor Role = "supervisor" // supervisor de turno
	RoleDSM        Role = "dsm"        // islero / despachador (duty station manager)
	RoleCustomer   Role = "customer"   // cliente con crédito de combustible
)

// Valid reporta si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleSupervisor, RoleDSM, RoleCustomer:
		return true
	}
	return false
}

// IsEmployee reporta si el rol corresponde a personal de la estación.
func (r Role) IsEmployee() bool {
	return r == RoleOwner || r == RoleSupervisor || r == RoleDSM
}

// Capabilities conjunto de acciones que un rol tiene permitidas.
// Resuelto por rol en tiempo de construcción; las pantallas del cliente
// solo reflejan lo que el backend ya decidió aquí.
type Capabilities struct {
	ManageAttendance bool // ver asistencia de todos + entrada manual
	PunchAttendance  bool // check-in / check-out propio
	RecordLoss       bool // registrar pérdidas
	RecordDebit      bool // registrar débitos de clientes
	RequestAdvance   bool // solicitar adelantos de salario
	ApproveAdvance   bool // aprobar / rechazar adelantos
	ManageSalary     bool // crear registros de salario
	ViewReports      bool // reporte mensual consolidado
	ViewOwnCredit    bool // saldo y transacciones propias (cliente)
}

// CapabilitiesFor devuelve el conjunto de capacidades del rol.
func CapabilitiesFor(r Role) Capabilities {
	switch r {
	case RoleOwner:
		return Capabilities{
			ManageAttendance: true,
			PunchAttendance:  true,
			RecordLoss:       true,
			RecordDebit:      true,
			ApproveAdvance:   true,
			ManageSalary:     true,
			ViewReports:      true,
		}
	case RoleSupervisor:
		return Capabilities{
			ManageAttendance: true,
			PunchAttendance:  true,
			RecordLoss:       true,
			RecordDebit:      true,
			RequestAdvance:   true,
		}
	case RoleDSM:
		return Capabilities{
			PunchAttendance: true,
			RequestAdvance:  true,
		}
	case RoleCustomer:
		return Capabilities{
			ViewOwnCredit: true,
		}
	}
	return Capabilities{}
}

// User representa un usuario del directorio fijo de la estación.
// Exactamente uno de EmployeeID/CustomerID es significativo según el rol.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Role         Role
	EmployeeID   string // vacío para clientes
	CustomerID   string // vacío para empleados
	PasswordHash string // bcrypt; nunca texto plano después de sembrar
	CreatedAt    time.Time
}
