package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// SeedUsers siembra el directorio fijo de usuarios. No hay backend de
// credenciales real: todos comparten la contraseña indicada (hasheada con
// bcrypt antes de guardarse).
func (s *Store) SeedUsers(sharedPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(sharedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hashear contraseña compartida: %w", err)
	}
	now := time.Now()

	users := []*entity.User{
		{
			ID: uuid.New().String(), Name: "John Owner", Email: "owner@pump.com",
			Phone: "+1234567890", Role: entity.RoleOwner, EmployeeID: "EMP001",
		},
		{
			ID: uuid.New().String(), Name: "Mike Supervisor", Email: "supervisor@pump.com",
			Phone: "+1234567891", Role: entity.RoleSupervisor, EmployeeID: "EMP002",
		},
		{
			ID: uuid.New().String(), Name: "David DSM", Email: "dsm@pump.com",
			Phone: "+1234567892", Role: entity.RoleDSM, EmployeeID: "EMP003",
		},
		{
			ID: uuid.New().String(), Name: "Sarah Customer", Email: "customer@email.com",
			Phone: "+1234567893", Role: entity.RoleCustomer, CustomerID: "CUST001",
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		u.PasswordHash = string(hash)
		u.CreatedAt = now
		s.users = append(s.users, u)
	}
	return nil
}

// SeedDemo carga los registros de demostración con los que arranca la app
// móvil (asistencia, salarios, pérdidas, débitos y adelantos de ejemplo).
// Pensado para development; en producción el almacén arranca vacío.
func (s *Store) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	station := entity.Location{Latitude: 40.7128, Longitude: -74.0060, Address: "Petrol Pump Station, Main Street"}

	s.attendance = append(s.attendance,
		&entity.AttendanceRecord{
			ID: uuid.New().String(), EmployeeID: "EMP002", EmployeeName: "Mike Supervisor",
			Date: "2025-01-27", CheckIn: "08:00", CheckOut: "20:00",
			Location: station, Status: entity.AttendancePresent,
		},
		&entity.AttendanceRecord{
			ID: uuid.New().String(), EmployeeID: "EMP003", EmployeeName: "David DSM",
			Date: "2025-01-27", CheckIn: "06:00", CheckOut: "18:00",
			Location: station, Status: entity.AttendancePresent,
		},
	)

	s.salaries = append(s.salaries,
		&entity.SalaryRecord{
			ID: uuid.New().String(), EmployeeID: "EMP002", EmployeeName: "Mike Supervisor",
			Month: "2025-01", DailyWage: decimal.NewFromInt(150), PresentDays: 26,
			TotalEarnings: decimal.NewFromInt(3900), Advances: decimal.NewFromInt(500),
			Losses: decimal.Zero, NetPay: decimal.NewFromInt(3400),
		},
		&entity.SalaryRecord{
			ID: uuid.New().String(), EmployeeID: "EMP003", EmployeeName: "David DSM",
			Month: "2025-01", DailyWage: decimal.NewFromInt(120), PresentDays: 27,
			TotalEarnings: decimal.NewFromInt(3240), Advances: decimal.NewFromInt(300),
			Losses: decimal.NewFromInt(100), NetPay: decimal.NewFromInt(2840),
		},
	)

	s.losses = append(s.losses,
		&entity.LossRecord{
			ID: uuid.New().String(), Date: "2025-01-25", Amount: decimal.NewFromInt(100),
			Reason: "Fuel spillage during delivery", ResponsibleEmployee: "EMP003",
			ApprovedBy: "EMP001", Status: entity.StatusApproved,
		},
		&entity.LossRecord{
			ID: uuid.New().String(), Date: "2025-01-26", Amount: decimal.NewFromInt(50),
			Reason: "Cash shortage at end of shift", ResponsibleEmployee: "EMP003",
			ApprovedBy: "EMP002", Status: entity.StatusPending,
		},
	)

	s.debits = append(s.debits,
		&entity.CustomerDebit{
			ID: uuid.New().String(), CustomerID: "CUST001", CustomerName: "Sarah Customer",
			Phone: "+1234567893", Date: "2025-01-20", Amount: decimal.NewFromInt(2500),
			Description: "Petrol purchase", FuelType: "Petrol",
			Quantity: decimal.NewFromInt(50), Rate: decimal.NewFromInt(50),
			Balance: decimal.NewFromInt(2500),
		},
		&entity.CustomerDebit{
			ID: uuid.New().String(), CustomerID: "CUST002", CustomerName: "Robert Wilson",
			Phone: "+1234567894", Date: "2025-01-22", Amount: decimal.NewFromInt(1800),
			Description: "Diesel purchase", FuelType: "Diesel",
			Quantity: decimal.NewFromInt(40), Rate: decimal.NewFromInt(45),
			Balance: decimal.NewFromInt(1800),
		},
	)

	s.advances = append(s.advances,
		&entity.AdvanceRecord{
			ID: uuid.New().String(), EmployeeID: "EMP003", EmployeeName: "David DSM",
			Date: "2025-01-15", Amount: decimal.NewFromInt(300), Reason: "Medical emergency",
			Status: entity.StatusApproved, ApprovedBy: "EMP001",
		},
		&entity.AdvanceRecord{
			ID: uuid.New().String(), EmployeeID: "EMP002", EmployeeName: "Mike Supervisor",
			Date: "2025-01-20", Amount: decimal.NewFromInt(500), Reason: "Family function",
			Status: entity.StatusApproved, ApprovedBy: "EMP001",
		},
	)
}
