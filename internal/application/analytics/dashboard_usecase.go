// Package analytics contiene los casos de uso de agregación: el resumen del
// dashboard por rol y el reporte mensual consolidado. Todos los agregados se
// recalculan de las colecciones crudas en cada consulta (filter + reduce);
// a la escala de una estación (decenas de empleados/clientes) no hay razón
// para mantenimiento incremental.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

// Viewer identidad mínima para resolver la forma del dashboard.
type Viewer struct {
	Role       entity.Role
	EmployeeID string
	CustomerID string
}

// DashboardUseCase genera el resumen del dashboard. La FORMA de la respuesta
// la decide el rol (dispatch exhaustivo sobre el conjunto cerrado), no el
// cliente: owner/supervisor ven la estación, los empleados su bloque personal
// y los clientes su crédito.
type DashboardUseCase struct {
	attendanceRepo repository.AttendanceRepository
	lossRepo       repository.LossRepository
	debitRepo      repository.DebitRepository
	advanceRepo    repository.AdvanceRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	attendanceRepo repository.AttendanceRepository,
	lossRepo repository.LossRepository,
	debitRepo repository.DebitRepository,
	advanceRepo repository.AdvanceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		attendanceRepo: attendanceRepo,
		lossRepo:       lossRepo,
		debitRepo:      debitRepo,
		advanceRepo:    advanceRepo,
	}
}

// GetSummary arma el DashboardSummaryDTO según el rol del solicitante.
func (uc *DashboardUseCase) GetSummary(viewer Viewer) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	out := &dto.DashboardSummaryDTO{
		Role:      string(viewer.Role),
		DateLabel: monthLabel(now),
	}

	switch viewer.Role {
	case entity.RoleOwner:
		station, err := uc.stationSummary(now)
		if err != nil {
			return nil, err
		}
		out.Station = station

	case entity.RoleSupervisor:
		station, err := uc.stationSummary(now)
		if err != nil {
			return nil, err
		}
		personal, err := uc.personalSummary(viewer.EmployeeID)
		if err != nil {
			return nil, err
		}
		out.Station = station
		out.Personal = personal

	case entity.RoleDSM:
		personal, err := uc.personalSummary(viewer.EmployeeID)
		if err != nil {
			return nil, err
		}
		out.Personal = personal

	case entity.RoleCustomer:
		credit, err := uc.creditSummary(viewer.CustomerID, now)
		if err != nil {
			return nil, err
		}
		out.Credit = credit
	}

	return out, nil
}

// stationSummary KPIs del día: asistencia de hoy, saldo pendiente total,
// pérdidas acumuladas y adelantos por decidir. Las tres consultas de
// colección corren en paralelo.
func (uc *DashboardUseCase) stationSummary(now time.Time) (*dto.StationSummaryDTO, error) {
	today := now.Format("2006-01-02")

	type attendanceResult struct {
		records []*entity.AttendanceRecord
		err     error
	}
	type lossResult struct {
		records []*entity.LossRecord
		err     error
	}
	type advanceResult struct {
		records []*entity.AdvanceRecord
		err     error
	}

	attCh := make(chan attendanceResult, 1)
	lossCh := make(chan lossResult, 1)
	advCh := make(chan advanceResult, 1)

	go func() {
		records, err := uc.attendanceRepo.ListByDate(today)
		attCh <- attendanceResult{records, err}
	}()
	go func() {
		records, err := uc.lossRepo.List()
		lossCh <- lossResult{records, err}
	}()
	go func() {
		records, err := uc.advanceRepo.ListByStatus(entity.StatusPending)
		advCh <- advanceResult{records, err}
	}()

	att := <-attCh
	losses := <-lossCh
	advances := <-advCh

	if att.err != nil {
		return nil, fmt.Errorf("dashboard: asistencia de hoy: %w", att.err)
	}
	if losses.err != nil {
		return nil, fmt.Errorf("dashboard: pérdidas: %w", losses.err)
	}
	if advances.err != nil {
		return nil, fmt.Errorf("dashboard: adelantos pendientes: %w", advances.err)
	}

	debitTotal, err := uc.totalOutstanding()
	if err != nil {
		return nil, fmt.Errorf("dashboard: saldo pendiente: %w", err)
	}

	totalLosses := decimal.Zero
	for _, l := range losses.records {
		totalLosses = totalLosses.Add(l.Amount)
	}

	return &dto.StationSummaryDTO{
		TodayAttendance:  len(att.records),
		TotalOutstanding: debitTotal,
		TotalLosses:      totalLosses,
		PendingAdvances:  len(advances.records),
	}, nil
}

// personalSummary bloque propio de un empleado: días presentes y adelantos
// acumulados.
func (uc *DashboardUseCase) personalSummary(employeeID string) (*dto.PersonalSummaryDTO, error) {
	attendance, err := uc.attendanceRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: asistencia propia: %w", err)
	}
	advances, err := uc.advanceRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: adelantos propios: %w", err)
	}

	present := 0
	for _, a := range attendance {
		if a.Status == entity.AttendancePresent || a.Status == entity.AttendanceLate {
			present++
		}
	}
	total := decimal.Zero
	for _, a := range advances {
		total = total.Add(a.Amount)
	}
	return &dto.PersonalSummaryDTO{PresentDays: present, TotalAdvances: total}, nil
}

// creditSummary bloque propio de un cliente: saldo pendiente y cargos del
// mes en curso.
func (uc *DashboardUseCase) creditSummary(customerID string, now time.Time) (*dto.CreditSummaryDTO, error) {
	balance, err := uc.debitRepo.TotalBalanceByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: saldo del cliente: %w", err)
	}
	debits, err := uc.debitRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: débitos del cliente: %w", err)
	}
	month := now.Format("2006-01")
	count := 0
	for _, d := range debits {
		if len(d.Date) >= 7 && d.Date[:7] == month {
			count++
		}
	}
	return &dto.CreditSummaryDTO{Balance: balance, DebitsThisMonth: count}, nil
}

func (uc *DashboardUseCase) totalOutstanding() (decimal.Decimal, error) {
	debits, err := uc.debitRepo.List()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, d := range debits {
		total = total.Add(d.Balance)
	}
	return total, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Enero 2025".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
