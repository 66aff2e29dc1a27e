package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

// Dirección que queda en el registro cuando no hay ubicación del dispositivo.
const manualAddress = "Manual Entry"

// Acciones que puede resolver un punch.
const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
)

// AttendanceUseCase casos de uso de asistencia: punch (check-in/check-out),
// entrada manual, listados y resúmenes.
type AttendanceUseCase struct {
	repo            repository.AttendanceRepository
	locator         Locator
	checkInDeadline string // HH:MM; un check-in posterior queda como "late"
}

// NewAttendanceUseCase construye el caso de uso. locator puede ser nil
// (sin geocodificador configurado: toda asistencia queda con dirección manual).
func NewAttendanceUseCase(repo repository.AttendanceRepository, locator Locator, checkInDeadline string) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo, locator: locator, checkInDeadline: checkInDeadline}
}

// Punch resuelve la acción de asistencia del empleado para hoy:
//   - sin registro            → check-in (crea el registro)
//   - registro sin check-out  → check-out (completa el registro)
//   - registro completo       → domain.ErrAttendanceClosed
//
// El estado queda "late" si el check-in supera la hora límite del turno.
func (uc *AttendanceUseCase) Punch(ctx context.Context, employeeID, employeeName string, in dto.PunchRequest) (*dto.PunchResponse, error) {
	if employeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	today := now.Format("2006-01-02")
	hhmm := now.Format("15:04")

	existing, err := uc.repo.GetByEmployeeAndDate(employeeID, today)
	if err != nil {
		return nil, err
	}

	switch {
	case existing == nil:
		record := &entity.AttendanceRecord{
			ID:           uuid.New().String(),
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			Date:         today,
			CheckIn:      hhmm,
			Location:     uc.resolveLocation(ctx, in),
			Status:       uc.statusFor(hhmm),
		}
		if err := uc.repo.Create(record); err != nil {
			return nil, err
		}
		return &dto.PunchResponse{Action: ActionCheckIn, Record: toAttendanceResponse(record)}, nil

	case !existing.Closed():
		existing.CheckOut = hhmm
		if err := uc.repo.Update(existing); err != nil {
			return nil, err
		}
		return &dto.PunchResponse{Action: ActionCheckOut, Record: toAttendanceResponse(existing)}, nil

	default:
		// Jornada completa: el tercer intento del día se rechaza sin mutar nada.
		return nil, domain.ErrAttendanceClosed
	}
}

// ManualEntry registra asistencia sin ubicación del dispositivo (camino
// degradado cuando el permiso de ubicación fue negado, o carga retroactiva).
func (uc *AttendanceUseCase) ManualEntry(in dto.ManualAttendanceRequest) (*dto.AttendanceResponse, error) {
	if in.EmployeeID == "" || in.EmployeeName == "" || in.Date == "" || in.CheckIn == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	record := &entity.AttendanceRecord{
		ID:           uuid.New().String(),
		EmployeeID:   in.EmployeeID,
		EmployeeName: in.EmployeeName,
		Date:         in.Date,
		CheckIn:      in.CheckIn,
		CheckOut:     in.CheckOut,
		Location:     entity.Location{Address: manualAddress},
		Status:       entity.AttendancePresent,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	resp := toAttendanceResponse(record)
	return &resp, nil
}

// ListByEmployee devuelve el historial de un empleado.
func (uc *AttendanceUseCase) ListByEmployee(employeeID string) ([]dto.AttendanceResponse, error) {
	records, err := uc.repo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return toAttendanceResponses(records), nil
}

// ListAll devuelve todos los registros (owner / supervisor).
func (uc *AttendanceUseCase) ListAll() ([]dto.AttendanceResponse, error) {
	records, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toAttendanceResponses(records), nil
}

// DailySummary cuenta present/absent/late para una fecha (hoy si viene vacía).
// Recalculado de la colección cruda en cada consulta.
func (uc *AttendanceUseCase) DailySummary(date string) (*dto.AttendanceSummaryResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	records, err := uc.repo.ListByDate(date)
	if err != nil {
		return nil, err
	}
	out := &dto.AttendanceSummaryResponse{Date: date}
	countStatuses(records, out)
	return out, nil
}

// MonthlySummary cuenta present/absent/late para un mes (YYYY-MM).
func (uc *AttendanceUseCase) MonthlySummary(month string) (*dto.AttendanceSummaryResponse, error) {
	records, err := uc.repo.ListByMonth(month)
	if err != nil {
		return nil, err
	}
	out := &dto.AttendanceSummaryResponse{Month: month}
	countStatuses(records, out)
	return out, nil
}

func countStatuses(records []*entity.AttendanceRecord, out *dto.AttendanceSummaryResponse) {
	for _, r := range records {
		switch r.Status {
		case entity.AttendancePresent:
			out.Present++
		case entity.AttendanceAbsent:
			out.Absent++
		case entity.AttendanceLate:
			out.Late++
		}
	}
}

// resolveLocation intenta geocodificar las coordenadas del punch; cualquier
// fallo degrada a dirección manual con las coordenadas crudas preservadas.
func (uc *AttendanceUseCase) resolveLocation(ctx context.Context, in dto.PunchRequest) entity.Location {
	if in.Latitude == nil || in.Longitude == nil {
		return entity.Location{Address: manualAddress}
	}
	loc := entity.Location{Latitude: *in.Latitude, Longitude: *in.Longitude, Address: manualAddress}
	if uc.locator == nil {
		return loc
	}
	if addr, err := uc.locator.Reverse(ctx, loc.Latitude, loc.Longitude); err == nil && addr != "" {
		loc.Address = addr
	}
	return loc
}

func (uc *AttendanceUseCase) statusFor(checkIn string) string {
	// Comparación lexicográfica de HH:MM en 24h.
	if uc.checkInDeadline != "" && checkIn > uc.checkInDeadline {
		return entity.AttendanceLate
	}
	return entity.AttendancePresent
}

func toAttendanceResponse(r *entity.AttendanceRecord) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		Location: dto.LocationResponse{
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
			Address:   r.Location.Address,
		},
		Status: r.Status,
	}
}

func toAttendanceResponses(records []*entity.AttendanceRecord) []dto.AttendanceResponse {
	out := make([]dto.AttendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toAttendanceResponse(r))
	}
	return out
}
