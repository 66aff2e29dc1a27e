package entity

// Estados de asistencia.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Location punto geográfico del check-in más la dirección legible
// (geocodificación inversa o entrada manual).
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// AttendanceRecord registro de asistencia de un empleado para una fecha.
// Se espera a lo sumo un registro por (EmployeeID, Date); CheckOut vacío
// mientras el empleado sigue en turno.
type AttendanceRecord struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         string // YYYY-MM-DD
	CheckIn      string // HH:MM (24h)
	CheckOut     string // HH:MM; vacío = en turno
	Location     Location
	Status       string // present | absent | late
}

// Closed reporta si la jornada ya quedó completa (check-in y check-out).
func (a AttendanceRecord) Closed() bool {
	return a.CheckOut != ""
}
