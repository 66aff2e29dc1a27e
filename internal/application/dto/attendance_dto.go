package dto

// PunchRequest body para POST /api/attendance/punch.
// El cliente manda coordenadas cuando el dispositivo las tiene; si faltan,
// el servidor registra el check-in con dirección de entrada manual.
type PunchRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// ManualAttendanceRequest body para POST /api/attendance/manual
// (camino degradado cuando no hay ubicación, o carga retroactiva del supervisor).
type ManualAttendanceRequest struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out,omitempty"`
}

// LocationResponse punto + dirección en respuestas.
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// AttendanceResponse registro de asistencia en respuestas.
type AttendanceResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName string           `json:"employee_name"`
	Date         string           `json:"date"`
	CheckIn      string           `json:"check_in"`
	CheckOut     string           `json:"check_out,omitempty"`
	Location     LocationResponse `json:"location"`
	Status       string           `json:"status"`
}

// PunchResponse resultado del punch: qué acción se resolvió.
type PunchResponse struct {
	Action string             `json:"action"` // "check_in" | "check_out"
	Record AttendanceResponse `json:"record"`
}

// AttendanceSummaryResponse conteos por estado para el panel de asistencia.
type AttendanceSummaryResponse struct {
	Date    string `json:"date,omitempty"`
	Month   string `json:"month,omitempty"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
}
