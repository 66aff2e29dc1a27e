package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrSessionRevoked      = errors.New("sesión cerrada o inexistente")
	ErrAttendanceClosed    = errors.New("la asistencia de hoy ya está completa")
	ErrLocationUnavailable = errors.New("ubicación no disponible")
)
