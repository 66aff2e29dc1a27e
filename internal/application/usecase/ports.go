package usecase

import (
	"context"

	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// Locator puerto del proveedor de ubicación: resuelve coordenadas a una
// dirección legible. La implementación HTTP vive en infrastructure/geo;
// si el proveedor no está disponible el flujo de asistencia degrada a
// entrada manual, nunca bloquea el check-in.
type Locator interface {
	Reverse(ctx context.Context, latitude, longitude float64) (string, error)
}

// PayslipPDFGenerator puerto del generador de desprendibles de pago
// (implementado con Maroto en infrastructure/pdf).
type PayslipPDFGenerator interface {
	GeneratePayslipPDF(ctx context.Context, salary *entity.SalaryRecord) ([]byte, error)
}
