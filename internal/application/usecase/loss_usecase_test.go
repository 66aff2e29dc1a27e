package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/application/usecase"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/infrastructure/memory"
)

func buildLossUC() *usecase.LossUseCase {
	return usecase.NewLossUseCase(memory.NewLossRepository(memory.NewStore()))
}

// El estado de la pérdida lo decide el rol del creador: el owner auto-aprueba,
// cualquier otro queda pendiente. ApprovedBy siempre es quien la registró.
func TestCreateLoss_EstadoSegunRolDelCreador(t *testing.T) {
	uc := buildLossUC()
	in := dto.CreateLossRequest{Amount: decimal.NewFromInt(100), Reason: "Derrame en descarga"}

	byOwner, err := uc.Create(entity.RoleOwner, "EMP001", in)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, byOwner.Status, "el owner auto-aprueba")
	assert.Equal(t, "EMP001", byOwner.ApprovedBy)

	bySupervisor, err := uc.Create(entity.RoleSupervisor, "EMP002", in)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, bySupervisor.Status, "el supervisor deja la pérdida pendiente")
	assert.Equal(t, "EMP002", bySupervisor.ApprovedBy)
}

func TestCreateLoss_FechaPorDefectoEsHoy(t *testing.T) {
	uc := buildLossUC()

	out, err := uc.Create(entity.RoleOwner, "EMP001", dto.CreateLossRequest{
		Amount: decimal.NewFromInt(50), Reason: "Faltante de caja",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), out.Date)
}

func TestCreateLoss_Validacion(t *testing.T) {
	uc := buildLossUC()

	_, err := uc.Create(entity.RoleOwner, "EMP001", dto.CreateLossRequest{Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "reason es obligatorio")

	_, err = uc.Create(entity.RoleOwner, "EMP001", dto.CreateLossRequest{Reason: "X", Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount debe ser positivo")

	_, err = uc.Create(entity.RoleOwner, "EMP001", dto.CreateLossRequest{Reason: "X", Amount: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListLosses_AcumulaTotal(t *testing.T) {
	uc := buildLossUC()

	_, err := uc.Create(entity.RoleOwner, "EMP001", dto.CreateLossRequest{Amount: decimal.NewFromInt(100), Reason: "a"})
	require.NoError(t, err)
	_, err = uc.Create(entity.RoleSupervisor, "EMP002", dto.CreateLossRequest{Amount: decimal.NewFromInt(50), Reason: "b"})
	require.NoError(t, err)

	out, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, out.Losses, 2)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(150)),
		"el total debe sumar todas las pérdidas, got %s", out.Total)
}
