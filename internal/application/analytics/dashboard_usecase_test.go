package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacion-api/internal/application/analytics"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/infrastructure/memory"
)

type dashboardFixture struct {
	uc         *analytics.DashboardUseCase
	attendance *memory.AttendanceRepo
	losses     *memory.LossRepo
	debits     *memory.DebitRepo
	advances   *memory.AdvanceRepo
}

func newDashboardFixture() *dashboardFixture {
	store := memory.NewStore()
	f := &dashboardFixture{
		attendance: memory.NewAttendanceRepository(store),
		losses:     memory.NewLossRepository(store),
		debits:     memory.NewDebitRepository(store),
		advances:   memory.NewAdvanceRepository(store),
	}
	f.uc = analytics.NewDashboardUseCase(f.attendance, f.losses, f.debits, f.advances)
	return f
}

// seedStation carga datos con fechas de HOY para los KPIs del día.
func (f *dashboardFixture) seedStation(t *testing.T) {
	t.Helper()
	today := time.Now().Format("2006-01-02")

	require.NoError(t, f.attendance.Create(&entity.AttendanceRecord{
		ID: "a1", EmployeeID: "EMP002", Date: today, CheckIn: "08:00",
		Status: entity.AttendancePresent,
	}))
	require.NoError(t, f.attendance.Create(&entity.AttendanceRecord{
		ID: "a2", EmployeeID: "EMP003", Date: today, CheckIn: "09:30",
		Status: entity.AttendanceLate,
	}))
	require.NoError(t, f.losses.Create(&entity.LossRecord{
		ID: "l1", Date: today, Amount: decimal.NewFromInt(100),
		Reason: "Derrame", Status: entity.StatusApproved,
	}))
	require.NoError(t, f.losses.Create(&entity.LossRecord{
		ID: "l2", Date: today, Amount: decimal.NewFromInt(50),
		Reason: "Faltante", Status: entity.StatusPending,
	}))
	require.NoError(t, f.debits.Create(&entity.CustomerDebit{
		ID: "d1", CustomerID: "CUST001", Date: today,
		Amount: decimal.NewFromInt(2500), Balance: decimal.NewFromInt(2500),
	}))
	require.NoError(t, f.advances.Create(&entity.AdvanceRecord{
		ID: "av1", EmployeeID: "EMP003", Date: today,
		Amount: decimal.NewFromInt(300), Status: entity.StatusPending,
	}))
}

// La forma del resumen depende del rol: el owner ve solo el bloque de estación.
func TestDashboard_OwnerVeEstacion(t *testing.T) {
	f := newDashboardFixture()
	f.seedStation(t)

	out, err := f.uc.GetSummary(analytics.Viewer{Role: entity.RoleOwner, EmployeeID: "EMP001"})
	require.NoError(t, err)

	require.NotNil(t, out.Station)
	assert.Nil(t, out.Personal, "el owner no lleva bloque personal")
	assert.Nil(t, out.Credit)

	assert.Equal(t, 2, out.Station.TodayAttendance)
	assert.True(t, out.Station.TotalLosses.Equal(decimal.NewFromInt(150)))
	assert.True(t, out.Station.TotalOutstanding.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 1, out.Station.PendingAdvances)
}

// El supervisor ve estación Y su bloque personal.
func TestDashboard_SupervisorVeEstacionYPersonal(t *testing.T) {
	f := newDashboardFixture()
	f.seedStation(t)

	out, err := f.uc.GetSummary(analytics.Viewer{Role: entity.RoleSupervisor, EmployeeID: "EMP002"})
	require.NoError(t, err)

	require.NotNil(t, out.Station)
	require.NotNil(t, out.Personal)
	assert.Equal(t, 1, out.Personal.PresentDays)
}

// El dsm solo ve su bloque personal; late cuenta como día trabajado.
func TestDashboard_DSMVePersonal(t *testing.T) {
	f := newDashboardFixture()
	f.seedStation(t)

	out, err := f.uc.GetSummary(analytics.Viewer{Role: entity.RoleDSM, EmployeeID: "EMP003"})
	require.NoError(t, err)

	assert.Nil(t, out.Station, "el dsm no ve KPIs de la estación")
	require.NotNil(t, out.Personal)
	assert.Equal(t, 1, out.Personal.PresentDays, "late cuenta como día trabajado")
	assert.True(t, out.Personal.TotalAdvances.Equal(decimal.NewFromInt(300)))
}

// El cliente ve su bloque de crédito: saldo y cargos del mes en curso.
func TestDashboard_ClienteVeCredito(t *testing.T) {
	f := newDashboardFixture()
	f.seedStation(t)

	out, err := f.uc.GetSummary(analytics.Viewer{Role: entity.RoleCustomer, CustomerID: "CUST001"})
	require.NoError(t, err)

	assert.Nil(t, out.Station)
	assert.Nil(t, out.Personal)
	require.NotNil(t, out.Credit)
	assert.True(t, out.Credit.Balance.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 1, out.Credit.DebitsThisMonth)
}

// Con el almacén vacío todos los agregados son cero, nunca error.
func TestDashboard_AlmacenVacio(t *testing.T) {
	f := newDashboardFixture()

	out, err := f.uc.GetSummary(analytics.Viewer{Role: entity.RoleOwner, EmployeeID: "EMP001"})
	require.NoError(t, err)
	require.NotNil(t, out.Station)
	assert.Zero(t, out.Station.TodayAttendance)
	assert.True(t, out.Station.TotalOutstanding.IsZero())
	assert.True(t, out.Station.TotalLosses.IsZero())
	assert.Zero(t, out.Station.PendingAdvances)
}
