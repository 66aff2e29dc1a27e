package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacion-api/internal/application/auth"
	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/Estacion-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "password"
)

func buildAuthUC(t *testing.T) (*auth.AuthUseCase, *auth.SessionRegistry) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.SeedUsers(testPassword))
	sessions := auth.NewSessionRegistry()
	uc := auth.NewAuthUseCase(memory.NewUserRepository(store), sessions, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "estacion-test",
	})
	return uc, sessions
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: credenciales correctas del owner → token, rol y capacidades.
func TestLogin_OwnerConCredencialesCorrectas(t *testing.T) {
	uc, _ := buildAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "owner@pump.com", Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token, "el login debe emitir un JWT")

	assert.Equal(t, "owner", out.User.Role)
	assert.Equal(t, "John Owner", out.User.Name)
	assert.Equal(t, "EMP001", out.User.EmployeeID)
	assert.True(t, out.Capabilities.ApproveAdvance, "el owner aprueba adelantos")
	assert.True(t, out.Capabilities.ManageSalary, "el owner gestiona nómina")
	assert.False(t, out.Capabilities.ViewOwnCredit, "el owner no es cliente a crédito")

	// El token lleva la identidad completa.
	id, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, id.UserID)
	assert.Equal(t, "owner", id.Role)
	assert.NotEmpty(t, id.SessionID, "el token debe llevar session_id")
}

// Caso 2: el email no distingue mayúsculas.
func TestLogin_EmailCaseInsensitive(t *testing.T) {
	uc, _ := buildAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "OWNER@Pump.com", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, "owner", out.User.Role)
}

// Caso 3: contraseña incorrecta y email desconocido fallan con el MISMO error
// (no se puede enumerar el directorio).
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := buildAuthUC(t)

	_, errBadPass := uc.Login(dto.LoginRequest{Email: "owner@pump.com", Password: "incorrecta"})
	_, errNoUser := uc.Login(dto.LoginRequest{Email: "nadie@pump.com", Password: testPassword})

	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
}

// Caso 4: el cliente a crédito recibe sus capacidades, no las del empleado.
func TestLogin_ClienteRecibeCapacidadesDeCredito(t *testing.T) {
	uc, _ := buildAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "customer@email.com", Password: testPassword})
	require.NoError(t, err)

	assert.Equal(t, "customer", out.User.Role)
	assert.Equal(t, "CUST001", out.User.CustomerID)
	assert.True(t, out.Capabilities.ViewOwnCredit)
	assert.False(t, out.Capabilities.PunchAttendance, "el cliente no marca asistencia")
	assert.False(t, out.Capabilities.ViewReports)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Logout / sesión
// ──────────────────────────────────────────────────────────────────────────────

// El logout revoca la sesión en el servidor: el JWT sigue siendo válido
// criptográficamente pero la sesión ya no está activa.
func TestLogout_RevocaSesion(t *testing.T) {
	uc, _ := buildAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "dsm@pump.com", Password: testPassword})
	require.NoError(t, err)

	id, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	require.True(t, uc.IsAuthenticated(id.SessionID), "la sesión debe nacer activa")

	current, err := uc.Current(id.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "David DSM", current.Name)

	uc.Logout(id.SessionID)

	assert.False(t, uc.IsAuthenticated(id.SessionID), "logout debe revocar la sesión")
	_, err = uc.Current(id.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionRevoked)
}

// Logout de una sesión ya cerrada (o nunca abierta) es no-op, nunca panic ni error.
func TestLogout_Idempotente(t *testing.T) {
	uc, _ := buildAuthUC(t)

	uc.Logout("sesion-inexistente")
	uc.Logout("sesion-inexistente")
	assert.False(t, uc.IsAuthenticated("sesion-inexistente"))
}

// Dos logins del mismo usuario crean sesiones independientes: cerrar una no
// afecta a la otra.
func TestLogin_SesionesIndependientes(t *testing.T) {
	uc, _ := buildAuthUC(t)

	first, err := uc.Login(dto.LoginRequest{Email: "supervisor@pump.com", Password: testPassword})
	require.NoError(t, err)
	second, err := uc.Login(dto.LoginRequest{Email: "supervisor@pump.com", Password: testPassword})
	require.NoError(t, err)

	idFirst, err := pkgjwt.Parse(testSecret, first.Token)
	require.NoError(t, err)
	idSecond, err := pkgjwt.Parse(testSecret, second.Token)
	require.NoError(t, err)
	require.NotEqual(t, idFirst.SessionID, idSecond.SessionID)

	uc.Logout(idFirst.SessionID)

	assert.False(t, uc.IsAuthenticated(idFirst.SessionID))
	assert.True(t, uc.IsAuthenticated(idSecond.SessionID), "la segunda sesión debe seguir viva")
}
