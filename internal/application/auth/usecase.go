package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
	"github.com/jhoicas/Estacion-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación contra el directorio fijo de
// usuarios: login, logout e identidad actual. No hay registro de cuentas
// ni bloqueo por intentos: esto no es una frontera de seguridad real.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions *SessionRegistry
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions *SessionRegistry, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, jwtCfg: jwtCfg}
}

// Login busca el email exacto en el directorio y compara la contraseña con
// bcrypt. Devuelve domain.ErrUnauthorized en cualquier fallo de credenciales
// sin distinguir email desconocido de contraseña incorrecta (evita la
// enumeración de cuentas). En éxito registra la sesión y emite el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	sessionID := uuid.New().String()
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:     user.ID,
		SessionID:  sessionID,
		Role:       string(user.Role),
		EmployeeID: user.EmployeeID,
		CustomerID: user.CustomerID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.sessions.Register(sessionID, user.ID)

	return &dto.LoginResponse{
		Token:        token,
		User:         *toUserResponse(user),
		Capabilities: toCapabilitiesResponse(entity.CapabilitiesFor(user.Role)),
	}, nil
}

// Logout revoca la sesión incondicionalmente (logout sobre una sesión ya
// cerrada es no-op, nunca error).
func (uc *AuthUseCase) Logout(sessionID string) {
	uc.sessions.Revoke(sessionID)
}

// Current devuelve la identidad de la sesión, o domain.ErrSessionRevoked
// si la sesión fue cerrada.
func (uc *AuthUseCase) Current(sessionID string) (*dto.UserResponse, error) {
	userID, ok := uc.sessions.Active(sessionID)
	if !ok {
		return nil, domain.ErrSessionRevoked
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// IsAuthenticated reporta si la sesión sigue activa.
func (uc *AuthUseCase) IsAuthenticated(sessionID string) bool {
	_, ok := uc.sessions.Active(sessionID)
	return ok
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
		CustomerID: u.CustomerID,
		CreatedAt:  u.CreatedAt,
	}
}

func toCapabilitiesResponse(c entity.Capabilities) dto.CapabilitiesResponse {
	return dto.CapabilitiesResponse{
		ManageAttendance: c.ManageAttendance,
		PunchAttendance:  c.PunchAttendance,
		RecordLoss:       c.RecordLoss,
		RecordDebit:      c.RecordDebit,
		RequestAdvance:   c.RequestAdvance,
		ApproveAdvance:   c.ApproveAdvance,
		ManageSalary:     c.ManageSalary,
		ViewReports:      c.ViewReports,
		ViewOwnCredit:    c.ViewOwnCredit,
	}
}
