package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/pkg/jwt"
)

// Locals keys para la identidad extraída del token en Fiber.
const (
	LocalUserID     = "user_id"
	LocalSessionID  = "session_id"
	LocalRole       = "role"
	LocalEmployeeID = "employee_id"
	LocalCustomerID = "customer_id"
)

// sessionChecker es el contrato mínimo que necesita el middleware para
// verificar que la sesión del token no fue cerrada. Lo implementa
// *auth.AuthUseCase; el uso de interfaz evita acoplar el middleware al caso de uso.
type sessionChecker interface {
	IsAuthenticated(sessionID string) bool
}

// AuthMiddleware valida el Bearer Token JWT, verifica que la sesión siga viva
// y extrae la identidad a c.Locals. Un JWT criptográficamente válido cuya
// sesión fue cerrada con logout se rechaza igual que un token inválido.
func AuthMiddleware(jwtSecret string, sessions sessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if !sessions.IsAuthenticated(id.SessionID) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_REVOKED", Message: "la sesión fue cerrada, inicie sesión de nuevo"})
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalSessionID, id.SessionID)
		c.Locals(LocalRole, id.Role)
		c.Locals(LocalEmployeeID, id.EmployeeID)
		c.Locals(LocalCustomerID, id.CustomerID)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que permite el paso sólo a los roles
// indicados. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
func RequireRole(roles ...entity.Role) fiber.Handler {
	allowed := make(map[entity.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		role := entity.Role(GetRole(c))
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "rol no encontrado en el token"})
		}
		if !allowed[role] {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol '" + string(role) + "' no tiene acceso a esta operación"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetSessionID devuelve el SessionID del contexto.
func GetSessionID(c *fiber.Ctx) string {
	return localString(c, LocalSessionID)
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetEmployeeID devuelve el EmployeeID del contexto (vacío para clientes).
func GetEmployeeID(c *fiber.Ctx) string {
	return localString(c, LocalEmployeeID)
}

// GetCustomerID devuelve el CustomerID del contexto (vacío para empleados).
func GetCustomerID(c *fiber.Ctx) string {
	return localString(c, LocalCustomerID)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
