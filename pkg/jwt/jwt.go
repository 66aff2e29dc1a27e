package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role viaja en el token para que el middleware RBAC decida sin consultar el store;
// EmployeeID/CustomerID permiten filtrar "mis" registros sin otra búsqueda.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"user_id"`
	SessionID  string `json:"session_id"`
	Role       string `json:"role"` // "owner" | "supervisor" | "dsm" | "customer"
	EmployeeID string `json:"employee_id,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
}

// Identity datos de identidad que viajan dentro del token.
type Identity struct {
	UserID     string
	SessionID  string
	Role       string
	EmployeeID string
	CustomerID string
}

// Generate genera un token JWT firmado con la identidad indicada.
func Generate(secret string, id Identity, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:     id.UserID,
		SessionID:  id.SessionID,
		Role:       id.Role,
		EmployeeID: id.EmployeeID,
		CustomerID: id.CustomerID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la identidad embebida.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("claims inválidos")
	}
	return Identity{
		UserID:     claims.UserID,
		SessionID:  claims.SessionID,
		Role:       claims.Role,
		EmployeeID: claims.EmployeeID,
		CustomerID: claims.CustomerID,
	}, nil
}
