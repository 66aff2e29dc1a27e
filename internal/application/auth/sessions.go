package auth

import (
	"sync"
	"time"
)

// SessionRegistry registro en memoria de sesiones activas (session id → user id).
// Dos estados por sesión: existe (autenticado) o no existe (no autenticado).
// login crea una entrada; logout la elimina incondicionalmente. Un nuevo login
// del mismo usuario crea otra sesión sin tocar las anteriores (el cliente móvil
// guarda un solo token, así que en la práctica la anterior queda huérfana y
// expira con el JWT).
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
}

type sessionEntry struct {
	UserID    string
	StartedAt time.Time
}

// NewSessionRegistry construye un registro vacío.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]sessionEntry)}
}

// Register da de alta una sesión.
func (r *SessionRegistry) Register(sessionID, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = sessionEntry{UserID: userID, StartedAt: time.Now()}
}

// Revoke elimina la sesión. Revocar una sesión inexistente no es error:
// logout es incondicional.
func (r *SessionRegistry) Revoke(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Active reporta si la sesión sigue viva y a qué usuario pertenece.
func (r *SessionRegistry) Active(sessionID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sessionID]
	return e.UserID, ok
}
