// Package memory implementa los repositorios del dominio sobre un almacén
// en memoria con ciclo de vida explícito: se construye una vez en main, se
// inyecta a los casos de uso y muere con el proceso. No hay durabilidad:
// todo el estado pertenece a la sesión de la aplicación (es el contrato del
// producto, no una limitación accidental).
package memory

import (
	"sync"

	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// Store dueño único de las cinco colecciones de negocio más el directorio
// de usuarios. El RWMutex protege las colecciones: a diferencia del cliente
// original (un solo hilo de UI), aquí los handlers atienden en paralelo.
type Store struct {
	mu sync.RWMutex

	users      []*entity.User
	attendance []*entity.AttendanceRecord
	salaries   []*entity.SalaryRecord
	losses     []*entity.LossRecord
	debits     []*entity.CustomerDebit
	advances   []*entity.AdvanceRecord
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{}
}

// Counts devuelve el tamaño de cada colección (para el log de arranque).
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"users":      len(s.users),
		"attendance": len(s.attendance),
		"salaries":   len(s.salaries),
		"losses":     len(s.losses),
		"debits":     len(s.debits),
		"advances":   len(s.advances),
	}
}
