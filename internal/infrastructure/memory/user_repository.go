package memory

import (
	"strings"

	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador sobre el Store compartido.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create agrega un usuario al directorio.
func (r *UserRepo) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u := *user
	r.store.users = append(r.store.users, &u)
	return nil
}

// GetByID busca por id. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

// FindByEmail busca por email exacto (case-insensitive, como escribe el móvil).
// Devuelve (nil, nil) si no existe: el caso de uso decide no distinguir
// "email desconocido" de "contraseña incorrecta".
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todos los usuarios.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}
