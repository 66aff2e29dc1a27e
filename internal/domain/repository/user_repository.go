package repository

import "github.com/jhoicas/Estacion-api/internal/domain/entity"

// UserRepository puerto del directorio fijo de usuarios.
// No hay registro ni borrado: el directorio se siembra al arrancar.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
}
