package repository

import "github.com/okasc/intranet-api/internal/domain/entity"

// UserRepository define el puerto del directorio de usuarios (DIP).
type UserRepository interface {
	// Create asigna el siguiente ID (máximo + 1) y se lo pasa a build.
	Create(build func(id int64) *entity.User) (*entity.User, error)
	// GetByID devuelve domain.ErrUserNotFound si no existe.
	GetByID(id int64) (*entity.User, error)
	// Update aplica mutate al usuario id de forma atómica; si mutate falla no cambia nada.
	Update(id int64, mutate func(*entity.User) error) (*entity.User, error)
	List() ([]*entity.User, error)
}
