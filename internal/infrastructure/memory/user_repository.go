package memory

import (
	"strings"
	"sync"

	"github.com/okasc/intranet-api/internal/domain"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository directorio de usuarios en memoria. A diferencia de los registros,
// los usuarios se agregan al final y su ID es numérico (máximo + 1).
type UserRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

// NewUserRepository crea el directorio con la semilla dada.
func NewUserRepository(seed ...entity.User) *UserRepository {
	users := make([]entity.User, len(seed))
	copy(users, seed)
	return &UserRepository{users: users}
}

func (r *UserRepository) Create(build func(id int64) *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for i := range r.users {
		if r.users[i].ID > maxID {
			maxID = r.users[i].ID
		}
	}
	u := build(maxID + 1)
	if u == nil {
		return nil, errNilRecord
	}
	if r.indexByEmail(u.Email) >= 0 {
		return nil, domain.ErrEmailAlreadyExists
	}
	r.users = append(r.users, *u)
	out := *u
	return &out, nil
}

func (r *UserRepository) GetByID(id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Update aplica mutate sobre una copia del usuario y la guarda si no hay error.
// Leer y escribir bajo el mismo lock evita que dos cambios simultáneos se pisen.
func (r *UserRepository) Update(id int64, mutate func(*entity.User) error) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			if err := mutate(&u); err != nil {
				return nil, err
			}
			r.users[i] = u
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.User, 0, len(r.users))
	for i := range r.users {
		u := r.users[i]
		out = append(out, &u)
	}
	return out, nil
}

// indexByEmail requiere el lock tomado.
func (r *UserRepository) indexByEmail(email string) int {
	email = strings.TrimSpace(email)
	if email == "" {
		return -1
	}
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			return i
		}
	}
	return -1
}
