package usecase

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/domain"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/internal/domain/repository"
	"github.com/okasc/intranet-api/pkg/password"
)

// UserUseCase aplica reglas de negocio para el directorio de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Actor resuelve quién ejecuta la operación. El rol es el del token (fijado en el login),
// nombre y cargo los actuales del directorio.
func (uc *UserUseCase) Actor(userID int64, role entity.Role) (dto.Actor, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return dto.Actor{}, err
	}
	return dto.Actor{UserID: user.ID, Name: user.Name, Title: user.Title, Role: role}, nil
}

// List devuelve el directorio ordenado por nombre con reglas de ordenación polacas
// ("Łukasz" va después de "Lucyna", no al final).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	col := collate.New(language.Polish)
	sort.SliceStable(users, func(i, j int) bool {
		return col.CompareString(users[i].Name, users[j].Name) < 0
	})
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *ToUserResponse(u))
	}
	return out, nil
}

// Create da de alta un usuario. El email debe ser único (sin distinguir mayúsculas).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Role)
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	user, err := uc.repo.Create(func(id int64) *entity.User {
		return &entity.User{
			ID:           id,
			Name:         name,
			Title:        strings.TrimSpace(in.Title),
			Email:        strings.TrimSpace(in.Email),
			Avatar:       entity.AvatarURL(name),
			Role:         role,
			PasswordHash: hash,
		}
	})
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ChangeRole reasigna el rol. Surte efecto en el siguiente login del usuario.
func (uc *UserUseCase) ChangeRole(id int64, in dto.ChangeRoleRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Role)
	}
	user, err := uc.repo.Update(id, func(u *entity.User) error {
		u.Role = role
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ResetPassword fija una nueva contraseña.
func (uc *UserUseCase) ResetPassword(id int64, in dto.ResetPasswordRequest) error {
	hash, err := password.Hash(in.Password)
	if err != nil {
		return err
	}
	_, err = uc.repo.Update(id, func(u *entity.User) error {
		u.PasswordHash = hash
		return nil
	})
	return err
}

// ToUserResponse mapea la entidad a la salida pública (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Title:  u.Title,
		Email:  u.Email,
		Avatar: u.Avatar,
		Role:   string(u.Role),
	}
}
