package auth

import (
	"errors"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/application/usecase"
	"github.com/okasc/intranet-api/internal/domain"
	"github.com/okasc/intranet-api/internal/domain/repository"
	"github.com/okasc/intranet-api/pkg/jwt"
	"github.com/okasc/intranet-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: selector de usuario y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// LoginUsers lista de la pantalla de login (sin email ni rol).
func (uc *AuthUseCase) LoginUsers() ([]dto.LoginUserOption, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoginUserOption, 0, len(users))
	for _, u := range users {
		out = append(out, dto.LoginUserOption{ID: u.ID, Name: u.Name, Title: u.Title, Avatar: u.Avatar})
	}
	return out, nil
}

// Login verifica usuario/contraseña, genera JWT y retorna token + usuario.
// Usuario inexistente y contraseña incorrecta devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByID(in.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := password.Verify(user.PasswordHash, in.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *usecase.ToUserResponse(user),
	}, nil
}
