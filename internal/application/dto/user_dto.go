package dto

// LoginRequest identificador + contraseña (la pantalla de login elige al usuario de una lista).
type LoginRequest struct {
	UserID   int64  `json:"user_id" validate:"required,min=1"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sesión y usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// LoginUserOption entrada del selector de usuario en la pantalla de login.
type LoginUserOption struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Avatar string `json:"avatar"`
}

// UserResponse salida de un usuario (sin credencial).
type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

// CreateUserRequest alta de usuario desde Zarządzanie użytkownikami.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"notblank,max=200"`
	Title    string `json:"title" validate:"notblank,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=Admin Manager Pracownik"`
}

// ChangeRoleRequest reasignación de rol.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=Admin Manager Pracownik"`
}

// ResetPasswordRequest nueva contraseña fijada por un administrador.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}
