// Package password encapsula bcrypt para las credenciales del directorio de usuarios.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost coste de bcrypt; los tests lo bajan a bcrypt.MinCost.
var Cost = bcrypt.DefaultCost

// ErrMismatch la contraseña no corresponde al hash.
var ErrMismatch = errors.New("password: no coincide")

// Hash genera el hash bcrypt de plain.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(h), nil
}

// Verify compara plain con el hash almacenado.
func Verify(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return fmt.Errorf("password: verificar: %w", err)
	}
	return nil
}
