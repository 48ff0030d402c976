package entity

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Role determina las páginas visibles y los permisos sobre solicitudes.
type Role string

// Roles válidos para User.
const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Pracownik"
)

// Roles lista en orden de mayor a menor privilegio.
var Roles = []Role{RoleAdmin, RoleManager, RoleEmployee}

// Valid indica si r es uno de los roles conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User representa una persona del directorio de la intranet. Nunca se elimina.
type User struct {
	ID           int64
	Name         string
	Title        string // stanowisko, p.ej. "Kierownik Biura"
	Email        string
	Avatar       string
	Role         Role
	PasswordHash string // bcrypt
}

const avatarBaseURL = "https://ui-avatars.com/api/"

// AvatarURL construye la URL de ui-avatars con los colores corporativos.
// Los diacríticos se pliegan a ASCII ("Strządała" -> "Strzadala").
func AvatarURL(name string) string {
	return avatarBaseURL + "?name=" + url.QueryEscape(foldASCII(name)) +
		"&background=d52b1e&color=fff&bold=true"
}

// ł/Ł no se descomponen en NFD y hay que sustituirlas a mano.
var strokeReplacer = strings.NewReplacer("ł", "l", "Ł", "L")

func foldASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strokeReplacer.Replace(s))
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}
