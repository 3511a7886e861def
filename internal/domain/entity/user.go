package entity

import "time"

// Roles válidos para User. Cualquier otro valor leído de la base se trata como RoleNone.
const (
	RoleAdmin      Role = "ADMIN"
	RoleProducts   Role = "PRODUCTOS"
	RoleWarehouses Role = "ALMACENES"
	RoleNone       Role = ""
)

// Role es el rol de un usuario; enumeración cerrada.
type Role string

// ParseRole normaliza el texto guardado en la columna rol.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleProducts, RoleWarehouses:
		return Role(s)
	default:
		return RoleNone
	}
}

// String implementa fmt.Stringer.
func (r Role) String() string {
	if r == RoleNone {
		return "SIN ROL"
	}
	return string(r)
}

// User representa una cuenta del sistema. Se crea en el bootstrap y solo cambia al iniciar sesión.
type User struct {
	ID           int64
	Name         string
	PasswordHash string // bcrypt; las cuentas antiguas guardan SHA-256 hex
	Role         Role
	LastLogin    *time.Time
}
