package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"     // administra el registro y los usuarios
	RoleAsistente = "asistente" // consulta e importa, sin eliminar
)

// User representa un usuario del sistema (registro mono-empresa, sin tenant).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, asistente
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
