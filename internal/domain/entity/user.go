package entity

import "time"

// Estados de usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User dueño de los datos (tenant). Su ID particiona todas las colecciones.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	DisplayName  string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
