package entity

import "time"

// Roles válidos para User.
const (
	RoleClient = "client" // ve solo las órdenes de su empresa
	RoleStaff  = "staff"  // ve todas las órdenes y gestiona inventario
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Company      string // empresa a la que pertenece (vacío para staff interno)
	Role         string // client, staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
