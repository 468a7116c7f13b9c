package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleComite   = "comite" // comité CSR: aprueba/rechaza actividades
	RoleEmpleado = "empleado"
)

// User representa un usuario del sistema. Un usuario con perfil CSR
// referencia su EmployeeProfile vía ProfileID.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, comite, empleado
	ProfileID    string // perfil CSR asociado (vacío si aún no se crea)
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
