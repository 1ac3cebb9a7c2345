package entity

import "time"

// Usuario representa una cuenta de acceso al back-office.
// Separado de Empleado: un empleado no necesariamente tiene login.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Nombre       string
	Rol          string // por defecto administrador
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
