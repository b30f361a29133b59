package entity

import "time"

// User representa un usuario del dashboard. Cada usuario tiene su propio
// espacio de trabajo: clientes, proyectos y facturas le pertenecen.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
