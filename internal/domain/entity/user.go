package entity

import "time"

// Roles disponíveis.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa um usuário da aplicação (autenticação).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Nome         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
