package entity

import "time"

// Cliente representa um cliente da distribuidora.
// Codigo é o código externo único usado pelos vendedores em campo.
type Cliente struct {
	ID        string
	Codigo    string
	Nome      string
	RotaID    *string // rota de entrega (opcional)
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
