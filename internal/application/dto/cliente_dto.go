package dto

import "time"

// CreateClienteRequest entrada para criar um cliente.
type CreateClienteRequest struct {
	Codigo string  `json:"codigo" validate:"required"`
	Nome   string  `json:"nome" validate:"required"`
	RotaID *string `json:"rota_id"`
}

// UpdateClienteRequest entrada para atualizar um cliente (campos opcionais).
type UpdateClienteRequest struct {
	Nome   *string `json:"nome"`
	RotaID *string `json:"rota_id"`
	Ativo  *bool   `json:"ativo"`
}

// ClienteResponse saída de um cliente.
type ClienteResponse struct {
	ID        string    `json:"id"`
	Codigo    string    `json:"codigo"`
	Nome      string    `json:"nome"`
	RotaID    *string   `json:"rota_id,omitempty"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
