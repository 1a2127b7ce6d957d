package dto

import "time"

// CreateRotaRequest entrada para criar uma rota.
type CreateRotaRequest struct {
	Nome string `json:"nome" validate:"required"`
}

// RotaResponse saída de uma rota.
type RotaResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
