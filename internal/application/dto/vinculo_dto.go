package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVinculoRequest entrada para criar um vínculo de preço cliente×produto.
type CreateVinculoRequest struct {
	ClienteID string          `json:"cliente_id" validate:"required"`
	ProdutoID string          `json:"produto_id" validate:"required"`
	Preco     decimal.Decimal `json:"preco"`
}

// UpdateVinculoRequest entrada para alterar o preço de um vínculo.
type UpdateVinculoRequest struct {
	Preco decimal.Decimal `json:"preco"`
}

// VinculoResponse saída de um vínculo.
type VinculoResponse struct {
	ID        string          `json:"id"`
	ClienteID string          `json:"cliente_id"`
	ProdutoID string          `json:"produto_id"`
	Preco     decimal.Decimal `json:"preco"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
