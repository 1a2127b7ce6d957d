package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest entrada para criar um produto.
type CreateProdutoRequest struct {
	Codigo    string          `json:"codigo" validate:"required"`
	Nome      string          `json:"nome" validate:"required"`
	Embalagem string          `json:"embalagem"`
	PrecoBase decimal.Decimal `json:"preco_base"`
}

// UpdateProdutoRequest entrada para atualizar um produto (campos opcionais).
type UpdateProdutoRequest struct {
	Nome      *string          `json:"nome"`
	Embalagem *string          `json:"embalagem"`
	PrecoBase *decimal.Decimal `json:"preco_base"`
	Ativo     *bool            `json:"ativo"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID        string          `json:"id"`
	Codigo    string          `json:"codigo"`
	Nome      string          `json:"nome"`
	Embalagem string          `json:"embalagem"`
	PrecoBase decimal.Decimal `json:"preco_base"`
	Ativo     bool            `json:"ativo"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
