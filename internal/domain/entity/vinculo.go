package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vinculo é o preço unitário específico de um cliente para um produto
// (no máximo um por par cliente×produto). Tem precedência sobre Produto.PrecoBase.
type Vinculo struct {
	ID        string
	ClienteID string
	ProdutoID string
	Preco     decimal.Decimal // deve ser > 0 na criação
	CreatedAt time.Time
	UpdatedAt time.Time
}
