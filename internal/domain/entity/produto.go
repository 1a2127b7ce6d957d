package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um produto do catálogo.
// PrecoBase é o preço unitário padrão; vínculos cliente-produto podem sobrepô-lo.
type Produto struct {
	ID        string
	Codigo    string // código único do produto
	Nome      string
	Embalagem string // unidade de embalagem padrão (cx, fd, un...)
	PrecoBase decimal.Decimal
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
