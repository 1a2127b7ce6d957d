package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Troca registra um ajuste posterior ao pedido (produto devolvido ou
// substituído). É um registro auxiliar: nunca altera Pedido.ValorTotal.
type Troca struct {
	ID         string
	PedidoID   string
	ItemID     *string // item de origem (opcional)
	ProdutoID  string
	Quantidade decimal.Decimal // > 0
	ValorTroca decimal.Decimal // >= 0, valor devolvido/ajustado
	Motivo     string
	CreatedAt  time.Time
}
