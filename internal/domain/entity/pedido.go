package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pedido representa um pedido de venda composto por itens.
// ValorTotal é sempre derivado dos itens atuais (recalculado a cada
// substituição do conjunto, nunca editado à mão). ValorEfetivado só é
// preenchido na efetivação e captura o valor confirmado pelo operador.
type Pedido struct {
	ID             string
	Chave          string // chave legível gerada (ex. PED-3F6A2C1B)
	Data           time.Time
	Status         string // ver internal/domain/pedido.Status
	ClienteID      string
	RotaID         *string
	Itens          []PedidoItem
	ValorTotal     decimal.Decimal
	ValorEfetivado *decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PedidoItem é uma linha do pedido. Pertence exclusivamente ao pedido e é
// substituído como conjunto completo na atualização, nunca campo a campo.
type PedidoItem struct {
	ID            string
	PedidoID      string
	ProdutoID     string
	Quantidade    decimal.Decimal // > 0
	Embalagem     string          // informativo
	ValorUnitario decimal.Decimal // >= 0
	Comissao      decimal.Decimal // informativo, default 0
}

// Subtotal devolve quantidade × valor unitário da linha.
func (i PedidoItem) Subtotal() decimal.Decimal {
	return i.Quantidade.Mul(i.ValorUnitario)
}
