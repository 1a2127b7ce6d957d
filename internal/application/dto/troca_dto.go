package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTrocaRequest entrada para registrar uma troca.
type CreateTrocaRequest struct {
	PedidoID   string          `json:"pedido_id" validate:"required"`
	ItemID     *string         `json:"item_id"`
	ProdutoID  string          `json:"produto_id" validate:"required"`
	Quantidade decimal.Decimal `json:"quantidade"`
	ValorTroca decimal.Decimal `json:"valor_troca"`
	Motivo     string          `json:"motivo"`
}

// TrocaResponse saída de uma troca.
type TrocaResponse struct {
	ID         string          `json:"id"`
	PedidoID   string          `json:"pedido_id"`
	ItemID     *string         `json:"item_id,omitempty"`
	ProdutoID  string          `json:"produto_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
	ValorTroca decimal.Decimal `json:"valor_troca"`
	Motivo     string          `json:"motivo"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TrocaListResponse lista de trocas com o total agregado do período.
type TrocaListResponse struct {
	Items      []TrocaResponse `json:"items"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}
