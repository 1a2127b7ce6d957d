package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoItemRequest uma linha do pedido na criação/substituição.
// ValorUnitario é opcional: ausente, o preço é resolvido pelo vínculo
// cliente×produto ou pelo preço base do produto.
type PedidoItemRequest struct {
	ProdutoID     string           `json:"produto_id" validate:"required"`
	Quantidade    decimal.Decimal  `json:"quantidade"`
	Embalagem     string           `json:"embalagem"`
	ValorUnitario *decimal.Decimal `json:"valor_unitario"`
	Comissao      *decimal.Decimal `json:"comissao"`
}

// CreatePedidoRequest entrada para criar um pedido. Data no formato 2006-01-02.
type CreatePedidoRequest struct {
	ClienteID string              `json:"cliente_id" validate:"required"`
	RotaID    *string             `json:"rota_id"`
	Data      string              `json:"data" validate:"required"`
	Status    string              `json:"status"`
	Itens     []PedidoItemRequest `json:"itens" validate:"required,min=1"`
}

// UpdatePedidoRequest entrada para o PUT: substitui o conjunto de itens e/ou
// aplica uma transição de status, atomicamente, na mesma requisição.
type UpdatePedidoRequest struct {
	RotaID *string              `json:"rota_id"`
	Data   *string              `json:"data"`
	Status *string              `json:"status"`
	Itens  *[]PedidoItemRequest `json:"itens"`
}

// ChangeStatusRequest entrada para o PATCH de status.
// ValorEfetivado só é considerado ao efetivar; ausente, captura o valor_total atual.
type ChangeStatusRequest struct {
	Status         string           `json:"status" validate:"required"`
	ValorEfetivado *decimal.Decimal `json:"valor_efetivado"`
}

// PedidoItemResponse uma linha do pedido na resposta.
type PedidoItemResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	Embalagem     string          `json:"embalagem"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Comissao      decimal.Decimal `json:"comissao"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// PedidoResponse saída de um pedido.
type PedidoResponse struct {
	ID             string               `json:"id"`
	Chave          string               `json:"chave"`
	Data           string               `json:"data"`
	Status         string               `json:"status"`
	ClienteID      string               `json:"cliente_id"`
	RotaID         *string              `json:"rota_id,omitempty"`
	Itens          []PedidoItemResponse `json:"itens"`
	ValorTotal     decimal.Decimal      `json:"valor_total"`
	ValorEfetivado *decimal.Decimal     `json:"valor_efetivado,omitempty"`
	Trocas         int                  `json:"trocas"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// PedidoPaginadoResponse listagem paginada com busca.
type PedidoPaginadoResponse struct {
	Data       []PedidoResponse `json:"data"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}

// ExtratoEntryResponse uma linha do extrato com o saldo corrente.
type ExtratoEntryResponse struct {
	PedidoID       string          `json:"pedido_id"`
	Chave          string          `json:"chave"`
	Data           string          `json:"data"`
	Status         string          `json:"status"`
	ClienteID      string          `json:"cliente_id"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
	ValorMovimento decimal.Decimal `json:"valor_movimento"`
	SaldoAcumulado decimal.Decimal `json:"saldo_acumulado"`
	DataBaixa      *string         `json:"data_baixa,omitempty"`
}

// ExtratoResponse extrato do período mais o resumo para exibição.
type ExtratoResponse struct {
	Entries        []ExtratoEntryResponse `json:"entries"`
	TotalGeral     decimal.Decimal        `json:"total_geral"`
	TotalEfetivado decimal.Decimal        `json:"total_efetivado"`
	SaldoFinal     decimal.Decimal        `json:"saldo_final"`
}
