package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
)

// PedidoFiltro filtros da listagem não paginada de pedidos.
// Um Status que não corresponda a nenhum estado conhecido é tratado como
// ausência de filtro (pass-through) pelo caso de uso.
type PedidoFiltro struct {
	Status    string
	Data      *time.Time
	RotaID    string
	ClienteID string
}

// PedidoRepository define o porto de persistência para Pedido e seus itens.
// As escritas de criação/atualização são usadas dentro de uma transação
// (via TxRunner) para que cabeçalho e itens sejam atômicos.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	CreateItem(item *entity.PedidoItem) error
	// DeleteItens remove todos os itens do pedido (substituição do conjunto).
	DeleteItens(pedidoID string) error
	// UpdateHeader atualiza data, rota, status, valores e updated_at, guardado
	// pelo status lido (compare-and-swap). Devolve false quando nenhuma linha
	// foi afetada (uma transição concorrente venceu).
	UpdateHeader(pedido *entity.Pedido, statusAtual string) (bool, error)
	// UpdateStatusCAS aplica a transição com compare-and-swap no status atual.
	// Devolve false quando nenhuma linha foi afetada (transição concorrente
	// venceu ou o pedido não existe mais nesse estado).
	UpdateStatusCAS(id, statusAtual, novoStatus string, valorEfetivado *decimal.Decimal) (bool, error)
	GetByID(id string) (*entity.Pedido, error)
	ListItens(pedidoID string) ([]entity.PedidoItem, error)
	List(f PedidoFiltro) ([]*entity.Pedido, error)
	// ListPaginado busca por chave/cliente (q normalizado sem acentos) com paginação.
	ListPaginado(q, status string, limit, offset int) ([]*entity.Pedido, int, error)
	// ListByPeriodo devolve os pedidos (com itens omitidos) do período para o extrato.
	ListByPeriodo(inicio, fim time.Time, clienteID, status string) ([]*entity.Pedido, error)
}
