package pedido

import (
	"context"

	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// TxRunner executa fn com um PedidoRepository atado a uma transação.
// Substituição de itens e escrita do cabeçalho são tudo-ou-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(pedidos repository.PedidoRepository) error) error
}

// PedidoPDFGenerator gera o romaneio de um pedido em PDF.
type PedidoPDFGenerator interface {
	GeneratePedidoPDF(ctx context.Context, p *entity.Pedido, cliente *entity.Cliente, produtos map[string]*entity.Produto) ([]byte, error)
}
