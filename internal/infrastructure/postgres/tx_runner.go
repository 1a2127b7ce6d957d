package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	apppedido "github.com/vendapp/pedidos-api/internal/application/pedido"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

var _ apppedido.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com o repositório de pedidos atado à
// tx e faz Commit ou Rollback. Substituição de itens e cabeçalho do pedido
// são tudo-ou-nada.
func (r *TxRunner) Run(ctx context.Context, fn func(pedidos repository.PedidoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pedidos := NewPedidoRepository(tx)

	if err := fn(pedidos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
