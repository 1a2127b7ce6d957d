package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

var _ repository.TrocaRepository = (*TrocaRepo)(nil)

// TrocaRepo implementação de TrocaRepository (usável com pool ou tx).
type TrocaRepo struct {
	q Querier
}

// NewTrocaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTrocaRepository(q Querier) *TrocaRepo {
	return &TrocaRepo{q: q}
}

// Create persiste uma troca.
func (r *TrocaRepo) Create(t *entity.Troca) error {
	query := `
		INSERT INTO trocas (id, pedido_id, item_id, produto_id, quantidade, valor_troca, motivo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.PedidoID, t.ItemID, t.ProdutoID, t.Quantidade, t.ValorTroca,
		nullIfEmpty(t.Motivo), t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert troca: %w", err)
	}
	return nil
}

// GetByID obtém uma troca por ID.
func (r *TrocaRepo) GetByID(id string) (*entity.Troca, error) {
	query := `
		SELECT id, pedido_id, item_id, produto_id, quantidade, valor_troca, COALESCE(motivo, ''), created_at
		FROM trocas WHERE id = $1`
	var t entity.Troca
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.PedidoID, &t.ItemID, &t.ProdutoID, &t.Quantidade, &t.ValorTroca, &t.Motivo, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get troca: %w", err)
	}
	return &t, nil
}

// Delete remove uma troca incondicionalmente.
func (r *TrocaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM trocas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete troca: %w", err)
	}
	return nil
}

// ListByPedido lista as trocas de um pedido.
func (r *TrocaRepo) ListByPedido(pedidoID string) ([]*entity.Troca, error) {
	query := `
		SELECT id, pedido_id, item_id, produto_id, quantidade, valor_troca, COALESCE(motivo, ''), created_at
		FROM trocas WHERE pedido_id = $1 ORDER BY created_at DESC`
	return r.list(query, pedidoID)
}

// ListByPeriodo lista as trocas do período (relatório /trocas).
func (r *TrocaRepo) ListByPeriodo(inicio, fim time.Time) ([]*entity.Troca, error) {
	query := `
		SELECT id, pedido_id, item_id, produto_id, quantidade, valor_troca, COALESCE(motivo, ''), created_at
		FROM trocas WHERE created_at >= $1 AND created_at < $2 + interval '1 day' ORDER BY created_at ASC`
	return r.list(query, inicio, fim)
}

// CountByPedido conta as trocas de um pedido (exibição junto ao pedido).
func (r *TrocaRepo) CountByPedido(pedidoID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM trocas WHERE pedido_id = $1`, pedidoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count trocas: %w", err)
	}
	return n, nil
}

func (r *TrocaRepo) list(query string, args ...any) ([]*entity.Troca, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trocas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Troca
	for rows.Next() {
		var t entity.Troca
		if err := rows.Scan(&t.ID, &t.PedidoID, &t.ItemID, &t.ProdutoID, &t.Quantidade,
			&t.ValorTroca, &t.Motivo, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan troca: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
