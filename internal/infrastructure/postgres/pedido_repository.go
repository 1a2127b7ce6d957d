package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementação de PedidoRepository (usável com pool ou tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste o cabeçalho do pedido.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, chave, data, status, cliente_id, rota_id, valor_total, valor_efetivado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Chave, p.Data, p.Status, p.ClienteID, p.RotaID,
		p.ValorTotal, p.ValorEfetivado, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert pedido: chave duplicada: %w", err)
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha do pedido.
func (r *PedidoRepo) CreateItem(item *entity.PedidoItem) error {
	query := `
		INSERT INTO pedido_itens (id, pedido_id, produto_id, quantidade, embalagem, valor_unitario, comissao)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PedidoID, item.ProdutoID, item.Quantidade,
		item.Embalagem, item.ValorUnitario, item.Comissao,
	)
	if err != nil {
		return fmt.Errorf("insert pedido_item: %w", err)
	}
	return nil
}

// DeleteItens remove todos os itens do pedido (substituição do conjunto).
func (r *PedidoRepo) DeleteItens(pedidoID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pedido_itens WHERE pedido_id = $1`, pedidoID)
	if err != nil {
		return fmt.Errorf("delete pedido_itens: %w", err)
	}
	return nil
}

// UpdateHeader atualiza o cabeçalho guardado pelo status lido (CAS).
func (r *PedidoRepo) UpdateHeader(p *entity.Pedido, statusAtual string) (bool, error) {
	query := `
		UPDATE pedidos
		SET data = $2, status = $3, rota_id = $4, valor_total = $5, valor_efetivado = $6, updated_at = $7
		WHERE id = $1 AND status = $8`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Data, p.Status, p.RotaID, p.ValorTotal, p.ValorEfetivado, time.Now(), statusAtual,
	)
	if err != nil {
		return false, fmt.Errorf("update pedido: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// UpdateStatusCAS aplica a transição com compare-and-swap no status atual:
// um estado terminal alcançado por outra requisição nunca é sobrescrito.
func (r *PedidoRepo) UpdateStatusCAS(id, statusAtual, novoStatus string, valorEfetivado *decimal.Decimal) (bool, error) {
	query := `
		UPDATE pedidos
		SET status = $3, valor_efetivado = COALESCE($4, valor_efetivado), updated_at = now()
		WHERE id = $1 AND status = $2`
	cmd, err := r.q.Exec(context.Background(), query, id, statusAtual, novoStatus, valorEfetivado)
	if err != nil {
		return false, fmt.Errorf("update status pedido: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// GetByID obtém o pedido com seus itens.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `
		SELECT id, chave, data, status, cliente_id, rota_id, valor_total, valor_efetivado, created_at, updated_at
		FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Chave, &p.Data, &p.Status, &p.ClienteID, &p.RotaID,
		&p.ValorTotal, &p.ValorEfetivado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	itens, err := r.ListItens(p.ID)
	if err != nil {
		return nil, err
	}
	p.Itens = itens
	return &p, nil
}

// ListItens lista os itens de um pedido.
func (r *PedidoRepo) ListItens(pedidoID string) ([]entity.PedidoItem, error) {
	query := `
		SELECT id, pedido_id, produto_id, quantidade, embalagem, valor_unitario, comissao
		FROM pedido_itens WHERE pedido_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list pedido_itens: %w", err)
	}
	defer rows.Close()
	var itens []entity.PedidoItem
	for rows.Next() {
		var item entity.PedidoItem
		if err := rows.Scan(&item.ID, &item.PedidoID, &item.ProdutoID, &item.Quantidade,
			&item.Embalagem, &item.ValorUnitario, &item.Comissao); err != nil {
			return nil, fmt.Errorf("scan pedido_item: %w", err)
		}
		itens = append(itens, item)
	}
	return itens, rows.Err()
}

// List listagem não paginada com filtros opcionais (itens não carregados).
func (r *PedidoRepo) List(f repository.PedidoFiltro) ([]*entity.Pedido, error) {
	query := `
		SELECT id, chave, data, status, cliente_id, rota_id, valor_total, valor_efetivado, created_at, updated_at
		FROM pedidos WHERE 1=1`
	args := []any{}
	n := 0
	if f.Status != "" {
		n++
		query += fmt.Sprintf(" AND status = $%d", n)
		args = append(args, f.Status)
	}
	if f.Data != nil {
		n++
		query += fmt.Sprintf(" AND data = $%d", n)
		args = append(args, *f.Data)
	}
	if f.RotaID != "" {
		n++
		query += fmt.Sprintf(" AND rota_id = $%d", n)
		args = append(args, f.RotaID)
	}
	if f.ClienteID != "" {
		n++
		query += fmt.Sprintf(" AND cliente_id = $%d", n)
		args = append(args, f.ClienteID)
	}
	query += " ORDER BY data DESC, created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	return scanPedidos(rows)
}

// ListPaginado busca paginada por chave ou cliente. q chega normalizada sem
// acentos; o nome do cliente é normalizado no SQL via translate para o match.
func (r *PedidoRepo) ListPaginado(q, status string, limit, offset int) ([]*entity.Pedido, int, error) {
	where := `
		FROM pedidos p
		JOIN clientes c ON c.id = p.cliente_id
		WHERE ($1 = ''
			OR p.chave ILIKE '%' || $1 || '%'
			OR c.codigo ILIKE '%' || $1 || '%'
			OR translate(lower(c.nome), 'áàâãäéèêëíìîïóòôõöúùûüç', 'aaaaaeeeeiiiiooooouuuuc') LIKE '%' || $1 || '%')
		AND ($2 = '' OR p.status = $2)`

	var total int
	err := r.q.QueryRow(context.Background(), "SELECT count(*) "+where, q, status).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count pedidos: %w", err)
	}

	query := `
		SELECT p.id, p.chave, p.data, p.status, p.cliente_id, p.rota_id, p.valor_total, p.valor_efetivado, p.created_at, p.updated_at ` +
		where + ` ORDER BY p.data DESC, p.created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, q, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list pedidos paginado: %w", err)
	}
	defer rows.Close()
	list, err := scanPedidos(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByPeriodo devolve os pedidos do período, ascendente por data, para o
// extrato (ordem estável para datas iguais via created_at).
func (r *PedidoRepo) ListByPeriodo(inicio, fim time.Time, clienteID, status string) ([]*entity.Pedido, error) {
	query := `
		SELECT id, chave, data, status, cliente_id, rota_id, valor_total, valor_efetivado, created_at, updated_at
		FROM pedidos
		WHERE data >= $1 AND data <= $2
		AND ($3 = '' OR cliente_id = $3)
		AND ($4 = '' OR status = $4)
		ORDER BY data ASC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, inicio, fim, clienteID, status)
	if err != nil {
		return nil, fmt.Errorf("list pedidos por período: %w", err)
	}
	defer rows.Close()
	return scanPedidos(rows)
}

func scanPedidos(rows pgx.Rows) ([]*entity.Pedido, error) {
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.Chave, &p.Data, &p.Status, &p.ClienteID, &p.RotaID,
			&p.ValorTotal, &p.ValorEfetivado, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
