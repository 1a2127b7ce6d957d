package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

var _ repository.VinculoRepository = (*VinculoRepo)(nil)

// VinculoRepo implementação de VinculoRepository sobre PostgreSQL.
// A tabela cliente_produtos carrega unique (cliente_id, produto_id).
type VinculoRepo struct {
	q Querier
}

// NewVinculoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVinculoRepository(q Querier) *VinculoRepo {
	return &VinculoRepo{q: q}
}

// Create persiste um novo vínculo. Par duplicado vira ErrDuplicate.
func (r *VinculoRepo) Create(v *entity.Vinculo) error {
	query := `
		INSERT INTO cliente_produtos (id, cliente_id, produto_id, preco, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ClienteID, v.ProdutoID, v.Preco, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vinculo: %w", err)
	}
	return nil
}

// GetByID obtém um vínculo por ID.
func (r *VinculoRepo) GetByID(id string) (*entity.Vinculo, error) {
	return r.getOne(`SELECT id, cliente_id, produto_id, preco, created_at, updated_at FROM cliente_produtos WHERE id = $1`, id)
}

// GetByClienteProduto obtém o vínculo do par, ou nil se não existir.
func (r *VinculoRepo) GetByClienteProduto(clienteID, produtoID string) (*entity.Vinculo, error) {
	var v entity.Vinculo
	err := r.q.QueryRow(context.Background(),
		`SELECT id, cliente_id, produto_id, preco, created_at, updated_at
		FROM cliente_produtos WHERE cliente_id = $1 AND produto_id = $2`,
		clienteID, produtoID,
	).Scan(&v.ID, &v.ClienteID, &v.ProdutoID, &v.Preco, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vinculo por par: %w", err)
	}
	return &v, nil
}

func (r *VinculoRepo) getOne(query string, arg any) (*entity.Vinculo, error) {
	var v entity.Vinculo
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&v.ID, &v.ClienteID, &v.ProdutoID, &v.Preco, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vinculo: %w", err)
	}
	return &v, nil
}

// UpdatePreco altera somente o preço do vínculo.
func (r *VinculoRepo) UpdatePreco(id string, preco decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cliente_produtos SET preco = $2, updated_at = now() WHERE id = $1`,
		id, preco,
	)
	if err != nil {
		return fmt.Errorf("update preco vinculo: %w", err)
	}
	return nil
}

// ListByCliente lista os vínculos de um cliente.
func (r *VinculoRepo) ListByCliente(clienteID string) ([]*entity.Vinculo, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, cliente_id, produto_id, preco, created_at, updated_at
		FROM cliente_produtos WHERE cliente_id = $1 ORDER BY created_at ASC`, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list vinculos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vinculo
	for rows.Next() {
		var v entity.Vinculo
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.ProdutoID, &v.Preco, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vinculo: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Delete remove um vínculo por ID.
func (r *VinculoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cliente_produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vinculo: %w", err)
	}
	return nil
}
