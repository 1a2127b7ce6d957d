package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL.
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, codigo, nome, embalagem, preco_base, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nome, p.Embalagem, p.PrecoBase, p.Ativo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return r.getOne(`SELECT id, codigo, nome, embalagem, preco_base, ativo, created_at, updated_at FROM produtos WHERE id = $1`, id)
}

// GetByCodigo obtém um produto pelo código.
func (r *ProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	return r.getOne(`SELECT id, codigo, nome, embalagem, preco_base, ativo, created_at, updated_at FROM produtos WHERE codigo = $1`, codigo)
}

func (r *ProdutoRepo) getOne(query string, arg any) (*entity.Produto, error) {
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Codigo, &p.Nome, &p.Embalagem, &p.PrecoBase, &p.Ativo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// Update atualiza um produto existente.
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, embalagem = $3, preco_base = $4, ativo = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Nome, p.Embalagem, p.PrecoBase, p.Ativo, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// List lista produtos com paginação.
func (r *ProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	query := `
		SELECT id, codigo, nome, embalagem, preco_base, ativo, created_at, updated_at
		FROM produtos ORDER BY nome ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nome, &p.Embalagem, &p.PrecoBase, &p.Ativo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete remove um produto por ID.
func (r *ProdutoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}
