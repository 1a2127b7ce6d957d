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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação de ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, codigo, nome, rota_id, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Codigo, c.Nome, c.RotaID, c.Ativo, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.getOne(`SELECT id, codigo, nome, rota_id, ativo, created_at, updated_at FROM clientes WHERE id = $1`, id)
}

// GetByCodigo obtém um cliente pelo código externo.
func (r *ClienteRepo) GetByCodigo(codigo string) (*entity.Cliente, error) {
	return r.getOne(`SELECT id, codigo, nome, rota_id, ativo, created_at, updated_at FROM clientes WHERE codigo = $1`, codigo)
}

func (r *ClienteRepo) getOne(query string, arg any) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Codigo, &c.Nome, &c.RotaID, &c.Ativo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// Update atualiza um cliente existente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nome = $2, rota_id = $3, ativo = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Nome, c.RotaID, c.Ativo, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// List lista clientes com paginação.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, codigo, nome, rota_id, ativo, created_at, updated_at
		FROM clientes ORDER BY nome ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Codigo, &c.Nome, &c.RotaID, &c.Ativo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete remove um cliente por ID.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
