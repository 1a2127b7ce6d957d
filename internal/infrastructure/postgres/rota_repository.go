package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

var _ repository.RotaRepository = (*RotaRepo)(nil)

// RotaRepo implementação de RotaRepository sobre PostgreSQL.
type RotaRepo struct {
	q Querier
}

// NewRotaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewRotaRepository(q Querier) *RotaRepo {
	return &RotaRepo{q: q}
}

// Create persiste uma nova rota.
func (r *RotaRepo) Create(rota *entity.Rota) error {
	query := `INSERT INTO rotas (id, nome, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, rota.ID, rota.Nome, rota.CreatedAt, rota.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert rota: %w", err)
	}
	return nil
}

// GetByID obtém uma rota por ID.
func (r *RotaRepo) GetByID(id string) (*entity.Rota, error) {
	var rota entity.Rota
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nome, created_at, updated_at FROM rotas WHERE id = $1`, id,
	).Scan(&rota.ID, &rota.Nome, &rota.CreatedAt, &rota.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rota: %w", err)
	}
	return &rota, nil
}

// Update atualiza uma rota existente.
func (r *RotaRepo) Update(rota *entity.Rota) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE rotas SET nome = $2, updated_at = $3 WHERE id = $1`,
		rota.ID, rota.Nome, rota.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rota: %w", err)
	}
	return nil
}

// List lista todas as rotas.
func (r *RotaRepo) List() ([]*entity.Rota, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nome, created_at, updated_at FROM rotas ORDER BY nome ASC`)
	if err != nil {
		return nil, fmt.Errorf("list rotas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rota
	for rows.Next() {
		var rota entity.Rota
		if err := rows.Scan(&rota.ID, &rota.Nome, &rota.CreatedAt, &rota.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rota: %w", err)
		}
		list = append(list, &rota)
	}
	return list, rows.Err()
}

// Delete remove uma rota por ID.
func (r *RotaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rotas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rota: %w", err)
	}
	return nil
}
