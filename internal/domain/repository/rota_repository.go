package repository

import "github.com/vendapp/pedidos-api/internal/domain/entity"

// RotaRepository define o porto de persistência para Rota.
type RotaRepository interface {
	Create(rota *entity.Rota) error
	GetByID(id string) (*entity.Rota, error)
	Update(rota *entity.Rota) error
	List() ([]*entity.Rota, error)
	Delete(id string) error
}
