package repository

import "github.com/vendapp/pedidos-api/internal/domain/entity"

// ClienteRepository define o porto de persistência para Cliente (DIP).
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByCodigo(codigo string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	List(limit, offset int) ([]*entity.Cliente, error)
	Delete(id string) error
}
