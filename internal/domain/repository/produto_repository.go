package repository

import "github.com/vendapp/pedidos-api/internal/domain/entity"

// ProdutoRepository define o porto de persistência para Produto (DIP).
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	GetByCodigo(codigo string) (*entity.Produto, error)
	Update(produto *entity.Produto) error
	List(limit, offset int) ([]*entity.Produto, error)
	Delete(id string) error
}
