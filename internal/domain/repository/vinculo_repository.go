package repository

import (
	"github.com/shopspring/decimal"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
)

// VinculoRepository define o porto de persistência para os vínculos de preço
// cliente×produto que alimentam a resolução de preços.
type VinculoRepository interface {
	Create(vinculo *entity.Vinculo) error
	GetByID(id string) (*entity.Vinculo, error)
	// GetByClienteProduto devolve o vínculo do par, ou nil se não existir.
	GetByClienteProduto(clienteID, produtoID string) (*entity.Vinculo, error)
	UpdatePreco(id string, preco decimal.Decimal) error
	ListByCliente(clienteID string) ([]*entity.Vinculo, error)
	Delete(id string) error
}
