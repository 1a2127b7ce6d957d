package repository

import (
	"time"

	"github.com/vendapp/pedidos-api/internal/domain/entity"
)

// TrocaRepository define o porto de persistência para Troca.
type TrocaRepository interface {
	Create(troca *entity.Troca) error
	GetByID(id string) (*entity.Troca, error)
	Delete(id string) error
	ListByPedido(pedidoID string) ([]*entity.Troca, error)
	// ListByPeriodo alimenta o relatório /trocas.
	ListByPeriodo(inicio, fim time.Time) ([]*entity.Troca, error)
	CountByPedido(pedidoID string) (int, error)
}
