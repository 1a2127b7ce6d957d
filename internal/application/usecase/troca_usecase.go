package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// TrocaUseCase registro e consulta de trocas (ajustes pós-pedido).
// Trocas são registros auxiliares: nunca alteram o valor_total do pedido e
// podem ser lançadas em qualquer estado do pedido, inclusive terminal — são
// ajustes físicos posteriores ao fato.
type TrocaUseCase struct {
	trocaRepo   repository.TrocaRepository
	pedidoRepo  repository.PedidoRepository
	produtoRepo repository.ProdutoRepository
}

// NewTrocaUseCase constrói o caso de uso.
func NewTrocaUseCase(trocaRepo repository.TrocaRepository, pedidoRepo repository.PedidoRepository, produtoRepo repository.ProdutoRepository) *TrocaUseCase {
	return &TrocaUseCase{trocaRepo: trocaRepo, pedidoRepo: pedidoRepo, produtoRepo: produtoRepo}
}

// Create registra uma troca vinculada a um pedido existente.
func (uc *TrocaUseCase) Create(in dto.CreateTrocaRequest) (*dto.TrocaResponse, error) {
	if in.PedidoID == "" || in.ProdutoID == "" {
		return nil, domain.NewValidationError("pedido_id e produto_id são obrigatórios")
	}
	if !in.Quantidade.IsPositive() {
		return nil, domain.NewValidationError("quantidade deve ser maior que zero")
	}
	if in.ValorTroca.IsNegative() {
		return nil, domain.NewValidationError("valor_troca não pode ser negativo")
	}

	p, err := uc.pedidoRepo.GetByID(in.PedidoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("pedido %s: %w", in.PedidoID, domain.ErrNotFound)
	}
	produto, err := uc.produtoRepo.GetByID(in.ProdutoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, fmt.Errorf("produto %s: %w", in.ProdutoID, domain.ErrNotFound)
	}
	if in.ItemID != nil {
		achou := false
		for _, item := range p.Itens {
			if item.ID == *in.ItemID {
				achou = true
				break
			}
		}
		if !achou {
			return nil, fmt.Errorf("item %s não pertence ao pedido: %w", *in.ItemID, domain.ErrNotFound)
		}
	}

	troca := &entity.Troca{
		ID:         uuid.New().String(),
		PedidoID:   in.PedidoID,
		ItemID:     in.ItemID,
		ProdutoID:  in.ProdutoID,
		Quantidade: in.Quantidade,
		ValorTroca: in.ValorTroca,
		Motivo:     in.Motivo,
		CreatedAt:  time.Now(),
	}
	if err := uc.trocaRepo.Create(troca); err != nil {
		return nil, err
	}
	return toTrocaResponse(troca), nil
}

// Delete remove uma troca incondicionalmente.
func (uc *TrocaUseCase) Delete(id string) error {
	t, err := uc.trocaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("troca %s: %w", id, domain.ErrNotFound)
	}
	return uc.trocaRepo.Delete(id)
}

// ListByPeriodo lista as trocas do período com o valor agregado (relatório /trocas).
func (uc *TrocaUseCase) ListByPeriodo(inicio, fim time.Time) (*dto.TrocaListResponse, error) {
	list, err := uc.trocaRepo.ListByPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}
	out := &dto.TrocaListResponse{
		Items:      make([]dto.TrocaResponse, 0, len(list)),
		ValorTotal: decimal.Zero,
	}
	for _, t := range list {
		out.Items = append(out.Items, *toTrocaResponse(t))
		out.ValorTotal = out.ValorTotal.Add(t.ValorTroca)
	}
	return out, nil
}

// ListByPedido lista as trocas de um pedido.
func (uc *TrocaUseCase) ListByPedido(pedidoID string) ([]dto.TrocaResponse, error) {
	list, err := uc.trocaRepo.ListByPedido(pedidoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TrocaResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTrocaResponse(t))
	}
	return out, nil
}

func toTrocaResponse(t *entity.Troca) *dto.TrocaResponse {
	if t == nil {
		return nil
	}
	return &dto.TrocaResponse{
		ID:         t.ID,
		PedidoID:   t.PedidoID,
		ItemID:     t.ItemID,
		ProdutoID:  t.ProdutoID,
		Quantidade: t.Quantidade,
		ValorTroca: t.ValorTroca,
		Motivo:     t.Motivo,
		CreatedAt:  t.CreatedAt,
	}
}
