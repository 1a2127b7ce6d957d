package pedido

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/domain"
	dompedido "github.com/vendapp/pedidos-api/internal/domain/pedido"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// Update aplica o PUT do pedido: substitui o conjunto de itens (recalculando
// valor_total) e/ou aplica uma transição de status, tudo atomicamente na
// mesma transação. Pedidos em estado terminal rejeitam qualquer mutação.
func (uc *PedidoUseCase) Update(ctx context.Context, id string, in dto.UpdatePedidoRequest) (*dto.PedidoResponse, error) {
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("pedido %s: %w", id, domain.ErrNotFound)
	}
	if dompedido.IsTerminal(p.Status) {
		return nil, fmt.Errorf("pedido %s é terminal: %w", p.Status, domain.ErrConflict)
	}

	statusLido := p.Status // guarda para o compare-and-swap

	itensSubstituidos := false
	if in.Itens != nil {
		if !dompedido.PermiteAlterarItens(p.Status) {
			return nil, fmt.Errorf("itens não podem ser alterados em %s: %w", p.Status, domain.ErrConflict)
		}
		itens, err := uc.montarItens(p.ClienteID, *in.Itens)
		if err != nil {
			return nil, err
		}
		total, err := dompedido.ComputeTotals(itens)
		if err != nil {
			return nil, err
		}
		for i := range itens {
			itens[i].ID = uuid.New().String()
			itens[i].PedidoID = p.ID
		}
		p.Itens = itens
		p.ValorTotal = total
		itensSubstituidos = true
	}

	if in.Data != nil {
		data, err := parseData(*in.Data)
		if err != nil {
			return nil, err
		}
		p.Data = data
	}
	if in.RotaID != nil {
		p.RotaID = in.RotaID
	}

	if in.Status != nil && *in.Status != p.Status {
		// O PUT não transporta valor_efetivado: efetivar por aqui captura o
		// valor_total corrente (já recalculado se os itens mudaram).
		if err := uc.transicionar(p, *in.Status, nil); err != nil {
			return nil, err
		}
	}

	err = uc.txRunner.Run(ctx, func(pedidos repository.PedidoRepository) error {
		ok, err := pedidos.UpdateHeader(p, statusLido)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("pedido mudou de status durante a atualização: %w", domain.ErrConflict)
		}
		if itensSubstituidos {
			if err := pedidos.DeleteItens(p.ID); err != nil {
				return err
			}
			for i := range p.Itens {
				if err := pedidos.CreateItem(&p.Itens[i]); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	trocas, err := uc.trocaRepo.CountByPedido(p.ID)
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(p, trocas), nil
}

// ChangeStatus aplica o PATCH de status: só a transição, pela mesma tabela.
// Ao efetivar sem valor_efetivado explícito, captura o valor_total atual.
// A escrita é um compare-and-swap no status lido: se uma transição
// concorrente vencer, a requisição falha com conflito em vez de sobrescrever
// um estado terminal.
func (uc *PedidoUseCase) ChangeStatus(ctx context.Context, id string, in dto.ChangeStatusRequest) (*dto.PedidoResponse, error) {
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("pedido %s: %w", id, domain.ErrNotFound)
	}

	statusLido := p.Status
	if err := uc.transicionar(p, in.Status, in.ValorEfetivado); err != nil {
		return nil, err
	}

	ok, err := uc.pedidoRepo.UpdateStatusCAS(p.ID, statusLido, p.Status, p.ValorEfetivado)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("pedido mudou de status durante a transição: %w", domain.ErrConflict)
	}

	trocas, err := uc.trocaRepo.CountByPedido(p.ID)
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(p, trocas), nil
}
