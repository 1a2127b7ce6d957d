package pedido

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	dompedido "github.com/vendapp/pedidos-api/internal/domain/pedido"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// Create cria um pedido: resolve preços ausentes, valida e calcula o total
// do conjunto de itens, gera a chave legível e persiste cabeçalho e itens em
// uma única transação. Status omisso vira EM_ESPERA; criar já como EFETIVADO
// captura valor_efetivado igual ao total calculado.
func (uc *PedidoUseCase) Create(ctx context.Context, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	if in.ClienteID == "" {
		return nil, domain.NewValidationError("cliente_id é obrigatório")
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("cliente %s: %w", in.ClienteID, domain.ErrNotFound)
	}

	data, err := parseData(in.Data)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = dompedido.StatusEmEspera
	}
	if !dompedido.IsValidStatus(status) {
		return nil, domain.NewValidationError(fmt.Sprintf("status %q desconhecido", status))
	}

	itens, err := uc.montarItens(in.ClienteID, in.Itens)
	if err != nil {
		return nil, err
	}
	total, err := dompedido.ComputeTotals(itens)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &entity.Pedido{
		ID:         uuid.New().String(),
		Chave:      dompedido.NovaChave(),
		Data:       data,
		Status:     status,
		ClienteID:  in.ClienteID,
		RotaID:     in.RotaID,
		ValorTotal: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if p.RotaID == nil {
		p.RotaID = cliente.RotaID // rota do cliente como padrão
	}
	if status == dompedido.StatusEfetivado {
		v := total
		p.ValorEfetivado = &v
	}
	for i := range itens {
		itens[i].ID = uuid.New().String()
		itens[i].PedidoID = p.ID
	}
	p.Itens = itens

	err = uc.txRunner.Run(ctx, func(pedidos repository.PedidoRepository) error {
		if err := pedidos.Create(p); err != nil {
			return err
		}
		for i := range p.Itens {
			if err := pedidos.CreateItem(&p.Itens[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPedidoResponse(p, 0), nil
}
