// Package pedido implementa os casos de uso do motor de pedidos: criação,
// atualização (substituição de itens e/ou transição de status), consultas e
// extrato. A tabela de transições do domínio é a fonte única da verdade;
// este pacote apenas a despacha e aplica os efeitos colaterais persistidos.
package pedido

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	dompedido "github.com/vendapp/pedidos-api/internal/domain/pedido"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// dataLayout é o formato de data aceito nas requisições.
const dataLayout = "2006-01-02"

// PedidoUseCase casos de uso do pedido.
type PedidoUseCase struct {
	txRunner    TxRunner
	pedidoRepo  repository.PedidoRepository
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
	trocaRepo   repository.TrocaRepository
	resolver    *PriceResolver
}

// NewPedidoUseCase constrói o caso de uso.
func NewPedidoUseCase(
	txRunner TxRunner,
	pedidoRepo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
	trocaRepo repository.TrocaRepository,
	resolver *PriceResolver,
) *PedidoUseCase {
	return &PedidoUseCase{
		txRunner:    txRunner,
		pedidoRepo:  pedidoRepo,
		clienteRepo: clienteRepo,
		produtoRepo: produtoRepo,
		trocaRepo:   trocaRepo,
		resolver:    resolver,
	}
}

// transicionar aplica a transição ao pedido em memória segundo a tabela do
// domínio e captura valor_efetivado na efetivação (valor do chamador ou
// valor_total atual). Única porta de entrada para mudança de status: tanto o
// PUT combinado quanto o PATCH passam por aqui.
func (uc *PedidoUseCase) transicionar(p *entity.Pedido, novoStatus string, valorEfetivado *decimal.Decimal) error {
	if err := dompedido.ValidateTransition(p.Status, novoStatus); err != nil {
		return err
	}
	if (novoStatus == dompedido.StatusConferir || novoStatus == dompedido.StatusEfetivado) && len(p.Itens) == 0 {
		return domain.NewValidationError("o pedido precisa de pelo menos um item para " + novoStatus)
	}
	if novoStatus == dompedido.StatusEfetivado {
		v := p.ValorTotal
		if valorEfetivado != nil {
			v = *valorEfetivado
		}
		p.ValorEfetivado = &v
	}
	p.Status = novoStatus
	return nil
}

// montarItens converte as linhas da requisição em itens do pedido,
// resolvendo o preço unitário ausente via vínculo ou preço base. Falhas de
// referência/resolução são agregadas em um único erro de validação.
func (uc *PedidoUseCase) montarItens(clienteID string, reqs []dto.PedidoItemRequest) ([]entity.PedidoItem, error) {
	if len(reqs) == 0 {
		return nil, domain.NewValidationError("o pedido deve ter pelo menos um item")
	}
	var problemas []string
	itens := make([]entity.PedidoItem, 0, len(reqs))
	for i, req := range reqs {
		if req.ProdutoID == "" {
			problemas = append(problemas, fmt.Sprintf("item %d: produto_id é obrigatório", i+1))
			continue
		}
		produto, err := uc.produtoRepo.GetByID(req.ProdutoID)
		if err != nil {
			return nil, err
		}
		if produto == nil {
			problemas = append(problemas, fmt.Sprintf("item %d: produto %s não existe", i+1, req.ProdutoID))
			continue
		}

		item := entity.PedidoItem{
			ProdutoID:  req.ProdutoID,
			Quantidade: req.Quantidade,
			Embalagem:  req.Embalagem,
		}
		if item.Embalagem == "" {
			item.Embalagem = produto.Embalagem
		}
		if req.Comissao != nil {
			item.Comissao = *req.Comissao
		}
		if req.ValorUnitario != nil {
			item.ValorUnitario = *req.ValorUnitario
		} else {
			preco, ok, err := uc.resolver.Resolve(clienteID, req.ProdutoID)
			if err != nil {
				return nil, err
			}
			if !ok {
				problemas = append(problemas, fmt.Sprintf("item %d: produto %s sem preço resolvível; informe valor_unitario", i+1, produto.Codigo))
				continue
			}
			item.ValorUnitario = preco
		}
		itens = append(itens, item)
	}
	if len(problemas) > 0 {
		return nil, domain.NewValidationError(joinProblemas(problemas))
	}
	return itens, nil
}

func joinProblemas(ps []string) string {
	out := ps[0]
	for _, p := range ps[1:] {
		out += "; " + p
	}
	return out
}

func parseData(s string) (time.Time, error) {
	t, err := time.Parse(dataLayout, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError("data inválida, use o formato " + dataLayout)
	}
	return t, nil
}
