package pedido

import (
	"github.com/shopspring/decimal"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// PriceResolver resolve o preço unitário a usar para um par cliente×produto:
// o vínculo específico do cliente tem precedência sobre o preço base do
// produto. Consulta pura, sem efeitos colaterais.
type PriceResolver struct {
	vinculoRepo repository.VinculoRepository
	produtoRepo repository.ProdutoRepository
}

// NewPriceResolver constrói o resolvedor.
func NewPriceResolver(vinculoRepo repository.VinculoRepository, produtoRepo repository.ProdutoRepository) *PriceResolver {
	return &PriceResolver{vinculoRepo: vinculoRepo, produtoRepo: produtoRepo}
}

// Resolve devolve o preço e ok=true quando houver vínculo ou preço base
// positivo. A ausência de resolução (ok=false) é um resultado válido: cabe ao
// chamador exigir um valor_unitario explícito na requisição.
func (r *PriceResolver) Resolve(clienteID, produtoID string) (decimal.Decimal, bool, error) {
	vinculo, err := r.vinculoRepo.GetByClienteProduto(clienteID, produtoID)
	if err != nil {
		return decimal.Zero, false, err
	}
	if vinculo != nil {
		return vinculo.Preco, true, nil
	}

	produto, err := r.produtoRepo.GetByID(produtoID)
	if err != nil {
		return decimal.Zero, false, err
	}
	if produto != nil && produto.PrecoBase.IsPositive() {
		return produto.PrecoBase, true, nil
	}
	return decimal.Zero, false, nil
}
