package pedido

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
)

// ComputeTotals valida o conjunto completo de itens e calcula o valor total
// do pedido com aritmética decimal exata (sem arredondamento por item; o
// arredondamento monetário de duas casas é responsabilidade da apresentação).
//
// Todas as regras valem ou a operação inteira falha com um único
// ValidationError agregado — nunca aplicação parcial. A soma é comutativa:
// o resultado independe da ordem dos itens.
func ComputeTotals(itens []entity.PedidoItem) (decimal.Decimal, error) {
	if len(itens) == 0 {
		return decimal.Zero, domain.NewValidationError("o pedido deve ter pelo menos um item")
	}

	var problemas []string
	total := decimal.Zero
	for i, item := range itens {
		if item.ProdutoID == "" {
			problemas = append(problemas, fmt.Sprintf("item %d: produto_id é obrigatório", i+1))
		}
		if !item.Quantidade.IsPositive() {
			problemas = append(problemas, fmt.Sprintf("item %d: quantidade deve ser maior que zero", i+1))
		}
		if item.ValorUnitario.IsNegative() {
			problemas = append(problemas, fmt.Sprintf("item %d: valor_unitario não pode ser negativo", i+1))
		}
		total = total.Add(item.Quantidade.Mul(item.ValorUnitario))
	}
	if len(problemas) > 0 {
		return decimal.Zero, domain.NewValidationError(strings.Join(problemas, "; "))
	}
	return total, nil
}
