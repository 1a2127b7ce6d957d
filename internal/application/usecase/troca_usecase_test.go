package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/application/usecase"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	dompedido "github.com/vendapp/pedidos-api/internal/domain/pedido"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func novoTrocaUC(pedidos ...*entity.Pedido) (*usecase.TrocaUseCase, *stubTrocaRepo) {
	trocaRepo := &stubTrocaRepo{}
	pedidoRepo := newStubPedidoRepo(pedidos...)
	produtoRepo := &stubProdutoRepo{produtos: map[string]*entity.Produto{
		"p1": {ID: "p1", Codigo: "PR001", Nome: "Farinha 1kg", PrecoBase: dec("10.00")},
	}}
	return usecase.NewTrocaUseCase(trocaRepo, pedidoRepo, produtoRepo), trocaRepo
}

func pedidoComItem(id, status string) *entity.Pedido {
	return &entity.Pedido{
		ID:         id,
		Chave:      "PED-" + id,
		Status:     status,
		ClienteID:  "c1",
		ValorTotal: dec("46.50"),
		Itens: []entity.PedidoItem{
			{ID: "item-1", PedidoID: id, ProdutoID: "p1", Quantidade: dec("3"), ValorUnitario: dec("15.50")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de trocas
// ──────────────────────────────────────────────────────────────────────────────

func TestTrocaCreate_Basico(t *testing.T) {
	uc, _ := novoTrocaUC(pedidoComItem("ped-1", dompedido.StatusEmEspera))

	out, err := uc.Create(dto.CreateTrocaRequest{
		PedidoID:   "ped-1",
		ProdutoID:  "p1",
		Quantidade: dec("2"),
		ValorTroca: dec("20.00"),
		Motivo:     "produto vencido",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ped-1", out.PedidoID)
	assert.True(t, out.ValorTroca.Equal(dec("20.00")))
}

// Trocas não têm restrição de status: pedido EFETIVADO (terminal) aceita troca.
func TestTrocaCreate_PedidoTerminalAceito(t *testing.T) {
	uc, _ := novoTrocaUC(pedidoComItem("ped-1", dompedido.StatusEfetivado))

	_, err := uc.Create(dto.CreateTrocaRequest{
		PedidoID:   "ped-1",
		ProdutoID:  "p1",
		Quantidade: dec("1"),
		ValorTroca: dec("5.00"),
	})
	require.NoError(t, err)
}

// A troca nunca altera o valor_total do pedido de origem.
func TestTrocaCreate_NaoMutaPedido(t *testing.T) {
	p := pedidoComItem("ped-1", dompedido.StatusEfetivado)
	uc, _ := novoTrocaUC(p)

	_, err := uc.Create(dto.CreateTrocaRequest{
		PedidoID:   "ped-1",
		ProdutoID:  "p1",
		Quantidade: dec("3"),
		ValorTroca: dec("46.50"),
	})
	require.NoError(t, err)
	assert.True(t, p.ValorTotal.Equal(dec("46.50")), "valor_total do pedido intocado")
}

func TestTrocaCreate_ItemDeveSerDoPedido(t *testing.T) {
	uc, _ := novoTrocaUC(pedidoComItem("ped-1", dompedido.StatusEmEspera))

	outro := "item-de-outro-pedido"
	_, err := uc.Create(dto.CreateTrocaRequest{
		PedidoID:   "ped-1",
		ItemID:     &outro,
		ProdutoID:  "p1",
		Quantidade: dec("1"),
		ValorTroca: dec("1.00"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	valido := "item-1"
	_, err = uc.Create(dto.CreateTrocaRequest{
		PedidoID:   "ped-1",
		ItemID:     &valido,
		ProdutoID:  "p1",
		Quantidade: dec("1"),
		ValorTroca: dec("1.00"),
	})
	require.NoError(t, err)
}

func TestTrocaCreate_Validacoes(t *testing.T) {
	uc, _ := novoTrocaUC(pedidoComItem("ped-1", dompedido.StatusEmEspera))

	_, err := uc.Create(dto.CreateTrocaRequest{ProdutoID: "p1", Quantidade: dec("1")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "pedido_id obrigatório")

	_, err = uc.Create(dto.CreateTrocaRequest{PedidoID: "ped-1", ProdutoID: "p1", Quantidade: dec("0")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "quantidade > 0")

	_, err = uc.Create(dto.CreateTrocaRequest{PedidoID: "ped-1", ProdutoID: "p1", Quantidade: dec("1"), ValorTroca: dec("-1")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "valor_troca >= 0")

	_, err = uc.Create(dto.CreateTrocaRequest{PedidoID: "fantasma", ProdutoID: "p1", Quantidade: dec("1")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Remoção e relatório
// ──────────────────────────────────────────────────────────────────────────────

func TestTrocaDelete(t *testing.T) {
	uc, repo := novoTrocaUC(pedidoComItem("ped-1", dompedido.StatusEmEspera))
	out, err := uc.Create(dto.CreateTrocaRequest{
		PedidoID: "ped-1", ProdutoID: "p1", Quantidade: dec("1"), ValorTroca: dec("2.00"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID))
	assert.Empty(t, repo.trocas)

	err = uc.Delete(out.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTrocaListByPeriodo_AgregaValorTotal(t *testing.T) {
	uc, repo := novoTrocaUC(pedidoComItem("ped-1", dompedido.StatusEmEspera))
	agora := time.Now()
	repo.trocas = []*entity.Troca{
		{ID: "t1", PedidoID: "ped-1", ProdutoID: "p1", Quantidade: dec("1"), ValorTroca: dec("10.00"), CreatedAt: agora},
		{ID: "t2", PedidoID: "ped-1", ProdutoID: "p1", Quantidade: dec("2"), ValorTroca: dec("5.50"), CreatedAt: agora},
	}

	out, err := uc.ListByPeriodo(agora.Add(-time.Hour), agora.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.True(t, out.ValorTotal.Equal(dec("15.50")))
}
