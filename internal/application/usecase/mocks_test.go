package usecase_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dublês em memória — só os métodos exercitados têm comportamento real
// ──────────────────────────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[string]*entity.Pedido
}

func newStubPedidoRepo(pedidos ...*entity.Pedido) *stubPedidoRepo {
	m := &stubPedidoRepo{pedidos: make(map[string]*entity.Pedido)}
	for _, p := range pedidos {
		m.pedidos[p.ID] = p
	}
	return m
}

func (r *stubPedidoRepo) Create(*entity.Pedido) error          { return nil }
func (r *stubPedidoRepo) CreateItem(*entity.PedidoItem) error  { return nil }
func (r *stubPedidoRepo) DeleteItens(string) error             { return nil }
func (r *stubPedidoRepo) UpdateHeader(*entity.Pedido, string) (bool, error) {
	return true, nil
}
func (r *stubPedidoRepo) UpdateStatusCAS(string, string, string, *decimal.Decimal) (bool, error) {
	return true, nil
}
func (r *stubPedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	return r.pedidos[id], nil
}
func (r *stubPedidoRepo) ListItens(string) ([]entity.PedidoItem, error) { return nil, nil }
func (r *stubPedidoRepo) List(repository.PedidoFiltro) ([]*entity.Pedido, error) {
	return nil, nil
}
func (r *stubPedidoRepo) ListPaginado(string, string, int, int) ([]*entity.Pedido, int, error) {
	return nil, 0, nil
}
func (r *stubPedidoRepo) ListByPeriodo(time.Time, time.Time, string, string) ([]*entity.Pedido, error) {
	return nil, nil
}

type stubProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func (r *stubProdutoRepo) Create(*entity.Produto) error { return nil }
func (r *stubProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return r.produtos[id], nil
}
func (r *stubProdutoRepo) GetByCodigo(string) (*entity.Produto, error) { return nil, nil }
func (r *stubProdutoRepo) Update(*entity.Produto) error                { return nil }
func (r *stubProdutoRepo) List(int, int) ([]*entity.Produto, error)    { return nil, nil }
func (r *stubProdutoRepo) Delete(string) error                         { return nil }

type stubClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func (r *stubClienteRepo) Create(*entity.Cliente) error { return nil }
func (r *stubClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.clientes[id], nil
}
func (r *stubClienteRepo) GetByCodigo(string) (*entity.Cliente, error) { return nil, nil }
func (r *stubClienteRepo) Update(*entity.Cliente) error                { return nil }
func (r *stubClienteRepo) List(int, int) ([]*entity.Cliente, error)    { return nil, nil }
func (r *stubClienteRepo) Delete(string) error                         { return nil }

type stubTrocaRepo struct {
	trocas []*entity.Troca
}

func (r *stubTrocaRepo) Create(t *entity.Troca) error { r.trocas = append(r.trocas, t); return nil }
func (r *stubTrocaRepo) GetByID(id string) (*entity.Troca, error) {
	for _, t := range r.trocas {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r *stubTrocaRepo) Delete(id string) error {
	out := r.trocas[:0]
	for _, t := range r.trocas {
		if t.ID != id {
			out = append(out, t)
		}
	}
	r.trocas = out
	return nil
}
func (r *stubTrocaRepo) ListByPedido(pedidoID string) ([]*entity.Troca, error) {
	var out []*entity.Troca
	for _, t := range r.trocas {
		if t.PedidoID == pedidoID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *stubTrocaRepo) ListByPeriodo(inicio, fim time.Time) ([]*entity.Troca, error) {
	var out []*entity.Troca
	for _, t := range r.trocas {
		if t.CreatedAt.Before(inicio) || t.CreatedAt.After(fim) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
func (r *stubTrocaRepo) CountByPedido(pedidoID string) (int, error) {
	list, _ := r.ListByPedido(pedidoID)
	return len(list), nil
}

type stubVinculoRepo struct {
	vinculos []*entity.Vinculo
}

func (r *stubVinculoRepo) Create(v *entity.Vinculo) error {
	r.vinculos = append(r.vinculos, v)
	return nil
}
func (r *stubVinculoRepo) GetByID(id string) (*entity.Vinculo, error) {
	for _, v := range r.vinculos {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}
func (r *stubVinculoRepo) GetByClienteProduto(clienteID, produtoID string) (*entity.Vinculo, error) {
	for _, v := range r.vinculos {
		if v.ClienteID == clienteID && v.ProdutoID == produtoID {
			return v, nil
		}
	}
	return nil, nil
}
func (r *stubVinculoRepo) UpdatePreco(id string, preco decimal.Decimal) error {
	for _, v := range r.vinculos {
		if v.ID == id {
			v.Preco = preco
		}
	}
	return nil
}
func (r *stubVinculoRepo) ListByCliente(clienteID string) ([]*entity.Vinculo, error) {
	var out []*entity.Vinculo
	for _, v := range r.vinculos {
		if v.ClienteID == clienteID {
			out = append(out, v)
		}
	}
	return out, nil
}
func (r *stubVinculoRepo) Delete(id string) error {
	out := r.vinculos[:0]
	for _, v := range r.vinculos {
		if v.ID != id {
			out = append(out, v)
		}
	}
	r.vinculos = out
	return nil
}
