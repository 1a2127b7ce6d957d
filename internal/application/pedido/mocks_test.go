package pedido_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dublês em memória dos portos de persistência
// ──────────────────────────────────────────────────────────────────────────────

type memPedidoRepo struct {
	pedidos map[string]*entity.Pedido
	// forceCASFail simula uma transição concorrente vencendo a corrida.
	forceCASFail bool
}

func newMemPedidoRepo() *memPedidoRepo {
	return &memPedidoRepo{pedidos: make(map[string]*entity.Pedido)}
}

func (r *memPedidoRepo) Create(p *entity.Pedido) error {
	cp := *p
	cp.Itens = nil // itens entram via CreateItem, como no banco
	r.pedidos[p.ID] = &cp
	return nil
}

func (r *memPedidoRepo) CreateItem(item *entity.PedidoItem) error {
	p, ok := r.pedidos[item.PedidoID]
	if !ok {
		return nil
	}
	p.Itens = append(p.Itens, *item)
	return nil
}

func (r *memPedidoRepo) DeleteItens(pedidoID string) error {
	if p, ok := r.pedidos[pedidoID]; ok {
		p.Itens = nil
	}
	return nil
}

func (r *memPedidoRepo) UpdateHeader(p *entity.Pedido, statusAtual string) (bool, error) {
	atual, ok := r.pedidos[p.ID]
	if !ok || atual.Status != statusAtual || r.forceCASFail {
		return false, nil
	}
	cp := *p
	cp.Itens = atual.Itens
	r.pedidos[p.ID] = &cp
	return true, nil
}

func (r *memPedidoRepo) UpdateStatusCAS(id, statusAtual, novoStatus string, valorEfetivado *decimal.Decimal) (bool, error) {
	atual, ok := r.pedidos[id]
	if !ok || atual.Status != statusAtual || r.forceCASFail {
		return false, nil
	}
	atual.Status = novoStatus
	if valorEfetivado != nil {
		atual.ValorEfetivado = valorEfetivado
	}
	return true, nil
}

func (r *memPedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPedidoRepo) ListItens(pedidoID string) ([]entity.PedidoItem, error) {
	if p, ok := r.pedidos[pedidoID]; ok {
		return p.Itens, nil
	}
	return nil, nil
}

func (r *memPedidoRepo) List(f repository.PedidoFiltro) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range r.pedidos {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.ClienteID != "" && p.ClienteID != f.ClienteID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memPedidoRepo) ListPaginado(q, status string, limit, offset int) ([]*entity.Pedido, int, error) {
	list, err := r.List(repository.PedidoFiltro{Status: status})
	return list, len(list), err
}

func (r *memPedidoRepo) ListByPeriodo(inicio, fim time.Time, clienteID, status string) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range r.pedidos {
		if p.Data.Before(inicio) || p.Data.After(fim) {
			continue
		}
		if clienteID != "" && p.ClienteID != clienteID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type memClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func newMemClienteRepo(clientes ...*entity.Cliente) *memClienteRepo {
	m := &memClienteRepo{clientes: make(map[string]*entity.Cliente)}
	for _, c := range clientes {
		m.clientes[c.ID] = c
	}
	return m
}

func (r *memClienteRepo) Create(c *entity.Cliente) error { r.clientes[c.ID] = c; return nil }
func (r *memClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.clientes[id], nil
}
func (r *memClienteRepo) GetByCodigo(codigo string) (*entity.Cliente, error) {
	for _, c := range r.clientes {
		if c.Codigo == codigo {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memClienteRepo) Update(c *entity.Cliente) error { r.clientes[c.ID] = c; return nil }
func (r *memClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range r.clientes {
		out = append(out, c)
	}
	return out, nil
}
func (r *memClienteRepo) Delete(id string) error { delete(r.clientes, id); return nil }

type memProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func newMemProdutoRepo(produtos ...*entity.Produto) *memProdutoRepo {
	m := &memProdutoRepo{produtos: make(map[string]*entity.Produto)}
	for _, p := range produtos {
		m.produtos[p.ID] = p
	}
	return m
}

func (r *memProdutoRepo) Create(p *entity.Produto) error { r.produtos[p.ID] = p; return nil }
func (r *memProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return r.produtos[id], nil
}
func (r *memProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	for _, p := range r.produtos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProdutoRepo) Update(p *entity.Produto) error { r.produtos[p.ID] = p; return nil }
func (r *memProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range r.produtos {
		out = append(out, p)
	}
	return out, nil
}
func (r *memProdutoRepo) Delete(id string) error { delete(r.produtos, id); return nil }

type memVinculoRepo struct {
	vinculos []*entity.Vinculo
}

func (r *memVinculoRepo) Create(v *entity.Vinculo) error {
	r.vinculos = append(r.vinculos, v)
	return nil
}
func (r *memVinculoRepo) GetByID(id string) (*entity.Vinculo, error) {
	for _, v := range r.vinculos {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}
func (r *memVinculoRepo) GetByClienteProduto(clienteID, produtoID string) (*entity.Vinculo, error) {
	for _, v := range r.vinculos {
		if v.ClienteID == clienteID && v.ProdutoID == produtoID {
			return v, nil
		}
	}
	return nil, nil
}
func (r *memVinculoRepo) UpdatePreco(id string, preco decimal.Decimal) error {
	for _, v := range r.vinculos {
		if v.ID == id {
			v.Preco = preco
		}
	}
	return nil
}
func (r *memVinculoRepo) ListByCliente(clienteID string) ([]*entity.Vinculo, error) {
	var out []*entity.Vinculo
	for _, v := range r.vinculos {
		if v.ClienteID == clienteID {
			out = append(out, v)
		}
	}
	return out, nil
}
func (r *memVinculoRepo) Delete(id string) error {
	out := r.vinculos[:0]
	for _, v := range r.vinculos {
		if v.ID != id {
			out = append(out, v)
		}
	}
	r.vinculos = out
	return nil
}

type memTrocaRepo struct {
	trocas []*entity.Troca
}

func (r *memTrocaRepo) Create(t *entity.Troca) error { r.trocas = append(r.trocas, t); return nil }
func (r *memTrocaRepo) GetByID(id string) (*entity.Troca, error) {
	for _, t := range r.trocas {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r *memTrocaRepo) Delete(id string) error {
	out := r.trocas[:0]
	for _, t := range r.trocas {
		if t.ID != id {
			out = append(out, t)
		}
	}
	r.trocas = out
	return nil
}
func (r *memTrocaRepo) ListByPedido(pedidoID string) ([]*entity.Troca, error) {
	var out []*entity.Troca
	for _, t := range r.trocas {
		if t.PedidoID == pedidoID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *memTrocaRepo) ListByPeriodo(inicio, fim time.Time) ([]*entity.Troca, error) {
	var out []*entity.Troca
	for _, t := range r.trocas {
		if t.CreatedAt.Before(inicio) || t.CreatedAt.After(fim.Add(24*time.Hour)) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
func (r *memTrocaRepo) CountByPedido(pedidoID string) (int, error) {
	list, _ := r.ListByPedido(pedidoID)
	return len(list), nil
}

// fakeTxRunner executa fn diretamente contra o repositório em memória —
// suficiente para exercitar a orquestração sem banco.
type fakeTxRunner struct {
	repo *memPedidoRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.PedidoRepository) error) error {
	return fn(f.repo)
}
