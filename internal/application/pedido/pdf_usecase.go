package pedido

import (
	"context"
	"fmt"

	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// PDFUseCase monta os dados e delega a geração do romaneio do pedido.
type PDFUseCase struct {
	pedidoRepo  repository.PedidoRepository
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
	generator   PedidoPDFGenerator
}

// NewPDFUseCase constrói o caso de uso de PDF.
func NewPDFUseCase(
	pedidoRepo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
	generator PedidoPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		pedidoRepo:  pedidoRepo,
		clienteRepo: clienteRepo,
		produtoRepo: produtoRepo,
		generator:   generator,
	}
}

// Generate devolve os bytes do PDF do pedido.
func (uc *PDFUseCase) Generate(ctx context.Context, pedidoID string) ([]byte, error) {
	p, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("pedido %s: %w", pedidoID, domain.ErrNotFound)
	}
	cliente, err := uc.clienteRepo.GetByID(p.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("cliente %s: %w", p.ClienteID, domain.ErrNotFound)
	}

	produtos := make(map[string]*entity.Produto, len(p.Itens))
	for _, item := range p.Itens {
		if _, ok := produtos[item.ProdutoID]; ok {
			continue
		}
		produto, err := uc.produtoRepo.GetByID(item.ProdutoID)
		if err != nil {
			return nil, err
		}
		if produto != nil {
			produtos[item.ProdutoID] = produto
		}
	}
	return uc.generator.GeneratePedidoPDF(ctx, p, cliente, produtos)
}
