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

// VinculoUseCase gestão dos vínculos de preço cliente×produto que alimentam
// a resolução de preços dos pedidos.
type VinculoUseCase struct {
	vinculoRepo repository.VinculoRepository
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
}

// NewVinculoUseCase constrói o caso de uso.
func NewVinculoUseCase(vinculoRepo repository.VinculoRepository, clienteRepo repository.ClienteRepository, produtoRepo repository.ProdutoRepository) *VinculoUseCase {
	return &VinculoUseCase{vinculoRepo: vinculoRepo, clienteRepo: clienteRepo, produtoRepo: produtoRepo}
}

// Create cria um vínculo. Preço zero ou em branco é rejeitado na borda;
// par cliente×produto duplicado vira conflito.
func (uc *VinculoUseCase) Create(in dto.CreateVinculoRequest) (*dto.VinculoResponse, error) {
	if in.ClienteID == "" || in.ProdutoID == "" {
		return nil, domain.NewValidationError("cliente_id e produto_id são obrigatórios")
	}
	if !in.Preco.IsPositive() {
		return nil, domain.NewValidationError("preco deve ser maior que zero")
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("cliente %s: %w", in.ClienteID, domain.ErrNotFound)
	}
	produto, err := uc.produtoRepo.GetByID(in.ProdutoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, fmt.Errorf("produto %s: %w", in.ProdutoID, domain.ErrNotFound)
	}

	existing, err := uc.vinculoRepo.GetByClienteProduto(in.ClienteID, in.ProdutoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("vínculo já existe para o par: %w", domain.ErrDuplicate)
	}

	now := time.Now()
	v := &entity.Vinculo{
		ID:        uuid.New().String(),
		ClienteID: in.ClienteID,
		ProdutoID: in.ProdutoID,
		Preco:     in.Preco,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.vinculoRepo.Create(v); err != nil {
		return nil, err
	}
	return toVinculoResponse(v), nil
}

// UpdatePreco altera o preço de um vínculo existente.
func (uc *VinculoUseCase) UpdatePreco(id string, preco decimal.Decimal) (*dto.VinculoResponse, error) {
	if !preco.IsPositive() {
		return nil, domain.NewValidationError("preco deve ser maior que zero")
	}
	v, err := uc.vinculoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("vínculo %s: %w", id, domain.ErrNotFound)
	}
	if err := uc.vinculoRepo.UpdatePreco(id, preco); err != nil {
		return nil, err
	}
	v.Preco = preco
	v.UpdatedAt = time.Now()
	return toVinculoResponse(v), nil
}

// Delete remove um vínculo; pedidos futuros voltam ao preço base.
func (uc *VinculoUseCase) Delete(id string) error {
	v, err := uc.vinculoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("vínculo %s: %w", id, domain.ErrNotFound)
	}
	return uc.vinculoRepo.Delete(id)
}

// ListByCliente lista os vínculos de um cliente.
func (uc *VinculoUseCase) ListByCliente(clienteID string) ([]dto.VinculoResponse, error) {
	list, err := uc.vinculoRepo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VinculoResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVinculoResponse(v))
	}
	return out, nil
}

func toVinculoResponse(v *entity.Vinculo) *dto.VinculoResponse {
	if v == nil {
		return nil
	}
	return &dto.VinculoResponse{
		ID:        v.ID,
		ClienteID: v.ClienteID,
		ProdutoID: v.ProdutoID,
		Preco:     v.Preco,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
