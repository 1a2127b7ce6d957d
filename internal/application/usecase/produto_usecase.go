package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// ProdutoUseCase CRUD de produtos do catálogo.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cria um produto. Código duplicado vira conflito.
func (uc *ProdutoUseCase) Create(in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Codigo == "" || in.Nome == "" {
		return nil, domain.NewValidationError("codigo e nome são obrigatórios")
	}
	if in.PrecoBase.IsNegative() {
		return nil, domain.NewValidationError("preco_base não pode ser negativo")
	}
	existing, _ := uc.repo.GetByCodigo(in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Embalagem == "" {
		in.Embalagem = "un"
	}
	now := time.Now()
	p := &entity.Produto{
		ID:        uuid.New().String(),
		Codigo:    in.Codigo,
		Nome:      in.Nome,
		Embalagem: in.Embalagem,
		PrecoBase: in.PrecoBase,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// GetByID obtém um produto por ID.
func (uc *ProdutoUseCase) GetByID(id string) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProdutoResponse(p), nil
}

// Update atualiza um produto (campos opcionais).
func (uc *ProdutoUseCase) Update(id string, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Nome != nil {
		p.Nome = *in.Nome
	}
	if in.Embalagem != nil {
		p.Embalagem = *in.Embalagem
	}
	if in.PrecoBase != nil {
		if in.PrecoBase.IsNegative() {
			return nil, domain.NewValidationError("preco_base não pode ser negativo")
		}
		p.PrecoBase = *in.PrecoBase
	}
	if in.Ativo != nil {
		p.Ativo = *in.Ativo
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// List lista produtos com paginação.
func (uc *ProdutoUseCase) List(limit, offset int) ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProdutoResponse(p))
	}
	return out, nil
}

// Delete remove um produto por ID.
func (uc *ProdutoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProdutoResponse{
		ID:        p.ID,
		Codigo:    p.Codigo,
		Nome:      p.Nome,
		Embalagem: p.Embalagem,
		PrecoBase: p.PrecoBase,
		Ativo:     p.Ativo,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
