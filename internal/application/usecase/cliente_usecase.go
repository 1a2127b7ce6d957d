package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// ClienteUseCase CRUD de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cria um cliente. Código duplicado vira conflito.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Codigo == "" || in.Nome == "" {
		return nil, domain.NewValidationError("codigo e nome são obrigatórios")
	}
	existing, _ := uc.repo.GetByCodigo(in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Cliente{
		ID:        uuid.New().String(),
		Codigo:    in.Codigo,
		Nome:      in.Nome,
		RotaID:    in.RotaID,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID obtém um cliente por ID.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toClienteResponse(c), nil
}

// Update atualiza um cliente (campos opcionais).
func (uc *ClienteUseCase) Update(id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Nome != nil {
		c.Nome = *in.Nome
	}
	if in.RotaID != nil {
		c.RotaID = in.RotaID
	}
	if in.Ativo != nil {
		c.Ativo = *in.Ativo
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// List lista clientes com paginação.
func (uc *ClienteUseCase) List(limit, offset int) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClienteResponse(c))
	}
	return out, nil
}

// Delete remove um cliente por ID.
func (uc *ClienteUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:        c.ID,
		Codigo:    c.Codigo,
		Nome:      c.Nome,
		RotaID:    c.RotaID,
		Ativo:     c.Ativo,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
