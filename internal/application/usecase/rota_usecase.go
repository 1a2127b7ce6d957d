package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// RotaUseCase CRUD de rotas de entrega.
type RotaUseCase struct {
	repo repository.RotaRepository
}

// NewRotaUseCase constrói o caso de uso.
func NewRotaUseCase(repo repository.RotaRepository) *RotaUseCase {
	return &RotaUseCase{repo: repo}
}

// Create cria uma rota.
func (uc *RotaUseCase) Create(in dto.CreateRotaRequest) (*dto.RotaResponse, error) {
	if in.Nome == "" {
		return nil, domain.NewValidationError("nome é obrigatório")
	}
	now := time.Now()
	r := &entity.Rota{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toRotaResponse(r), nil
}

// GetByID obtém uma rota por ID.
func (uc *RotaUseCase) GetByID(id string) (*dto.RotaResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return toRotaResponse(r), nil
}

// List lista todas as rotas.
func (uc *RotaUseCase) List() ([]dto.RotaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RotaResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toRotaResponse(r))
	}
	return out, nil
}

// Delete remove uma rota por ID.
func (uc *RotaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toRotaResponse(r *entity.Rota) *dto.RotaResponse {
	if r == nil {
		return nil
	}
	return &dto.RotaResponse{
		ID:        r.ID,
		Nome:      r.Nome,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
