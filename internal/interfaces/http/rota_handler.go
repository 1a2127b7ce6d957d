package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/application/usecase"
)

// RotaHandler trata as requisições HTTP de rotas de entrega (protegido).
type RotaHandler struct {
	uc *usecase.RotaUseCase
}

// NewRotaHandler constrói o handler.
func NewRotaHandler(uc *usecase.RotaUseCase) *RotaHandler {
	return &RotaHandler{uc: uc}
}

// Create godoc
// @Summary      Criar rota
// @Tags         rotas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRotaRequest  true  "Nome da rota"
// @Success      201   {object}  dto.RotaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rotas [post]
func (h *RotaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRotaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter rota por ID
// @Tags         rotas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da rota"
// @Success      200  {object}  dto.RotaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rotas/{id} [get]
func (h *RotaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rota não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar rotas
// @Tags         rotas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RotaResponse
// @Router       /api/rotas [get]
func (h *RotaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover rota
// @Tags         rotas
// @Security     Bearer
// @Param        id   path  string  true  "ID da rota"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rotas/{id} [delete]
func (h *RotaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
