package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/application/usecase"
)

// VinculoHandler trata os vínculos de preço cliente×produto (protegido).
type VinculoHandler struct {
	uc *usecase.VinculoUseCase
}

// NewVinculoHandler constrói o handler.
func NewVinculoHandler(uc *usecase.VinculoUseCase) *VinculoHandler {
	return &VinculoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar vínculo de preço cliente×produto
// @Tags         cliente-produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVinculoRequest  true  "cliente_id, produto_id, preco"
// @Success      201   {object}  dto.VinculoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cliente-produtos [post]
func (h *VinculoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVinculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.ClienteID == "" || in.ProdutoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente_id e produto_id são obrigatórios"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePreco godoc
// @Summary      Alterar o preço de um vínculo
// @Tags         cliente-produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do vínculo"
// @Param        body  body  dto.UpdateVinculoRequest  true  "preco"
// @Success      200   {object}  dto.VinculoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cliente-produtos/{id} [put]
func (h *VinculoHandler) UpdatePreco(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateVinculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdatePreco(id, in.Preco)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover vínculo
// @Tags         cliente-produtos
// @Security     Bearer
// @Param        id   path  string  true  "ID do vínculo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cliente-produtos/{id} [delete]
func (h *VinculoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByCliente godoc
// @Summary      Listar vínculos de preço de um cliente
// @Tags         cliente-produtos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do cliente"
// @Success      200  {array}  dto.VinculoResponse
// @Router       /api/clientes/{id}/produtos [get]
func (h *VinculoHandler) ListByCliente(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.ListByCliente(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
