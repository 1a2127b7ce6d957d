package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/application/usecase"
)

// TrocaHandler trata as requisições HTTP de trocas (protegido).
type TrocaHandler struct {
	uc *usecase.TrocaUseCase
}

// NewTrocaHandler constrói o handler.
func NewTrocaHandler(uc *usecase.TrocaUseCase) *TrocaHandler {
	return &TrocaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar troca em um pedido
// @Tags         trocas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTrocaRequest  true  "Dados da troca"
// @Success      201   {object}  dto.TrocaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trocas [post]
func (h *TrocaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTrocaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Remover troca
// @Tags         trocas
// @Security     Bearer
// @Param        id   path  string  true  "ID da troca"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trocas/{id} [delete]
func (h *TrocaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByPeriodo godoc
// @Summary      Listar trocas do período com total agregado
// @Tags         trocas
// @Security     Bearer
// @Produce      json
// @Param        data_inicio  query  string  true  "Início do período (YYYY-MM-DD, inclusivo)"
// @Param        data_fim     query  string  true  "Fim do período (YYYY-MM-DD, inclusivo)"
// @Success      200  {object}  dto.TrocaListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/trocas [get]
func (h *TrocaHandler) ListByPeriodo(c *fiber.Ctx) error {
	inicioStr := c.Query("data_inicio")
	fimStr := c.Query("data_fim")
	if inicioStr == "" || fimStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data_inicio e data_fim são obrigatórios"})
	}
	inicio, err := time.Parse("2006-01-02", inicioStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data_inicio inválida, use YYYY-MM-DD"})
	}
	fim, err := time.Parse("2006-01-02", fimStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data_fim inválida, use YYYY-MM-DD"})
	}
	if fim.Before(inicio) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data_fim anterior a data_inicio"})
	}
	out, err := h.uc.ListByPeriodo(inicio, fim)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByPedido godoc
// @Summary      Listar trocas de um pedido
// @Tags         trocas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {array}  dto.TrocaResponse
// @Router       /api/pedidos/{id}/trocas [get]
func (h *TrocaHandler) ListByPedido(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.ListByPedido(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
