package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vendapp/pedidos-api/internal/application/dto"
	apppedido "github.com/vendapp/pedidos-api/internal/application/pedido"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// PedidoHandler trata as requisições HTTP de pedidos (protegido).
type PedidoHandler struct {
	uc    *apppedido.PedidoUseCase
	pdfUC *apppedido.PDFUseCase
}

// NewPedidoHandler constrói o handler.
func NewPedidoHandler(uc *apppedido.PedidoUseCase, pdfUC *apppedido.PDFUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Criar pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePedidoRequest  true  "Dados do pedido"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.ClienteID == "" || in.Data == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente_id e data são obrigatórios"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter pedido por ID
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        status      query  string  false  "Filtro por status"
// @Param        data        query  string  false  "Filtro por data (YYYY-MM-DD)"
// @Param        rota_id     query  string  false  "Filtro por rota"
// @Param        cliente_id  query  string  false  "Filtro por cliente"
// @Success      200  {array}   dto.PedidoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	f := repository.PedidoFiltro{
		Status:    c.Query("status"),
		RotaID:    c.Query("rota_id"),
		ClienteID: c.Query("cliente_id"),
	}
	if s := c.Query("data"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data inválida, use YYYY-MM-DD"})
		}
		f.Data = &d
	}
	out, err := h.uc.List(f)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListPaginado godoc
// @Summary      Listar pedidos paginados com busca
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Busca por chave ou nome do cliente (sem acentos)"
// @Param        status  query  string  false  "Filtro por status"
// @Param        page    query  int     false  "Página"   default(1)
// @Param        limit   query  int     false  "Limite"   default(20)
// @Success      200  {object}  dto.PedidoPaginadoResponse
// @Router       /api/pedidos/paginado [get]
func (h *PedidoHandler) ListPaginado(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	out, err := h.uc.ListPaginado(c.Query("q"), c.Query("status"), page, limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Extrato godoc
// @Summary      Extrato de pedidos do período com saldo corrente
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        data_inicio  query  string  true   "Início do período (YYYY-MM-DD, inclusivo)"
// @Param        data_fim     query  string  true   "Fim do período (YYYY-MM-DD, inclusivo)"
// @Param        cliente_id   query  string  false  "Filtro por cliente"
// @Param        status       query  string  false  "Filtro por status"
// @Success      200  {object}  dto.ExtratoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pedidos/extrato [get]
func (h *PedidoHandler) Extrato(c *fiber.Ctx) error {
	out, err := h.uc.Extrato(
		c.Query("data_inicio"),
		c.Query("data_fim"),
		c.Query("cliente_id"),
		c.Query("status"),
	)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar pedido (itens e/ou transição de status, atômico)
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.UpdatePedidoRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [put]
func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Transicionar o status do pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.ChangeStatusRequest  true  "Novo status e, na efetivação, valor_efetivado opcional"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/status [patch]
func (h *PedidoHandler) ChangeStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status é obrigatório"})
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Romaneio do pedido em PDF
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/pdf [get]
func (h *PedidoHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	pdfBytes, err := h.pdfUC.Generate(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="pedido-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
