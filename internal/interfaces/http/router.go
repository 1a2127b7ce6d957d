package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vendapp/pedidos-api/internal/application/auth"
	apppedido "github.com/vendapp/pedidos-api/internal/application/pedido"
	"github.com/vendapp/pedidos-api/internal/application/usecase"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	PedidoUC  *apppedido.PedidoUseCase
	PDFUC     *apppedido.PDFUseCase
	TrocaUC   *usecase.TrocaUseCase
	VinculoUC *usecase.VinculoUseCase
	ClienteUC *usecase.ClienteUseCase
	ProdutoUC *usecase.ProdutoUseCase
	RotaUC    *usecase.RotaUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	// Pedidos (protegido). As rotas fixas vêm antes de /:id para que o
	// Fiber não as capture como parâmetro.
	pedidos := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.PDFUC)
	trocaHandler := NewTrocaHandler(deps.TrocaUC)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/paginado", pedidoHandler.ListPaginado)
	pedidos.Get("/extrato", pedidoHandler.Extrato)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Put("/:id", pedidoHandler.Update)
	pedidos.Patch("/:id/status", pedidoHandler.ChangeStatus)
	pedidos.Get("/:id/pdf", pedidoHandler.PDF)
	pedidos.Get("/:id/trocas", trocaHandler.ListByPedido)

	// Trocas (protegido)
	trocas := protected.Group("/trocas")
	trocas.Post("/", trocaHandler.Create)
	trocas.Get("/", trocaHandler.ListByPeriodo)
	trocas.Delete("/:id", trocaHandler.Delete)

	// Vínculos de preço cliente×produto (protegido)
	vinculos := protected.Group("/cliente-produtos")
	vinculoHandler := NewVinculoHandler(deps.VinculoUC)
	vinculos.Post("/", vinculoHandler.Create)
	vinculos.Put("/:id", vinculoHandler.UpdatePreco)
	vinculos.Delete("/:id", vinculoHandler.Delete)

	// Clientes (protegido; remoção restrita a admin)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", admin, clienteHandler.Delete)
	clientes.Get("/:id/produtos", vinculoHandler.ListByCliente)

	// Produtos (protegido; remoção restrita a admin)
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", admin, produtoHandler.Delete)

	// Rotas de entrega (protegido; remoção restrita a admin)
	rotas := protected.Group("/rotas")
	rotaHandler := NewRotaHandler(deps.RotaUC)
	rotas.Post("/", rotaHandler.Create)
	rotas.Get("/", rotaHandler.List)
	rotas.Get("/:id", rotaHandler.GetByID)
	rotas.Delete("/:id", admin, rotaHandler.Delete)
}
