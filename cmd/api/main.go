package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/vendapp/pedidos-api/internal/application/auth"
	apppedido "github.com/vendapp/pedidos-api/internal/application/pedido"
	"github.com/vendapp/pedidos-api/internal/application/usecase"
	infrapdf "github.com/vendapp/pedidos-api/internal/infrastructure/pdf"
	"github.com/vendapp/pedidos-api/internal/infrastructure/postgres"
	httpRouter "github.com/vendapp/pedidos-api/internal/interfaces/http"
	"github.com/vendapp/pedidos-api/pkg/config"
	"github.com/vendapp/pedidos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	rotaRepo := postgres.NewRotaRepository(pool)
	vinculoRepo := postgres.NewVinculoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	trocaRepo := postgres.NewTrocaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := apppedido.NewPriceResolver(vinculoRepo, produtoRepo)
	pedidoUC := apppedido.NewPedidoUseCase(txRunner, pedidoRepo, clienteRepo, produtoRepo, trocaRepo, resolver)

	// PDF: romaneio do pedido para separação e entrega
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := apppedido.NewPDFUseCase(pedidoRepo, clienteRepo, produtoRepo, pdfGenerator)

	trocaUC := usecase.NewTrocaUseCase(trocaRepo, pedidoRepo, produtoRepo)
	vinculoUC := usecase.NewVinculoUseCase(vinculoRepo, clienteRepo, produtoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	rotaUC := usecase.NewRotaUseCase(rotaRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pedidos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PedidoUC:  pedidoUC,
		PDFUC:     pdfUC,
		TrocaUC:   trocaUC,
		VinculoUC: vinculoUC,
		ClienteUC: clienteUC,
		ProdutoUC: produtoUC,
		RotaUC:    rotaUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
