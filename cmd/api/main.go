package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Luan-zanardo/Insumix/internal/application/compras"
	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	appestoque "github.com/Luan-zanardo/Insumix/internal/application/estoque"
	"github.com/Luan-zanardo/Insumix/internal/application/usecase"
	"github.com/Luan-zanardo/Insumix/internal/infrastructure/postgres"
	httpRouter "github.com/Luan-zanardo/Insumix/internal/interfaces/http"
	"github.com/Luan-zanardo/Insumix/pkg/config"
	"github.com/Luan-zanardo/Insumix/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	materiaRepo := postgres.NewMateriaPrimaRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	pedidoRepo := postgres.NewPedidoCompraRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	materiaUC := usecase.NewMateriaPrimaUseCase(materiaRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo, materiaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	movimentacaoUC := appestoque.NewMovimentacaoUseCase(txRunner, materiaRepo)
	consultaUC := appestoque.NewConsultaUseCase(materiaRepo, movRepo)
	pedidoUC := compras.NewPedidoUseCase(txRunner, pedidoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Insumix API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MateriaPrimaUC: materiaUC,
		FornecedorUC:   fornecedorUC,
		ProdutoUC:      produtoUC,
		UsuarioUC:      usuarioUC,
		MovimentacaoUC: movimentacaoUC,
		ConsultaUC:     consultaUC,
		PedidoUC:       pedidoUC,
	})

	// Rotas não mapeadas respondem o envelope padrão
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.NovoErro("rota não encontrada"))
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
