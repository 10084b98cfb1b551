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

	"github.com/agoramarket/agora-api/internal/application/auth"
	"github.com/agoramarket/agora-api/internal/application/market"
	"github.com/agoramarket/agora-api/internal/application/reports"
	"github.com/agoramarket/agora-api/internal/domain/repository"
	"github.com/agoramarket/agora-api/internal/infrastructure/memory"
	"github.com/agoramarket/agora-api/internal/infrastructure/postgres"
	httpRouter "github.com/agoramarket/agora-api/internal/interfaces/http"
	"github.com/agoramarket/agora-api/pkg/config"
	"github.com/agoramarket/agora-api/pkg/logger"
)

// backend agrupa el TxRunner y los repositorios de lectura del ledger,
// independiente de si atrás hay PostgreSQL o memoria.
type backend struct {
	txRunner   market.TxRunner
	cuentas    repository.CuentaRepository
	usuarios   repository.UsuarioRepository
	productos  repository.ProductoRepository
	ordenes    repository.OrdenRepository
	custodia   repository.CustodiaRepository
	reputacion repository.ReputacionRepository
	cerrar     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var be backend
	if cfg.DB.Habilitada() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		be = backend{
			txRunner:   postgres.NewTxRunner(pool),
			cuentas:    postgres.NewCuentaRepository(pool),
			usuarios:   postgres.NewUsuarioRepository(pool),
			productos:  postgres.NewProductoRepository(pool),
			ordenes:    postgres.NewOrdenRepository(pool),
			custodia:   postgres.NewCustodiaRepository(pool),
			reputacion: postgres.NewReputacionRepository(pool),
			cerrar:     pool.Close,
		}
		log.Info().Msg("ledger sobre PostgreSQL")
	} else {
		store := memory.NewStore()
		be = backend{
			txRunner:   store,
			cuentas:    store.Cuentas(),
			usuarios:   store.Usuarios(),
			productos:  store.Productos(),
			ordenes:    store.Ordenes(),
			custodia:   store.Custodia(),
			reputacion: store.Reputacion(),
			cerrar:     func() {},
		}
		log.Warn().Msg("sin DATABASE_URL ni DB_HOST: ledger en memoria, los datos no sobreviven al proceso")
	}
	defer be.cerrar()

	authUC := auth.NewAuthUseCase(be.cuentas, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	registroUC := market.NewRegistroUseCase(be.txRunner, be.usuarios)
	catalogoUC := market.NewCatalogoUseCase(be.txRunner, be.usuarios, be.productos)
	ordenesUC := market.NewOrdenesUseCase(be.txRunner, be.usuarios, be.ordenes, be.custodia)
	cancelacionUC := market.NewCancelacionUseCase(be.txRunner)
	reputacionUC := market.NewReputacionUseCase(be.txRunner, be.reputacion)
	reportsUC := reports.NewReportsUseCase(be.productos, be.ordenes, be.reputacion)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ágora API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		RegistroUC:    registroUC,
		CatalogoUC:    catalogoUC,
		OrdenesUC:     ordenesUC,
		CancelacionUC: cancelacionUC,
		ReputacionUC:  reputacionUC,
		ReportsUC:     reportsUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
