package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/clientes-pro/internal/application/auth"
	"github.com/tu-usuario/clientes-pro/internal/application/importing"
	"github.com/tu-usuario/clientes-pro/internal/application/usecase"
	"github.com/tu-usuario/clientes-pro/internal/domain/repository"
	"github.com/tu-usuario/clientes-pro/internal/infrastructure/excel"
	"github.com/tu-usuario/clientes-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/clientes-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/clientes-pro/internal/interfaces/http"
	"github.com/tu-usuario/clientes-pro/pkg/config"
	"github.com/tu-usuario/clientes-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Persistencia: PostgreSQL (slot jsonb + advisory lock) o, con
	// DB_DISABLED, todo en memoria para desarrollo sin base de datos.
	var (
		clientStore repository.ClientStore
		clientTx    repository.ClientTxRunner
		userRepo    repository.UserRepository
		execRepo    repository.ExecutiveRepository
	)
	if cfg.DB.Disabled {
		log.Warn().Msg("DB_DISABLED: padrón y usuarios en memoria, no persisten al reiniciar")
		memStore := memory.NewClientStore()
		clientStore = memStore
		clientTx = memStore
		userRepo = memory.NewUserRepository()
		execRepo = memory.NewExecutiveRepository()
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		clientStore = postgres.NewClientStore(pool, cfg.Import.Slot)
		clientTx = postgres.NewTxRunner(pool, cfg.Import.Slot)
		userRepo = postgres.NewUserRepository(pool)
		execRepo = postgres.NewExecutiveRepository(pool)
	}

	clientUC := usecase.NewClientUseCase(clientStore, clientTx)
	executiveUC := usecase.NewExecutiveUseCase(execRepo)
	importUC := importing.NewUseCase(clientTx, excel.NewReader(), log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Import.MaxFileSizeMB * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:    clientUC,
		ExecutiveUC: executiveUC,
		ImportUC:    importUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
