package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httphandlers "github.com/erfonspanos/neoapp-desafio-tecnico/internal/handlers/http"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/handlers/middleware"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/infrastructure/config"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/infrastructure/logging"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/infrastructure/persistence/postgres"
	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting api de clientes",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	clienteRepo := postgres.NewClienteRepository(db)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry())
	clienteService := services.NewClienteService(clienteRepo, usuarioRepo, uow, logger)
	autenticacaoService := services.NewAutenticacaoService(usuarioRepo, clienteRepo, tokenService, uow, logger)

	// Seed do admin inicial, quando configurado
	if cfg.Seed.AdminEmail != "" {
		if err := autenticacaoService.GarantirAdminPadrao(context.Background(), cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
			logger.Error("failed to seed default admin", "error", err)
			log.Fatal(err)
		}
	}

	// Inicializar handlers e rotas
	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		ClienteHandler:      httphandlers.NewClienteHandler(clienteService),
		AutenticacaoHandler: httphandlers.NewAutenticacaoHandler(autenticacaoService),
		UsuarioHandler:      httphandlers.NewUsuarioHandler(autenticacaoService),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokenService, autenticacaoService),
		AllowedOrigins:      cfg.CORS.AllowedOrigins,
		Env:                 cfg.Env,
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
