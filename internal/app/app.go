package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/CatalogApp/internal/auth"
	"github.com/GoArmGo/CatalogApp/internal/config"
	"github.com/GoArmGo/CatalogApp/internal/core/ports"
	"github.com/GoArmGo/CatalogApp/internal/database/client"
	"github.com/GoArmGo/CatalogApp/internal/usecase"
)

type App struct {
	Config *config.Config
	logger *slog.Logger

	dbClient *client.Client

	productUseCase usecase.ProductUseCase
	reviewUseCase  usecase.ReviewUseCase
	userUseCase    usecase.UserUseCase

	github   *auth.GithubClient
	sessions *auth.SessionManager

	catalogEventConsumer ports.CatalogEventConsumer
	catalogEventCloser   interface{ Close() error }
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	productUseCase usecase.ProductUseCase,
	reviewUseCase usecase.ReviewUseCase,
	userUseCase usecase.UserUseCase,
	github *auth.GithubClient,
	sessions *auth.SessionManager,
	catalogEventConsumer ports.CatalogEventConsumer,
	catalogEventCloser interface{ Close() error },
) *App {
	return &App{
		Config:               cfg,
		logger:               logger,
		dbClient:             dbClient,
		productUseCase:       productUseCase,
		reviewUseCase:        reviewUseCase,
		userUseCase:          userUseCase,
		github:               github,
		sessions:             sessions,
		catalogEventConsumer: catalogEventConsumer,
		catalogEventCloser:   catalogEventCloser,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает приложение в выбранном режиме и блокируется до сигнала завершения
func (a *App) Run(ctx context.Context, mode *string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("application starting", "mode", *mode)

	var err error

	switch *mode {
	case "server":
		err = runServer(ctx, a.Config, a.logger, a.sessions, a.github,
			a.productUseCase, a.reviewUseCase, a.userUseCase)

	case "worker":
		err = runWorker(ctx, a.logger, a.reviewUseCase, a.catalogEventConsumer)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", *mode)
	}

	if err != nil {
		return err
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.catalogEventCloser != nil {
		if err := a.catalogEventCloser.Close(); err != nil {
			a.logger.Error("failed to close message queue client", "error", err)
		}
	}

	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	return nil
}
