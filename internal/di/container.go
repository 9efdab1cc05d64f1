package di

import (
	"log"

	"github.com/GoArmGo/CatalogApp/internal/app"
	"github.com/GoArmGo/CatalogApp/internal/auth"
	"github.com/GoArmGo/CatalogApp/internal/config"
	"github.com/GoArmGo/CatalogApp/internal/database/client"
	"github.com/GoArmGo/CatalogApp/internal/database/storage"
	"github.com/GoArmGo/CatalogApp/internal/logger"
	"github.com/GoArmGo/CatalogApp/internal/rabbitmq"
	"github.com/GoArmGo/CatalogApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (sqlx для миграций + GORM поверх него)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ — по одному репозиторию на сущность
	productStorage := storage.NewProductStorage(dbClient.Gorm, slogger)
	reviewStorage := storage.NewReviewStorage(dbClient.Gorm, slogger)
	userStorage := storage.NewUserStorage(dbClient.Gorm, slogger)

	// 4. Инициализация RabbitMQ клиента (publisher и consumer в одном)
	rabbitMQClient, err := rabbitmq.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	// 5. Инициализация бизнес-логики (usecases)
	productUseCase := usecase.NewProductUseCase(productStorage, rabbitMQClient, slogger)
	reviewUseCase := usecase.NewReviewUseCase(reviewStorage, productStorage, rabbitMQClient, slogger)
	userUseCase := usecase.NewUserUseCase(userStorage, slogger)

	// 6. Инициализация GitHub OAuth и cookie-сессий
	githubClient := auth.NewGithubClient(cfg)
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)

	// 7. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		productUseCase,
		reviewUseCase,
		userUseCase,
		githubClient,
		sessions,
		rabbitMQClient,
		rabbitMQClient,
	)

	log.Println("[container] Все зависимости успешно инициализированы.")
	return application, nil
}
