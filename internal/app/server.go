package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/auth"
	"github.com/GoArmGo/CatalogApp/internal/config"
	"github.com/GoArmGo/CatalogApp/internal/handler"
	"github.com/GoArmGo/CatalogApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// runServer запускает HTTP сервер каталога
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	sessions *auth.SessionManager,
	github *auth.GithubClient,
	productUseCase usecase.ProductUseCase,
	reviewUseCase usecase.ReviewUseCase,
	userUseCase usecase.UserUseCase,
) error {
	productHandler := handler.NewProductHandler(productUseCase, logger)
	reviewHandler := handler.NewReviewHandler(reviewUseCase, logger)
	authHandler := handler.NewAuthHandler(github, sessions, userUseCase, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// Публичные маршруты: чтение каталога и OAuth-поток
	r.Get("/products", productHandler.ListProducts)
	r.Get("/products/{id}", productHandler.GetProduct)
	r.Get("/reviews", reviewHandler.ListReviews)
	r.Get("/reviews/product/{name}", reviewHandler.GetReviewsByProduct)

	r.Get("/auth/github", authHandler.Login)
	r.Get("/auth/github/callback", authHandler.Callback)
	r.Get("/auth/logout", authHandler.Logout)

	// Мутирующие маршруты закрыты сессионной авторизацией
	r.Group(func(r chi.Router) {
		r.Use(handler.EnsureAuthenticated(sessions, logger))

		r.Post("/products", productHandler.CreateProduct)
		r.Put("/products/{id}", productHandler.UpdateProduct)
		r.Delete("/products/{id}", productHandler.DeleteProduct)
		r.Post("/reviews", reviewHandler.CreateReview)
		r.Get("/auth/me", authHandler.Me)
	})

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful Shutdown
	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
