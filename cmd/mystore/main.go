// Package main запускает HTTP-шлюз сайта магазина.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/giakoii/my-store/internal/api"
	"github.com/giakoii/my-store/internal/config"
	"github.com/giakoii/my-store/internal/credential"
	"github.com/giakoii/my-store/internal/fetcher"
	"github.com/giakoii/my-store/internal/handler"
	"github.com/giakoii/my-store/internal/middleware"
	"github.com/giakoii/my-store/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	// Базовый клиент без учётных данных: публичные запросы и доска цен.
	// Привязку к учётным данным конкретного запроса выполняют обработчики.
	var baseStore credential.Store = credential.NewMemoryStore()
	if cfg.CredentialsFile != "" {
		baseStore = credential.NewFileStore(cfg.CredentialsFile)
	}

	apiClient := api.NewClient(cfg.UpstreamAddress, baseStore)

	pricing := fetcher.NewPricing(apiClient, fetcher.DefaultPricingPageSize)
	board := service.NewBoard(pricing, cfg.BoardRefreshInterval)

	codec := middleware.NewCookieCodec(cfg.CookieSecret)
	h := handler.NewHandler(apiClient, codec, board, logger)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск фонового обновления доски цен
	g.Go(func() error {
		board.StartRefresh(ctx)
		return nil
	})

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting store gateway", "addr", cfg.RunAddress, "upstream", cfg.UpstreamAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
