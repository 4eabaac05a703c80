package service

import (
	"context"
	"time"

	"github.com/giakoii/my-store/internal/api"
	"github.com/giakoii/my-store/internal/fetcher"
	"github.com/giakoii/my-store/internal/model"
)

// DefaultBoardInterval задаёт период обновления публичной доски цен.
const DefaultBoardInterval = time.Minute

// Board держит тёплый снимок публичной доски цен. Первая страница партий
// перезагружается в фоне, публичный эндпоинт отдаёт последний снимок без
// похода к удалённому API.
type Board struct {
	pricing  *fetcher.Pricing
	interval time.Duration
}

// NewBoard создаёт доску цен поверх фетчера партий.
func NewBoard(pricing *fetcher.Pricing, interval time.Duration) *Board {
	if interval <= 0 {
		interval = DefaultBoardInterval
	}
	return &Board{
		pricing:  pricing,
		interval: interval,
	}
}

// StartRefresh запускает фоновое обновление доски до отмены контекста.
// Неудачные обновления не прерывают цикл: ошибка остаётся в снимке.
func (b *Board) StartRefresh(ctx context.Context) {
	go func() {
		b.pricing.Load(ctx, api.DateRange{}, 1)

		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.pricing.Load(ctx, api.DateRange{}, 1)
			}
		}
	}()
}

// Snapshot возвращает последний снимок доски цен.
func (b *Board) Snapshot() fetcher.Snapshot[model.PriceBatch] {
	return b.pricing.Snapshot()
}
