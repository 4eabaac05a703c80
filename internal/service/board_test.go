package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/giakoii/my-store/internal/api"
	"github.com/giakoii/my-store/internal/fetcher"
	"github.com/giakoii/my-store/internal/model"
)

type stubPricingClient struct {
	mu    sync.Mutex
	calls int
}

func (s *stubPricingClient) PriceBatches(ctx context.Context, dates api.DateRange, page, pageSize int) (model.Page[model.PriceBatch], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return model.Page[model.PriceBatch]{
		Data:       []model.PriceBatch{{PricingBatchID: 1, Title: "Giá hôm nay"}},
		Page:       page,
		PageSize:   pageSize,
		TotalCount: 1,
	}, nil
}

func (s *stubPricingClient) CreatePriceBatch(ctx context.Context, req model.PriceBatchCreateRequest) (model.PriceBatch, error) {
	return model.PriceBatch{}, nil
}

func (s *stubPricingClient) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestBoard_RefreshPublishesSnapshot(t *testing.T) {
	client := &stubPricingClient{}
	board := NewBoard(fetcher.NewPricing(client, 0), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	board.StartRefresh(ctx)

	deadline := time.After(2 * time.Second)
	for client.count() == 0 {
		select {
		case <-deadline:
			t.Fatalf("initial refresh never happened")
		case <-time.After(10 * time.Millisecond):
		}
	}

	// Снимок доступен без похода к удалённому API.
	var snap fetcher.Snapshot[model.PriceBatch]
	for i := 0; i < 100; i++ {
		snap = board.Snapshot()
		if len(snap.Data) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if len(snap.Data) != 1 || snap.Data[0].PricingBatchID != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.TotalCount != 1 {
		t.Fatalf("total count = %d", snap.TotalCount)
	}
}

func TestBoard_TickerRefreshes(t *testing.T) {
	client := &stubPricingClient{}
	board := NewBoard(fetcher.NewPricing(client, 0), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	board.StartRefresh(ctx)

	deadline := time.After(2 * time.Second)
	for client.count() < 3 {
		select {
		case <-deadline:
			t.Fatalf("board stopped refreshing: %d calls", client.count())
		case <-time.After(10 * time.Millisecond):
		}
	}
	cancel()
}
