package fetcher

import (
	"context"
	"errors"
	"testing"

	"github.com/giakoii/my-store/internal/api"
	"github.com/giakoii/my-store/internal/model"
)

func TestDetail_SelectLoadsValue(t *testing.T) {
	calls := 0
	d := NewDetail(func(ctx context.Context, id int64) (model.OrderDetail, error) {
		calls++
		return model.OrderDetail{OrderID: id}, nil
	})

	snap := d.Select(context.Background(), 42)

	if snap.Loading || snap.Err != nil {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Value == nil || snap.Value.OrderID != 42 {
		t.Fatalf("value = %+v", snap.Value)
	}
	if calls != 1 {
		t.Fatalf("calls = %d", calls)
	}
}

func TestDetail_ReselectRefetches(t *testing.T) {
	calls := 0
	d := NewDetail(func(ctx context.Context, id int64) (model.OrderDetail, error) {
		calls++
		return model.OrderDetail{OrderID: id}, nil
	})

	d.Select(context.Background(), 42)
	d.Select(context.Background(), 42)

	// Карточка не кэшируется между выборами.
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestDetail_FetchFailure(t *testing.T) {
	d := NewDetail(func(ctx context.Context, id int64) (model.OrderDetail, error) {
		return model.OrderDetail{}, errors.New("connection refused")
	})

	snap := d.Select(context.Background(), 42)

	if snap.Err == nil {
		t.Fatalf("expected failure")
	}
	if snap.Err.Kind != api.KindNetwork {
		t.Fatalf("kind = %s", snap.Err.Kind)
	}
	if snap.Value != nil {
		t.Fatalf("value published despite failure: %+v", snap.Value)
	}
	if snap.Loading {
		t.Fatalf("loading flag left set")
	}
}

func TestDetail_NonPositiveIDClears(t *testing.T) {
	calls := 0
	d := NewDetail(func(ctx context.Context, id int64) (model.OrderDetail, error) {
		calls++
		return model.OrderDetail{OrderID: id}, nil
	})

	d.Select(context.Background(), 42)
	snap := d.Select(context.Background(), 0)

	if snap.Value != nil || snap.Err != nil || snap.Loading {
		t.Fatalf("snapshot not cleared: %+v", snap)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestDetail_ClearResetsState(t *testing.T) {
	d := NewDetail(func(ctx context.Context, id int64) (model.OrderDetail, error) {
		return model.OrderDetail{OrderID: id}, nil
	})

	d.Select(context.Background(), 42)
	d.Clear()

	if snap := d.Snapshot(); snap.Value != nil {
		t.Fatalf("value survived clear: %+v", snap.Value)
	}
}
