package fetcher

import (
	"context"
	"testing"

	"github.com/giakoii/my-store/internal/api"
	"github.com/giakoii/my-store/internal/model"
)

type stubAdminOrders struct {
	filters []api.AdminOrderFilter
	pages   []int
}

func (s *stubAdminOrders) AdminOrders(ctx context.Context, filter api.AdminOrderFilter, page, pageSize int) (model.Page[model.AdminOrderSummary], error) {
	s.filters = append(s.filters, filter)
	s.pages = append(s.pages, page)
	return model.Page[model.AdminOrderSummary]{
		Data:     []model.AdminOrderSummary{{OrderID: 42, UserID: 15}},
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func TestAdminOrders_LoadPassesFilter(t *testing.T) {
	stub := &stubAdminOrders{}
	f := NewAdminOrders(stub, 0)

	filter := api.AdminOrderFilter{UserID: 15, FromDate: "2025-01-01", ToDate: "2025-01-31"}
	snap := f.Load(context.Background(), filter, 0)

	if snap.Err != nil {
		t.Fatalf("unexpected failure: %+v", snap.Err)
	}
	if snap.PageSize != DefaultAdminOrdersPageSize {
		t.Fatalf("page size = %d", snap.PageSize)
	}
	if len(stub.filters) != 1 || stub.filters[0] != filter {
		t.Fatalf("filters = %+v", stub.filters)
	}
	// Нулевая страница приводится к первой.
	if stub.pages[0] != 1 {
		t.Fatalf("page = %d, want 1", stub.pages[0])
	}
}
