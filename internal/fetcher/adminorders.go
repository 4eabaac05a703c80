package fetcher

import (
	"context"

	"github.com/giakoii/my-store/internal/api"
	"github.com/giakoii/my-store/internal/model"
)

// DefaultAdminOrdersPageSize задаёт размер страницы административного списка.
const DefaultAdminOrdersPageSize = 10

// AdminOrdersClient описывает операции API, используемые административным фетчером.
type AdminOrdersClient interface {
	AdminOrders(ctx context.Context, filter api.AdminOrderFilter, page, pageSize int) (model.Page[model.AdminOrderSummary], error)
}

// AdminOrders загружает все заказы с фильтрами по пользователю и датам.
type AdminOrders struct {
	pager[model.AdminOrderSummary]
	client   AdminOrdersClient
	pageSize int
}

// NewAdminOrders создаёт административный фетчер заказов.
func NewAdminOrders(client AdminOrdersClient, pageSize int) *AdminOrders {
	if pageSize <= 0 {
		pageSize = DefaultAdminOrdersPageSize
	}
	return &AdminOrders{client: client, pageSize: pageSize}
}

// Load загружает страницу административного списка с указанными фильтрами.
func (f *AdminOrders) Load(ctx context.Context, filter api.AdminOrderFilter, page int) Snapshot[model.AdminOrderSummary] {
	page = clampPage(page)
	seq := f.begin()

	result, err := f.client.AdminOrders(ctx, filter, page, f.pageSize)
	f.complete(seq, result, err)

	return f.Snapshot()
}
