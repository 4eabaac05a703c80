package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/giakoii/my-store/internal/model"
)

// DateRange задаёт необязательный фильтр по дате публикации партии цен.
type DateRange struct {
	FromDate string
	ToDate   string
}

// PriceBatches возвращает страницу партий цен.
// Эндпоинт прайс-листа принимает параметры запроса с большой буквы.
func (c *Client) PriceBatches(ctx context.Context, dates DateRange, page, pageSize int) (model.Page[model.PriceBatch], error) {
	query := url.Values{}
	query.Set("Page", strconv.Itoa(page))
	query.Set("PageSize", strconv.Itoa(pageSize))

	if dates.FromDate != "" {
		query.Set("FromDate", dates.FromDate)
	}
	if dates.ToDate != "" {
		query.Set("ToDate", dates.ToDate)
	}

	return request[model.Page[model.PriceBatch]](ctx, c, http.MethodGet, "/api/v1/Pricing/batches", query, nil)
}

// CreatePriceBatch публикует партию цен. Партия неизменяема после создания.
func (c *Client) CreatePriceBatch(ctx context.Context, req model.PriceBatchCreateRequest) (model.PriceBatch, error) {
	return request[model.PriceBatch](ctx, c, http.MethodPost, "/api/v1/Pricing/batch", nil, req)
}
