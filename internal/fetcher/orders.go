package fetcher

import (
	"context"

	"github.com/giakoii/my-store/internal/api"
	"github.com/giakoii/my-store/internal/model"
	"github.com/giakoii/my-store/internal/validation"
)

// DefaultOrdersPageSize задаёт размер страницы списка заказов пользователя.
const DefaultOrdersPageSize = 10

// OrdersClient описывает операции API, используемые фетчером заказов.
type OrdersClient interface {
	MyOrders(ctx context.Context, page, pageSize int) (model.Page[model.OrderSummary], error)
	CreateOrder(ctx context.Context, req model.OrderCreateRequest) (model.OrderDetail, error)
}

// Orders загружает заказы текущего пользователя постранично и создаёт новые.
type Orders struct {
	pager[model.OrderSummary]
	client   OrdersClient
	pageSize int
}

// NewOrders создаёт фетчер заказов. Неположительный размер страницы
// заменяется значением по умолчанию.
func NewOrders(client OrdersClient, pageSize int) *Orders {
	if pageSize <= 0 {
		pageSize = DefaultOrdersPageSize
	}
	return &Orders{client: client, pageSize: pageSize}
}

// Load загружает указанную страницу заказов и возвращает новое состояние.
// Номера страниц меньше единицы приводятся к первой странице.
func (f *Orders) Load(ctx context.Context, page int) Snapshot[model.OrderSummary] {
	page = clampPage(page)
	seq := f.begin()

	result, err := f.client.MyOrders(ctx, page, f.pageSize)
	f.complete(seq, result, err)

	return f.Snapshot()
}

// Create создаёт заказ и при успехе перезагружает текущую страницу списка.
// Неудача возвращается структурным значением, данные списка не теряются.
func (f *Orders) Create(ctx context.Context, req model.OrderCreateRequest) (model.OrderDetail, *Failure) {
	if err := validation.ValidateOrderCreate(req); err != nil {
		return model.OrderDetail{}, &Failure{Kind: api.KindValidation, Message: err.Error()}
	}

	created, err := f.client.CreateOrder(ctx, req)
	if err != nil {
		return model.OrderDetail{}, failureOf(err)
	}

	f.Load(ctx, f.currentPage())
	return created, nil
}
