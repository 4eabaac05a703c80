package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/giakoii/my-store/internal/model"
)

// AdminOrderFilter задаёт необязательные фильтры административного списка заказов.
type AdminOrderFilter struct {
	UserID   int64
	FromDate string
	ToDate   string
}

// MyOrders возвращает страницу заказов текущего пользователя.
func (c *Client) MyOrders(ctx context.Context, page, pageSize int) (model.Page[model.OrderSummary], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	return request[model.Page[model.OrderSummary]](ctx, c, http.MethodGet, "/api/v1/Order/my-orders", query, nil)
}

// OrderDetail возвращает заказ текущего пользователя по идентификатору.
func (c *Client) OrderDetail(ctx context.Context, orderID int64) (model.OrderDetail, error) {
	path := fmt.Sprintf("/api/v1/Order/%d", orderID)
	return request[model.OrderDetail](ctx, c, http.MethodGet, path, nil, nil)
}

// CreateOrder создаёт заказ от имени текущего пользователя.
func (c *Client) CreateOrder(ctx context.Context, req model.OrderCreateRequest) (model.OrderDetail, error) {
	return request[model.OrderDetail](ctx, c, http.MethodPost, "/api/v1/Order", nil, req)
}

// AdminOrders возвращает страницу всех заказов с учётом фильтров администратора.
func (c *Client) AdminOrders(ctx context.Context, filter AdminOrderFilter, page, pageSize int) (model.Page[model.AdminOrderSummary], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	if filter.UserID > 0 {
		query.Set("userId", strconv.FormatInt(filter.UserID, 10))
	}
	if filter.FromDate != "" {
		query.Set("fromDate", filter.FromDate)
	}
	if filter.ToDate != "" {
		query.Set("toDate", filter.ToDate)
	}

	return request[model.Page[model.AdminOrderSummary]](ctx, c, http.MethodGet, "/api/v1/Order/admin/all", query, nil)
}

// AdminOrderDetail возвращает заказ в административном представлении.
func (c *Client) AdminOrderDetail(ctx context.Context, orderID int64) (model.AdminOrderDetail, error) {
	path := fmt.Sprintf("/api/v1/Order/admin/detail/%d", orderID)
	return request[model.AdminOrderDetail](ctx, c, http.MethodGet, path, nil, nil)
}
