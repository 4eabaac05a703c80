package api

import (
	"context"
	"net/http"

	"github.com/giakoii/my-store/internal/model"
)

// ProductTypes возвращает полный список типов продукта.
func (c *Client) ProductTypes(ctx context.Context) ([]model.ProductType, error) {
	return request[[]model.ProductType](ctx, c, http.MethodGet, "/api/v1/ProductType", nil, nil)
}

// CreateProductType создаёт новый тип продукта. Типы не удаляются.
func (c *Client) CreateProductType(ctx context.Context, req model.ProductTypeCreateRequest) (model.ProductType, error) {
	return request[model.ProductType](ctx, c, http.MethodPost, "/api/v1/ProductType", nil, req)
}
