package fetcher

import (
	"context"
	"sync"

	"github.com/giakoii/my-store/internal/api"
	"github.com/giakoii/my-store/internal/model"
	"github.com/giakoii/my-store/internal/validation"
)

// ProductTypesClient описывает операции API, используемые фетчером типов продукта.
type ProductTypesClient interface {
	ProductTypes(ctx context.Context) ([]model.ProductType, error)
	CreateProductType(ctx context.Context, req model.ProductTypeCreateRequest) (model.ProductType, error)
}

// ProductTypesSnapshot описывает состояние непагинированного списка типов.
type ProductTypesSnapshot struct {
	Data    []model.ProductType
	Loading bool
	Err     *Failure
}

// ProductTypes загружает список типов продукта и создаёт новые типы.
type ProductTypes struct {
	client ProductTypesClient

	mu   sync.Mutex
	seq  uint64
	snap ProductTypesSnapshot
}

// NewProductTypes создаёт фетчер типов продукта.
func NewProductTypes(client ProductTypesClient) *ProductTypes {
	return &ProductTypes{client: client}
}

// Load загружает полный список типов продукта.
func (f *ProductTypes) Load(ctx context.Context) ProductTypesSnapshot {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.snap.Loading = true
	f.snap.Err = nil
	f.mu.Unlock()

	types, err := f.client.ProductTypes(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq {
		return f.snap
	}

	f.snap.Loading = false
	if err != nil {
		f.snap.Err = failureOf(err)
		return f.snap
	}

	f.snap.Err = nil
	f.snap.Data = types
	return f.snap
}

// Create создаёт тип продукта и при успехе перезагружает список.
func (f *ProductTypes) Create(ctx context.Context, req model.ProductTypeCreateRequest) (model.ProductType, *Failure) {
	if err := validation.ValidateProductType(req); err != nil {
		return model.ProductType{}, &Failure{Kind: api.KindValidation, Message: err.Error()}
	}

	created, err := f.client.CreateProductType(ctx, req)
	if err != nil {
		return model.ProductType{}, failureOf(err)
	}

	f.Load(ctx)
	return created, nil
}

// Snapshot возвращает текущее опубликованное состояние.
func (f *ProductTypes) Snapshot() ProductTypesSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}
