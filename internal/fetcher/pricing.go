package fetcher

import (
	"context"

	"github.com/giakoii/my-store/internal/api"
	"github.com/giakoii/my-store/internal/model"
	"github.com/giakoii/my-store/internal/validation"
)

// DefaultPricingPageSize задаёт размер страницы списка партий цен.
const DefaultPricingPageSize = 6

// PricingClient описывает операции API, используемые фетчером цен.
type PricingClient interface {
	PriceBatches(ctx context.Context, dates api.DateRange, page, pageSize int) (model.Page[model.PriceBatch], error)
	CreatePriceBatch(ctx context.Context, req model.PriceBatchCreateRequest) (model.PriceBatch, error)
}

// Pricing загружает партии цен постранично с фильтром по датам и публикует новые.
type Pricing struct {
	pager[model.PriceBatch]
	client   PricingClient
	pageSize int

	// dates — фильтр последней загрузки; защищён мьютексом пейджера.
	dates api.DateRange
}

// NewPricing создаёт фетчер партий цен.
func NewPricing(client PricingClient, pageSize int) *Pricing {
	if pageSize <= 0 {
		pageSize = DefaultPricingPageSize
	}
	return &Pricing{client: client, pageSize: pageSize}
}

// Load загружает страницу партий цен за указанный период.
func (f *Pricing) Load(ctx context.Context, dates api.DateRange, page int) Snapshot[model.PriceBatch] {
	page = clampPage(page)
	seq := f.begin()

	f.mu.Lock()
	f.dates = dates
	f.mu.Unlock()

	result, err := f.client.PriceBatches(ctx, dates, page, f.pageSize)
	f.complete(seq, result, err)

	return f.Snapshot()
}

// currentRange возвращает фильтр по датам последней загрузки.
func (f *Pricing) currentRange() api.DateRange {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dates
}

// CreateBatch публикует партию цен и при успехе перезагружает текущую
// страницу с действующим фильтром по датам.
func (f *Pricing) CreateBatch(ctx context.Context, req model.PriceBatchCreateRequest) (model.PriceBatch, *Failure) {
	if err := validation.ValidatePriceBatch(req); err != nil {
		return model.PriceBatch{}, &Failure{Kind: api.KindValidation, Message: err.Error()}
	}

	created, err := f.client.CreatePriceBatch(ctx, req)
	if err != nil {
		return model.PriceBatch{}, failureOf(err)
	}

	f.Load(ctx, f.currentRange(), f.currentPage())
	return created, nil
}
