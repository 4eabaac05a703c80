package fetcher

import (
	"context"
	"sync"
)

// DetailFunc загружает ресурс по идентификатору.
type DetailFunc[T any] func(ctx context.Context, id int64) (T, error)

// DetailSnapshot описывает состояние фетчера детальной карточки.
type DetailSnapshot[T any] struct {
	Value   *T
	Loading bool
	Err     *Failure
}

// Detail загружает детальную карточку ресурса при каждой смене выбранного
// идентификатора. Результаты между выборами не кэшируются: повторный выбор
// того же идентификатора выполняет новый запрос.
type Detail[T any] struct {
	fetch DetailFunc[T]

	mu   sync.Mutex
	seq  uint64
	snap DetailSnapshot[T]
}

// NewDetail создаёт фетчер детальной карточки поверх функции загрузки.
func NewDetail[T any](fetch DetailFunc[T]) *Detail[T] {
	return &Detail[T]{fetch: fetch}
}

// Select загружает карточку для указанного идентификатора.
// Неположительный идентификатор означает «ничего не выбрано».
func (d *Detail[T]) Select(ctx context.Context, id int64) DetailSnapshot[T] {
	if id <= 0 {
		d.Clear()
		return d.Snapshot()
	}

	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.snap.Loading = true
	d.snap.Err = nil
	d.mu.Unlock()

	value, err := d.fetch(ctx, id)

	d.mu.Lock()
	defer d.mu.Unlock()

	if seq != d.seq {
		return d.snap
	}

	d.snap.Loading = false
	if err != nil {
		d.snap.Err = failureOf(err)
		return d.snap
	}

	d.snap.Err = nil
	d.snap.Value = &value
	return d.snap
}

// Clear сбрасывает выбранную карточку.
func (d *Detail[T]) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	d.snap = DetailSnapshot[T]{}
}

// Snapshot возвращает текущее опубликованное состояние.
func (d *Detail[T]) Snapshot() DetailSnapshot[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snap
}
