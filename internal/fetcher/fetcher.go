// Package fetcher содержит компоненты загрузки пагинированных ресурсов.
//
// Каждый фетчер объединяет операцию чтения списка, её состояние загрузки и
// ошибки и связанные мутации для одного типа ресурса. Публичные операции не
// паникуют: любая неудача превращается в структурное значение Failure.
package fetcher

import (
	"sync"

	"github.com/giakoii/my-store/internal/api"
	"github.com/giakoii/my-store/internal/model"
)

// Failure описывает неудачу операции в терминах слоя представления.
type Failure struct {
	Kind    api.ErrorKind
	Message string
}

func failureOf(err error) *Failure {
	kind, msg := api.Classify(err)
	return &Failure{Kind: kind, Message: msg}
}

// Snapshot описывает опубликованное состояние пагинированного фетчера.
type Snapshot[T any] struct {
	Data            []T
	Loading         bool
	Err             *Failure
	Page            int
	PageSize        int
	TotalCount      int
	TotalPages      int
	HasPreviousPage bool
	HasNextPage     bool
}

// pager содержит общую для всех фетчеров машинерию состояния.
//
// Каждой загрузке присваивается монотонно растущий порядковый номер;
// завершение с номером старше последнего выданного отбрасывается, поэтому
// медленный ответ не может перезаписать результат более позднего запроса.
type pager[T any] struct {
	mu   sync.Mutex
	seq  uint64
	snap Snapshot[T]
}

// begin отмечает начало загрузки и возвращает её порядковый номер.
func (p *pager[T]) begin() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	p.snap.Loading = true
	p.snap.Err = nil
	return p.seq
}

// complete публикует результат загрузки с указанным номером.
// Данные и поля пагинации заменяются атомарно; при ошибке прежние данные
// сохраняются. Устаревшие завершения игнорируются целиком.
func (p *pager[T]) complete(seq uint64, page model.Page[T], err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.seq {
		return
	}

	p.snap.Loading = false

	if err != nil {
		p.snap.Err = failureOf(err)
		return
	}

	p.snap.Err = nil
	p.snap.Data = page.Data
	p.snap.Page = page.Page
	p.snap.PageSize = page.PageSize
	p.snap.TotalCount = page.TotalCount
	p.snap.TotalPages = page.TotalPages
	p.snap.HasPreviousPage = page.HasPreviousPage
	p.snap.HasNextPage = page.HasNextPage
}

// Snapshot возвращает текущее опубликованное состояние.
func (p *pager[T]) Snapshot() Snapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

// currentPage возвращает номер последней успешно загруженной страницы.
func (p *pager[T]) currentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snap.Page < 1 {
		return 1
	}
	return p.snap.Page
}

// clampPage приводит номер страницы к допустимому нижнему значению.
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
