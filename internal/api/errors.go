package api

import (
	"errors"
	"fmt"
)

// ErrTimeout возвращается, если запрос превысил установленный таймаут.
var ErrTimeout = errors.New("request timeout")

// ErrMalformedResponse возвращается при некорректном JSON в теле ответа.
var ErrMalformedResponse = errors.New("malformed response body")

// ErrNoToken возвращается, если операция требует токен, а он не сохранён.
var ErrNoToken = errors.New("no access token")

// HTTPError описывает ответ сервера со статусом вне диапазона 2xx.
// Конверт ответа прикладывается, чтобы вызывающая сторона могла выбрать
// между статусом и бизнес-сообщением сервера.
type HTTPError struct {
	Status   int
	Envelope Envelope[RawPayload]
}

// Error возвращает текстовое описание ошибки.
func (e *HTTPError) Error() string {
	if e.Envelope.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Envelope.Message)
	}
	return fmt.Sprintf("http %d", e.Status)
}

// BusinessError описывает ответ со статусом 2xx, в конверте которого
// сервер сообщил о неуспехе операции.
type BusinessError struct {
	Message      string
	MessageID    string
	DetailErrors []string
}

// Error возвращает текстовое описание ошибки.
func (e *BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "operation rejected by server"
}

// ErrorKind классифицирует ошибку клиента для слоя представления.
type ErrorKind string

const (
	KindNetwork  ErrorKind = "network"
	KindTimeout  ErrorKind = "timeout"
	KindHTTP     ErrorKind = "http"
	KindBusiness ErrorKind = "business"
	KindParse    ErrorKind = "parse"
	// KindValidation присваивается ошибкам, перехваченным до сетевого вызова.
	KindValidation ErrorKind = "validation"
)

// Classify сводит любую ошибку клиента к паре (вид, сообщение для пользователя).
// Для HTTP- и бизнес-ошибок предпочитается сообщение сервера.
func Classify(err error) (ErrorKind, string) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Envelope.Message != "" {
			return KindHTTP, httpErr.Envelope.Message
		}
		return KindHTTP, fmt.Sprintf("server returned status %d", httpErr.Status)
	}

	var bizErr *BusinessError
	if errors.As(err, &bizErr) {
		return KindBusiness, bizErr.Error()
	}

	if errors.Is(err, ErrTimeout) {
		return KindTimeout, "request timed out"
	}

	if errors.Is(err, ErrMalformedResponse) {
		return KindParse, "unexpected server response"
	}

	return KindNetwork, "network error occurred"
}
