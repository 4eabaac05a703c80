// Package api предоставляет клиент удалённого API магазина.
//
// Все исходящие запросы проходят через единый низкоуровневый путь: подстановка
// базового адреса, заголовок авторизации из хранилища учётных данных, таймаут
// и разбор единого конверта ответа.
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/giakoii/my-store/internal/credential"
)

// DefaultTimeout ограничивает длительность одного запроса, если не задано иное.
const DefaultTimeout = 30 * time.Second

// RawPayload представляет неразобранную полезную нагрузку конверта.
type RawPayload = json.RawMessage

// Envelope описывает единый конверт, в котором сервер возвращает каждый ответ.
type Envelope[T any] struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	Response     T        `json:"response"`
	MessageID    string   `json:"messageId"`
	DetailErrors []string `json:"detailErrors"`
}

// Client инкапсулирует HTTP-взаимодействие с удалённым API магазина.
type Client struct {
	baseURL    string
	creds      credential.Store
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient создаёт клиент API с указанным базовым адресом и хранилищем
// учётных данных.
func NewClient(baseURL string, creds credential.Store) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
	}
}

// WithStore возвращает копию клиента, читающую токен из другого хранилища.
// Используется шлюзом для привязки клиента к учётным данным запроса.
func (c *Client) WithStore(creds credential.Store) *Client {
	clone := *c
	clone.creds = creds
	return &clone
}

// WithTimeout возвращает копию клиента с другим таймаутом запросов.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	clone := *c
	clone.timeout = timeout
	return &clone
}

// Store возвращает хранилище учётных данных, с которым связан клиент.
func (c *Client) Store() credential.Store {
	return c.creds
}

func (c *Client) resolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// send выполняет запрос и возвращает статус и прочитанное тело ответа.
// Ошибки транспорта разделяются на таймаут и сетевые.
func (c *Client) send(ctx context.Context, method, rawURL, contentType string, body []byte, extra http.Header) (int, []byte, error) {
	timeout := c.timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	if c.creds != nil {
		if tokens, ok := c.creds.Tokens(); ok {
			req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, nil, fmt.Errorf("%s %s: %w", method, rawURL, ErrTimeout)
		}
		return 0, nil, fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, nil, fmt.Errorf("read body: %w", ErrTimeout)
		}
		return 0, nil, fmt.Errorf("read body: %w", err)
	}

	return resp.StatusCode, data, nil
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// newIdempotencyKey генерирует ключ идемпотентности для одной попытки мутации.
func newIdempotencyKey() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}

// request выполняет запрос к эндпоинту с единым конвертом и возвращает его
// полезную нагрузку. Тело запроса сериализуется в JSON, если оно не является
// уже готовой строкой или срезом байтов.
func request[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	var payload []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		payload = v
	case string:
		payload = []byte(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return zero, fmt.Errorf("encode body: %w", err)
		}
		payload = data
	}

	target := c.resolveURL(path)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var extra http.Header
	if isMutation(method) {
		extra = http.Header{}
		extra.Set("Idempotency-Key", newIdempotencyKey())
	}

	status, data, err := c.send(ctx, method, target, "application/json", payload, extra)
	if err != nil {
		return zero, err
	}

	if status < 200 || status > 299 {
		httpErr := &HTTPError{Status: status}
		// Конверт прикладывается по возможности, его отсутствие не скрывает статус.
		_ = json.Unmarshal(data, &httpErr.Envelope)
		return zero, httpErr
	}

	var env Envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return zero, fmt.Errorf("decode envelope: %w", ErrMalformedResponse)
	}

	if !env.Success {
		return zero, &BusinessError{
			Message:      env.Message,
			MessageID:    env.MessageID,
			DetailErrors: env.DetailErrors,
		}
	}

	return env.Response, nil
}
