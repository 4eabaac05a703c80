// Package session реализует жизненный цикл сессии пользователя.
//
// Менеджер является единственным источником истины о том, кто вошёл в
// систему, и единственным компонентом, записывающим и очищающим хранилище
// учётных данных.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/giakoii/my-store/internal/credential"
	"github.com/giakoii/my-store/internal/model"
)

// ErrSessionUnavailable возвращается, если после входа не удалось получить сессию.
var ErrSessionUnavailable = errors.New("session unavailable")

// State описывает состояние машины сессии.
type State int

const (
	// StateUnknown — начальное состояние до первой проверки.
	StateUnknown State = iota
	// StateLoading — выполняется запрос сессии.
	StateLoading
	// StateAuthenticated — сессия получена, пользователь вошёл.
	StateAuthenticated
	// StateAnonymous — токена нет или он отвергнут сервером.
	StateAnonymous
)

// Client описывает операции удалённого API, используемые менеджером сессии.
type Client interface {
	ExchangeToken(ctx context.Context, req model.LoginRequest) (model.TokenPair, error)
	GetSession(ctx context.Context) (model.Session, error)
}

// Manager поддерживает единственную текущую сессию клиента.
//
// Пересекающиеся вызовы Init, Login и Refresh не дедуплицируются: каждый
// выполняет собственный запрос, опубликованным становится результат
// последней записи.
type Manager struct {
	client Client
	store  credential.Store

	mu      sync.Mutex
	state   State
	session model.Session
}

// NewManager создаёт менеджер сессии поверх клиента API и хранилища учётных данных.
func NewManager(client Client, store credential.Store) *Manager {
	return &Manager{
		client: client,
		store:  store,
		state:  StateUnknown,
	}
}

// State возвращает текущее состояние машины сессии.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Current возвращает текущую сессию и признак аутентификации.
func (m *Manager) Current() (model.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, m.state == StateAuthenticated
}

func (m *Manager) publish(state State, session model.Session) {
	m.mu.Lock()
	m.state = state
	m.session = session
	m.mu.Unlock()
}

// Init выполняет первичную проверку сессии при запуске клиента.
// Без сохранённого токена сетевой запрос не выполняется. Отвергнутый или
// недоступный токен очищается, состояние становится анонимным.
func (m *Manager) Init(ctx context.Context) {
	if _, ok := m.store.Tokens(); !ok {
		m.publish(StateAnonymous, model.Session{})
		return
	}

	m.publish(StateLoading, model.Session{})

	session, err := m.client.GetSession(ctx)
	if err != nil {
		_ = m.store.Clear()
		m.publish(StateAnonymous, model.Session{})
		return
	}

	m.cacheUser(session)
	m.publish(StateAuthenticated, session)
}

// Login обменивает учётные данные на токены, сохраняет их и получает сессию.
// Неудача получения сессии очищает сохранённые токены и оставляет состояние
// анонимным: вход без сессии не считается состоявшимся.
func (m *Manager) Login(ctx context.Context, req model.LoginRequest) (model.Session, error) {
	tokens, err := m.client.ExchangeToken(ctx, req)
	if err != nil {
		return model.Session{}, err
	}

	if err := m.store.SetTokens(tokens); err != nil {
		return model.Session{}, err
	}

	session, err := m.client.GetSession(ctx)
	if err != nil {
		_ = m.store.Clear()
		m.publish(StateAnonymous, model.Session{})
		return model.Session{}, errors.Join(ErrSessionUnavailable, err)
	}

	m.cacheUser(session)
	m.publish(StateAuthenticated, session)
	return session, nil
}

// Logout синхронно очищает учётные данные и переводит сессию в анонимное
// состояние. Операция не может завершиться неудачей.
func (m *Manager) Logout() {
	_ = m.store.Clear()
	m.publish(StateAnonymous, model.Session{})
}

// Refresh повторно запрашивает сессию, не меняя опубликованное состояние до
// получения результата. Возвращает признак успеха вместо ошибки.
func (m *Manager) Refresh(ctx context.Context) bool {
	if _, ok := m.store.Tokens(); !ok {
		return false
	}

	session, err := m.client.GetSession(ctx)
	if err != nil {
		return false
	}

	m.cacheUser(session)
	m.publish(StateAuthenticated, session)
	return true
}

// cacheUser сохраняет данные пользователя в хранилище рядом с токенами.
func (m *Manager) cacheUser(session model.Session) {
	raw, err := json.Marshal(session)
	if err != nil {
		return
	}
	_ = m.store.SetUser(raw)
}

// TokenExpiry возвращает подсказку о сроке действия сохранённого токена,
// прочитанную из его claim exp без проверки подписи.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	tokens, ok := m.store.Tokens()
	if !ok {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokens.AccessToken, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
