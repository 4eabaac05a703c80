// Package credential содержит хранилище учётных данных клиента.
//
// Хранилище читается HTTP-клиентом при каждом исходящем запросе, а
// записывается и очищается только менеджером сессии.
package credential

import (
	"sync"

	"github.com/giakoii/my-store/internal/model"
)

// Store описывает контракт хранилища токенов и кэшированных данных пользователя.
type Store interface {
	// Tokens возвращает сохранённую пару токенов и признак её наличия.
	Tokens() (model.TokenPair, bool)
	// User возвращает кэшированные данные пользователя в сыром виде.
	User() ([]byte, bool)
	// SetTokens сохраняет пару токенов.
	SetTokens(tokens model.TokenPair) error
	// SetUser сохраняет кэшированные данные пользователя.
	SetUser(raw []byte) error
	// Clear удаляет токены и данные пользователя.
	Clear() error
}

// MemoryStore хранит учётные данные в памяти процесса.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens model.TokenPair
	hasTok bool
	user   []byte
}

// NewMemoryStore создаёт пустое хранилище в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Tokens возвращает сохранённую пару токенов.
func (s *MemoryStore) Tokens() (model.TokenPair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens, s.hasTok
}

// User возвращает кэшированные данные пользователя.
func (s *MemoryStore) User() ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	out := make([]byte, len(s.user))
	copy(out, s.user)
	return out, true
}

// SetTokens сохраняет пару токенов.
func (s *MemoryStore) SetTokens(tokens model.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokens
	s.hasTok = tokens.AccessToken != ""
	return nil
}

// SetUser сохраняет кэшированные данные пользователя.
func (s *MemoryStore) SetUser(raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = make([]byte, len(raw))
	copy(s.user, raw)
	return nil
}

// Clear удаляет токены и данные пользователя.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = model.TokenPair{}
	s.hasTok = false
	s.user = nil
	return nil
}
