package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/giakoii/my-store/internal/model"
)

// Фиксированные имена ключей хранилища. Совпадают с ключами, под которыми
// веб-клиент держит учётные данные в локальном хранилище браузера.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyExpiresIn    = "expires_in"
	keyUser         = "user"
)

// FileStore хранит учётные данные в JSON-файле на диске.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore создаёт файловое хранилище по указанному пути.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create credentials dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Tokens возвращает сохранённую пару токенов.
func (s *FileStore) Tokens() (model.TokenPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return model.TokenPair{}, false
	}

	access := values[keyAccessToken]
	if access == "" {
		return model.TokenPair{}, false
	}

	expires, _ := strconv.ParseInt(values[keyExpiresIn], 10, 64)

	return model.TokenPair{
		AccessToken:  access,
		RefreshToken: values[keyRefreshToken],
		ExpiresIn:    expires,
	}, true
}

// User возвращает кэшированные данные пользователя.
func (s *FileStore) User() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return nil, false
	}

	raw, ok := values[keyUser]
	if !ok || raw == "" {
		return nil, false
	}
	return []byte(raw), true
}

// SetTokens сохраняет пару токенов.
func (s *FileStore) SetTokens(tokens model.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		values = map[string]string{}
	}

	values[keyAccessToken] = tokens.AccessToken
	values[keyRefreshToken] = tokens.RefreshToken
	values[keyExpiresIn] = strconv.FormatInt(tokens.ExpiresIn, 10)

	return s.save(values)
}

// SetUser сохраняет кэшированные данные пользователя.
func (s *FileStore) SetUser(raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		values = map[string]string{}
	}

	values[keyUser] = string(raw)

	return s.save(values)
}

// Clear удаляет файл с учётными данными.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
