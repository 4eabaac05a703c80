// Package middleware содержит HTTP middleware шлюза магазина.
package middleware

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/giakoii/my-store/internal/credential"
	"github.com/giakoii/my-store/internal/model"
)

type contextKey string

const storeKey contextKey = "credentialStore"

const (
	authCookieName = "auth_token"
	authCookieTTL  = 30 * 24 * time.Hour
)

// credentialClaims переносит учётные данные вышестоящего API внутри
// подписанного cookie шлюза.
type credentialClaims struct {
	jwt.RegisteredClaims
	AccessToken  string `json:"act"`
	RefreshToken string `json:"rft,omitempty"`
	ExpiresIn    int64  `json:"exi,omitempty"`
	User         string `json:"usr,omitempty"`
}

// CookieCodec подписывает и разбирает cookie с учётными данными (JWT HS256).
type CookieCodec struct {
	secretKey []byte
}

// NewCookieCodec создаёт кодек cookie с указанным секретным ключом.
func NewCookieCodec(secret string) *CookieCodec {
	key := []byte(secret)
	if len(key) == 0 {
		randomKey := make([]byte, 32)
		if _, err := rand.Read(randomKey); err == nil {
			key = randomKey
		} else {
			key = []byte("default-secret-key")
		}
	}

	return &CookieCodec{secretKey: key}
}

// WriteCookie выписывает cookie с содержимым указанного хранилища.
func (c *CookieCodec) WriteCookie(w http.ResponseWriter, store credential.Store) error {
	tokens, ok := store.Tokens()
	if !ok {
		c.ClearCookie(w)
		return nil
	}

	claims := credentialClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(authCookieTTL)),
		},
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}
	if raw, ok := store.User(); ok {
		claims.User = string(raw)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	value, err := token.SignedString(c.secretKey)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(authCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie удаляет cookie с учётными данными.
func (c *CookieCodec) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// readStore восстанавливает хранилище учётных данных из cookie запроса.
// Отсутствующий или невалидный cookie даёт пустое хранилище.
func (c *CookieCodec) readStore(r *http.Request) credential.Store {
	store := credential.NewMemoryStore()

	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return store
	}

	claims := &credentialClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secretKey, nil
	})
	if err != nil || !token.Valid || claims.AccessToken == "" {
		return store
	}

	_ = store.SetTokens(model.TokenPair{
		AccessToken:  claims.AccessToken,
		RefreshToken: claims.RefreshToken,
		ExpiresIn:    claims.ExpiresIn,
	})
	if claims.User != "" {
		_ = store.SetUser([]byte(claims.User))
	}

	return store
}

// WithCredentials добавляет в контекст запроса хранилище учётных данных,
// восстановленное из cookie. Запросы без cookie получают пустое хранилище,
// поскольку публичные страницы доступны анонимно.
func (c *CookieCodec) WithCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store := c.readStore(r)
		ctx := context.WithValue(r.Context(), storeKey, store)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StoreFromContext извлекает хранилище учётных данных из контекста запроса.
func StoreFromContext(ctx context.Context) (credential.Store, bool) {
	store, ok := ctx.Value(storeKey).(credential.Store)
	return store, ok
}

// SessionFromStore разбирает кэшированные данные пользователя из хранилища.
func SessionFromStore(store credential.Store) (model.Session, bool) {
	raw, ok := store.User()
	if !ok {
		return model.Session{}, false
	}

	var session model.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return model.Session{}, false
	}
	return session, true
}

// RequireAdmin пропускает запрос только при административной роли в
// кэшированных данных пользователя. Окончательную проверку прав выполняет
// вышестоящий API по токену.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := StoreFromContext(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		session, ok := SessionFromStore(store)
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if session.Role != model.RoleAdmin {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
