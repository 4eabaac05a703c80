package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/giakoii/my-store/internal/credential"
	"github.com/giakoii/my-store/internal/model"
)

func authCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == authCookieName {
			return cookie
		}
	}
	t.Fatalf("auth cookie not set")
	return nil
}

func storeWith(t *testing.T, tokens model.TokenPair, user string) credential.Store {
	t.Helper()
	store := credential.NewMemoryStore()
	if err := store.SetTokens(tokens); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	if user != "" {
		if err := store.SetUser([]byte(user)); err != nil {
			t.Fatalf("set user: %v", err)
		}
	}
	return store
}

func TestCookieCodec_RoundTrip(t *testing.T) {
	codec := NewCookieCodec("gateway-secret")

	tokens := model.TokenPair{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 3600}
	userBlob := `{"userId":5,"role":"Customer"}`

	rec := httptest.NewRecorder()
	if err := codec.WriteCookie(rec, storeWith(t, tokens, userBlob)); err != nil {
		t.Fatalf("write cookie: %v", err)
	}

	cookie := authCookie(t, rec)
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be http-only")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	restored := codec.readStore(req)
	got, ok := restored.Tokens()
	if !ok || got != tokens {
		t.Fatalf("tokens = %+v, ok = %v", got, ok)
	}

	session, ok := SessionFromStore(restored)
	if !ok || session.UserID != 5 || session.Role != model.RoleCustomer {
		t.Fatalf("session = %+v, ok = %v", session, ok)
	}
}

func TestCookieCodec_TamperedCookieIgnored(t *testing.T) {
	codec := NewCookieCodec("gateway-secret")

	rec := httptest.NewRecorder()
	if err := codec.WriteCookie(rec, storeWith(t, model.TokenPair{AccessToken: "acc"}, "")); err != nil {
		t.Fatalf("write cookie: %v", err)
	}

	cookie := authCookie(t, rec)
	cookie.Value += "x"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	if _, ok := codec.readStore(req).Tokens(); ok {
		t.Fatalf("tampered cookie yielded credentials")
	}
}

func TestCookieCodec_ForeignKeyIgnored(t *testing.T) {
	issuer := NewCookieCodec("secret-a")
	verifier := NewCookieCodec("secret-b")

	rec := httptest.NewRecorder()
	if err := issuer.WriteCookie(rec, storeWith(t, model.TokenPair{AccessToken: "acc"}, "")); err != nil {
		t.Fatalf("write cookie: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(authCookie(t, rec))

	if _, ok := verifier.readStore(req).Tokens(); ok {
		t.Fatalf("cookie signed with another key yielded credentials")
	}
}

func TestCookieCodec_EmptyStoreClearsCookie(t *testing.T) {
	codec := NewCookieCodec("gateway-secret")

	rec := httptest.NewRecorder()
	if err := codec.WriteCookie(rec, credential.NewMemoryStore()); err != nil {
		t.Fatalf("write cookie: %v", err)
	}

	cookie := authCookie(t, rec)
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("cookie not cleared: %+v", cookie)
	}
}

func TestWithCredentials_StoreInContext(t *testing.T) {
	codec := NewCookieCodec("gateway-secret")

	rec := httptest.NewRecorder()
	if err := codec.WriteCookie(rec, storeWith(t, model.TokenPair{AccessToken: "acc"}, "")); err != nil {
		t.Fatalf("write cookie: %v", err)
	}

	var seen credential.Store
	handler := codec.WithCredentials(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = StoreFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(authCookie(t, rec))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen == nil {
		t.Fatalf("store missing from context")
	}
	if tokens, ok := seen.Tokens(); !ok || tokens.AccessToken != "acc" {
		t.Fatalf("tokens = %+v, ok = %v", tokens, ok)
	}
}

func TestWithCredentials_NoCookieEmptyStore(t *testing.T) {
	codec := NewCookieCodec("gateway-secret")

	var seen credential.Store
	handler := codec.WithCredentials(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = StoreFromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == nil {
		t.Fatalf("store missing from context")
	}
	if _, ok := seen.Tokens(); ok {
		t.Fatalf("anonymous request got credentials")
	}
}

func TestRequireAdmin(t *testing.T) {
	codec := NewCookieCodec("gateway-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := codec.WithCredentials(RequireAdmin(next))

	serve := func(t *testing.T, user string) int {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		if user != "" {
			rec := httptest.NewRecorder()
			store := storeWith(t, model.TokenPair{AccessToken: "acc"}, user)
			if err := codec.WriteCookie(rec, store); err != nil {
				t.Fatalf("write cookie: %v", err)
			}
			req.AddCookie(authCookie(t, rec))
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := serve(t, ""); code != http.StatusUnauthorized {
		t.Fatalf("anonymous: status = %d, want 401", code)
	}
	if code := serve(t, `{"userId":5,"role":"Customer"}`); code != http.StatusForbidden {
		t.Fatalf("customer: status = %d, want 403", code)
	}
	if code := serve(t, `{"userId":1,"role":"Admin"}`); code != http.StatusNoContent {
		t.Fatalf("admin: status = %d, want 204", code)
	}
}

func TestSessionFromStore_MalformedBlob(t *testing.T) {
	store := credential.NewMemoryStore()
	_ = store.SetTokens(model.TokenPair{AccessToken: "acc"})
	_ = store.SetUser([]byte("{not-json"))

	if _, ok := SessionFromStore(store); ok {
		t.Fatalf("malformed user blob parsed as session")
	}
}

func TestNewCookieCodec_EmptySecretStillSigns(t *testing.T) {
	codec := NewCookieCodec("")

	rec := httptest.NewRecorder()
	if err := codec.WriteCookie(rec, storeWith(t, model.TokenPair{AccessToken: "acc"}, "")); err != nil {
		t.Fatalf("write cookie: %v", err)
	}

	value := authCookie(t, rec).Value
	if strings.Count(value, ".") != 2 {
		t.Fatalf("cookie value is not a compact jwt: %q", value)
	}
}
