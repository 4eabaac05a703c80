package credential

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/giakoii/my-store/internal/model"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Tokens(); ok {
		t.Fatalf("empty store must not report tokens")
	}

	tokens := model.TokenPair{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 3600}
	if err := store.SetTokens(tokens); err != nil {
		t.Fatalf("set tokens: %v", err)
	}

	got, ok := store.Tokens()
	if !ok || got != tokens {
		t.Fatalf("tokens = %+v, ok = %v", got, ok)
	}

	if err := store.SetUser([]byte(`{"userId":1}`)); err != nil {
		t.Fatalf("set user: %v", err)
	}
	raw, ok := store.User()
	if !ok || string(raw) != `{"userId":1}` {
		t.Fatalf("user = %s, ok = %v", raw, ok)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := store.Tokens(); ok {
		t.Fatalf("tokens survived clear")
	}
	if _, ok := store.User(); ok {
		t.Fatalf("user survived clear")
	}
}

func TestFileStore_PersistsFixedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)

	tokens := model.TokenPair{AccessToken: "acc-file", RefreshToken: "ref-file", ExpiresIn: 1800}
	if err := store.SetTokens(tokens); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	if err := store.SetUser([]byte(`{"userId":7,"role":"Admin"}`)); err != nil {
		t.Fatalf("set user: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		t.Fatalf("decode file: %v", err)
	}
	if values["access_token"] != "acc-file" {
		t.Fatalf("access_token = %q", values["access_token"])
	}
	if values["refresh_token"] != "ref-file" {
		t.Fatalf("refresh_token = %q", values["refresh_token"])
	}
	if values["user"] == "" {
		t.Fatalf("user key missing")
	}

	// Новый экземпляр читает те же значения с диска.
	reopened := NewFileStore(path)
	got, ok := reopened.Tokens()
	if !ok || got != tokens {
		t.Fatalf("tokens = %+v, ok = %v", got, ok)
	}
}

func TestFileStore_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)

	if err := store.SetTokens(model.TokenPair{AccessToken: "acc"}); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("credentials file still exists")
	}
	if _, ok := store.Tokens(); ok {
		t.Fatalf("tokens survived clear")
	}

	// Повторная очистка пустого хранилища не является ошибкой.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestFileStore_MissingFileIsAnonymous(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	if _, ok := store.Tokens(); ok {
		t.Fatalf("missing file must not report tokens")
	}
	if _, ok := store.User(); ok {
		t.Fatalf("missing file must not report user")
	}
}
