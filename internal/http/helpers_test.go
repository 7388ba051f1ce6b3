package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"packcatalog/internal/config"
	"packcatalog/internal/http/handlers"
	applog "packcatalog/internal/log"
	"packcatalog/internal/repos"
	"packcatalog/internal/services"
)

func testConfig() config.Config {
	return config.Config{
		BodyLimit:  1 << 20,
		RateMax:    1000,
		RateWindow: time.Minute,
		Auth: config.AuthConfig{
			SessionTTL:   time.Hour,
			LoginRateMax: 100,
			LoginRateWin: time.Minute,
		},
		WhatsApp: config.WhatsAppConfig{Number: "919876543210"},
	}
}

// newApp returns a fully wired app over a seeded in-memory database.
func newApp(t *testing.T, cfg config.Config) (*fiber.App, *repos.Store) {
	t.Helper()
	applog.Init("error", false, io.Discard)

	db, err := repos.OpenDB("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	store := repos.NewStore(db)
	if err := services.Bootstrap(context.Background(), store, nil, "password123"); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return handlers.NewApp(handlers.NewDeps(store, cfg, nil), cfg), store
}

func do(t *testing.T, app *fiber.App, method, path, body, sid string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func cookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := do(t, app, "POST", "/api/login", `{"username":"admin","password":"password123"}`, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status %d", resp.StatusCode)
	}
	c := cookie(resp, "sid")
	if c == nil || c.Value == "" {
		t.Fatal("login did not set sid cookie")
	}
	return c.Value
}
