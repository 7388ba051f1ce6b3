package handlers_test

import (
	"net/http"
	"testing"
)

type productJSON struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	Category        string            `json:"category"`
	Description     string            `json:"description"`
	Specs           map[string]string `json:"specs"`
	Images          []string          `json:"images"`
	WhatsappEnabled bool              `json:"whatsappEnabled"`
	CreatedAt       string            `json:"createdAt"`
}

func TestProductsArePublicToRead(t *testing.T) {
	app, _ := newApp(t, testConfig())

	resp := do(t, app, "GET", "/api/products", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status %d", resp.StatusCode)
	}
	var all []productJSON
	decode(t, resp, &all)
	if len(all) != 3 {
		t.Fatalf("want 3 seeded products, got %d", len(all))
	}

	resp = do(t, app, "GET", "/api/products?category=Foils", "", "")
	var foils []productJSON
	decode(t, resp, &foils)
	if len(foils) != 1 || foils[0].Name != "Aluminum Blister Foil" {
		t.Fatalf("category filter: %+v", foils)
	}

	resp = do(t, app, "GET", "/api/products?category=foils", "", "")
	var none []productJSON
	decode(t, resp, &none)
	if len(none) != 0 {
		t.Fatalf("category match should be exact, got %d", len(none))
	}
}

func TestProductWritesRequireSession(t *testing.T) {
	app, _ := newApp(t, testConfig())

	cases := []struct{ method, path, body string }{
		{"POST", "/api/products", `{"name":"X","category":"Y","description":"Z","specs":{},"images":[]}`},
		{"PUT", "/api/products/1", `{"name":"X"}`},
		{"PATCH", "/api/products/1", `{"name":"X"}`},
		{"DELETE", "/api/products/1", ""},
	}
	for _, tc := range cases {
		resp := do(t, app, tc.method, tc.path, tc.body, "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s: want 401, got %d", tc.method, tc.path, resp.StatusCode)
		}
	}
	resp := do(t, app, "DELETE", "/api/products/1", "", "bogus-session")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unknown sid: want 401, got %d", resp.StatusCode)
	}

	resp = do(t, app, "GET", "/api/products/1", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("product 1 should be intact, got %d", resp.StatusCode)
	}
}

func TestProductCRUD(t *testing.T) {
	app, _ := newApp(t, testConfig())
	sid := login(t, app)

	resp := do(t, app, "POST", "/api/products",
		`{"name":"50ml Cup","category":"Measuring Cups","description":"PP cup","specs":{"capacity":"50ml"},"images":["a.png"]}`, sid)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var p productJSON
	decode(t, resp, &p)
	if p.ID == 0 || !p.WhatsappEnabled || p.Specs["capacity"] != "50ml" || p.CreatedAt == "" {
		t.Fatalf("unexpected product: %+v", p)
	}

	resp = do(t, app, "GET", "/api/products", "", "")
	var all []productJSON
	decode(t, resp, &all)
	if all[0].ID != p.ID {
		t.Fatalf("newest product should be listed first, got %d", all[0].ID)
	}

	resp = do(t, app, "PUT", "/api/products/"+itoa(p.ID), `{"name":"60ml Cup","whatsappEnabled":false}`, sid)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status %d", resp.StatusCode)
	}
	var up productJSON
	decode(t, resp, &up)
	if up.Name != "60ml Cup" || up.Category != "Measuring Cups" || up.WhatsappEnabled || up.Specs["capacity"] != "50ml" {
		t.Fatalf("partial update changed the wrong fields: %+v", up)
	}

	resp = do(t, app, "DELETE", "/api/products/"+itoa(p.ID), "", sid)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status %d", resp.StatusCode)
	}
	resp = do(t, app, "DELETE", "/api/products/"+itoa(p.ID), "", sid)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("repeat delete status %d", resp.StatusCode)
	}
	resp = do(t, app, "GET", "/api/products/"+itoa(p.ID), "", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted product still readable: %d", resp.StatusCode)
	}
}

func TestProductValidationAndNotFound(t *testing.T) {
	app, _ := newApp(t, testConfig())
	sid := login(t, app)

	resp := do(t, app, "POST", "/api/products", `{"name":"","category":"C","description":"D","specs":{},"images":[]}`, sid)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty name: want 400, got %d", resp.StatusCode)
	}
	var e struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	decode(t, resp, &e)
	if e.Field != "name" || e.Message == "" {
		t.Fatalf("unexpected error body: %+v", e)
	}

	resp = do(t, app, "POST", "/api/products", `{"name":"N","category":"C","description":"D","specs":{},"images":"nope"}`, sid)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad images type: want 400, got %d", resp.StatusCode)
	}

	resp = do(t, app, "POST", "/api/products", `{"name":"N","category":"C","description":"d","specs":{"a":null},"images":[null]}`, sid)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("null entries: want 400, got %d", resp.StatusCode)
	}
	resp = do(t, app, "GET", "/api/products", "", "")
	var all []productJSON
	decode(t, resp, &all)
	if len(all) != 3 {
		t.Fatalf("rejected product was stored: %d products", len(all))
	}

	resp = do(t, app, "PUT", "/api/products/999", `{"name":"X"}`, sid)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("update missing: want 404, got %d", resp.StatusCode)
	}
	decode(t, resp, &e)
	if e.Message != "Product not found" {
		t.Fatalf("message = %q", e.Message)
	}

	for _, path := range []string{"/api/products/999", "/api/products/abc", "/api/products/0"} {
		if resp := do(t, app, "GET", path, "", ""); resp.StatusCode != http.StatusNotFound {
			t.Fatalf("GET %s: want 404, got %d", path, resp.StatusCode)
		}
	}
}
