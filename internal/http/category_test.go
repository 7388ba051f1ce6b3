package handlers_test

import (
	"net/http"
	"testing"
)

type categoryJSON struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Image      *string `json:"image"`
	IsHomePage bool    `json:"isHomePage"`
}

func TestCategoryLifecycle(t *testing.T) {
	app, _ := newApp(t, testConfig())
	sid := login(t, app)

	resp := do(t, app, "POST", "/api/categories", `{"name":"Foils","image":"foil.png"}`, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous create: want 401, got %d", resp.StatusCode)
	}

	resp = do(t, app, "POST", "/api/categories", `{"name":"Foils","image":"foil.png"}`, sid)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", resp.StatusCode)
	}
	var c categoryJSON
	decode(t, resp, &c)
	if c.IsHomePage || c.Image == nil || *c.Image != "foil.png" {
		t.Fatalf("unexpected category: %+v", c)
	}

	resp = do(t, app, "POST", "/api/categories", `{"name":"Foils"}`, sid)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate: want 409, got %d", resp.StatusCode)
	}

	resp = do(t, app, "PATCH", "/api/categories/"+itoa(c.ID), `{"image":null,"isHomePage":true}`, sid)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch status %d", resp.StatusCode)
	}
	var up categoryJSON
	decode(t, resp, &up)
	if up.Image != nil || !up.IsHomePage || up.Name != "Foils" {
		t.Fatalf("unexpected patched category: %+v", up)
	}

	resp = do(t, app, "PATCH", "/api/categories/999", `{"name":"X"}`, sid)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("patch missing: want 404, got %d", resp.StatusCode)
	}

	resp = do(t, app, "GET", "/api/categories", "", "")
	var all []categoryJSON
	decode(t, resp, &all)
	if len(all) != 1 {
		t.Fatalf("want 1 category, got %d", len(all))
	}

	if resp := do(t, app, "DELETE", "/api/categories/"+itoa(c.ID), "", sid); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status %d", resp.StatusCode)
	}
	resp = do(t, app, "GET", "/api/categories", "", "")
	decode(t, resp, &all)
	if len(all) != 0 {
		t.Fatalf("category not deleted: %+v", all)
	}
}
