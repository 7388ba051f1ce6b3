package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareRecordsRouteTemplate(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/api/products/:id", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Product not found")
	})
	app.Get("/metrics", Handler())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/products/:id", "404"))
	resp, err := app.Test(httptest.NewRequest("GET", "/api/products/77", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/products/:id", "404"))
	if after-before != 1 {
		t.Fatalf("counter delta = %v", after-before)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "packcatalog_http_requests_total") {
		t.Fatalf("metrics output missing counter")
	}
}
