package handlers

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// Views returns the template engine for the few HTML pages the server renders.
func Views() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

func isAPI(c *fiber.Ctx) bool {
	p := c.Path()
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

// NotFound answers unmatched routes: JSON under /api, an HTML page elsewhere.
func NotFound(c *fiber.Ctx) error {
	if isAPI(c) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found"})
	}
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
}
