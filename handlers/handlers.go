// Package handlers exposes the scrape pipeline and the page store over
// HTTP.
package handlers

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"pagemirror/scraper"
	"pagemirror/store"
)

// Handler wires the scrape service and page store to the fiber routes.
type Handler struct {
	service *scraper.Service
	pages   *store.PageStore
	log     *logrus.Logger
}

// New returns a Handler.
func New(service *scraper.Service, pages *store.PageStore, log *logrus.Logger) *Handler {
	return &Handler{service: service, pages: pages, log: log}
}

// Home renders the scrape form.
func (h *Handler) Home(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}

// Scrape runs the pipeline for the submitted URL and redirects to the
// render view of the new record.
func (h *Handler) Scrape(c *fiber.Ctx) error {
	url := c.FormValue("url")
	if url == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "URL cannot be empty",
		})
	}

	rec, err := h.service.Scrape(c.UserContext(), url)
	switch {
	case errors.Is(err, store.ErrDuplicateURL):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "This URL has already been scraped.",
		})
	case errors.Is(err, scraper.ErrFetchFailed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to fetch the URL: %s", err.Error()),
		})
	case err != nil:
		h.log.WithField("url", url).WithError(err).Error("scrape failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to scrape the URL",
		})
	}

	return c.Redirect("/render/"+rec.ID, fiber.StatusSeeOther)
}

// RenderPage looks up a stored record and renders its HTML with the
// archived asset paths. The id comes from the path or, failing that, the
// template_id query parameter.
func (h *Handler) RenderPage(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		id = c.Query("template_id")
	}

	rec, err := h.pages.FindByID(c.UserContext(), id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid template ID.",
		})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Template not found.",
		})
	case err != nil:
		h.log.WithField("id", id).WithError(err).Error("failed to load page record")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load the stored page",
		})
	}

	return c.Render("render", fiber.Map{
		// The stored document is emitted as-is; escaping it would destroy
		// the page being re-rendered.
		"HTMLContent": template.HTML(rec.HTML),
		"CSSFiles":    rec.CSSPaths,
		"JSFiles":     rec.JSPaths,
	})
}

// ListPages returns every stored record as JSON, newest first.
func (h *Handler) ListPages(c *fiber.Ctx) error {
	recs, err := h.pages.List(c.UserContext())
	if err != nil {
		h.log.WithError(err).Error("failed to list page records")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list pages",
		})
	}
	return c.JSON(recs)
}

// SetupRoutes registers all routes on app.
func (h *Handler) SetupRoutes(app *fiber.App) {
	app.Get("/", h.Home)
	app.Post("/scrape", h.Scrape)
	app.Get("/render", h.RenderPage)
	app.Get("/render/:id", h.RenderPage)
	app.Get("/api/pages", h.ListPages)
}
