package http

import (
	"context"
	"errors"
	"log"
	"time"

	"cv-generator/internal/domain"
	"cv-generator/internal/model"
	"cv-generator/internal/progress"
	"cv-generator/internal/render"
	"cv-generator/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PDFRenderer prints an HTML document to PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Generator submits a finished aggregate to the external generate endpoint.
type Generator interface {
	Configured() bool
	Generate(ctx context.Context, cv *model.CVData) (map[string]interface{}, error)
}

// ExportsRepo records export history, best-effort.
type ExportsRepo interface {
	Save(ctx context.Context, e *domain.ExportRecord) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.ExportRecord, error)
}

type Handler struct {
	store      *session.Store
	renderer   *render.Renderer
	pdf        PDFRenderer
	gen        Generator
	repo       ExportsRepo
	schemaPath string
}

func NewHandler(store *session.Store, renderer *render.Renderer, pdf PDFRenderer, gen Generator, repo ExportsRepo, schemaPath string) *Handler {
	return &Handler{store: store, renderer: renderer, pdf: pdf, gen: gen, repo: repo, schemaPath: schemaPath}
}

// Register wires all routes onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", h.Health)

	app.Post("/sessions", h.CreateSession)
	app.Get("/sessions/:id", h.GetSession)
	app.Put("/sessions/:id/sections/:key", h.ReplaceSection)
	app.Put("/sessions/:id/active-section/:name", h.SetActiveSection)
	app.Post("/sessions/:id/roles/:tag", h.SelectRole)
	app.Delete("/sessions/:id/roles/:tag", h.DeselectRole)
	app.Put("/sessions/:id/roles/:tag/fields", h.ReplaceRoleFields)
	app.Get("/sessions/:id/progress", h.GetProgress)
	app.Post("/sessions/:id/preview", h.EnterPreview)
	app.Post("/sessions/:id/edit", h.ExitPreview)
	app.Get("/sessions/:id/preview.html", h.PreviewHTML)
	app.Post("/sessions/:id/export", h.ExportPDF)
	app.Get("/sessions/:id/exports", h.ListExports)
	app.Post("/sessions/:id/submit", h.Submit)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	s, err := h.store.Create()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(sessionResponse(s))
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return notFound(c)
	}
	return c.JSON(sessionResponse(s))
}

func (h *Handler) ReplaceSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}
	key := c.Params("key")
	s, err := h.store.Update(id, func(s *session.Session) error {
		return s.ReplaceSection(key, c.Body())
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			return notFound(c)
		case errors.Is(err, session.ErrUnknownSection):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload: " + err.Error()})
		}
	}
	return c.JSON(sessionResponse(s))
}

func (h *Handler) SetActiveSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}
	name := c.Params("name")
	valid := false
	for _, n := range progress.SectionNames {
		if n == name {
			valid = true
			break
		}
	}
	if !valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown section tab"})
	}
	s, err := h.store.Update(id, func(s *session.Session) error {
		s.SetActiveSection(name)
		return nil
	})
	if err != nil {
		return notFound(c)
	}
	return c.JSON(sessionResponse(s))
}

func (h *Handler) SelectRole(c *fiber.Ctx) error   { return h.toggleRole(c, true) }
func (h *Handler) DeselectRole(c *fiber.Ctx) error { return h.toggleRole(c, false) }

func (h *Handler) toggleRole(c *fiber.Ctx, selected bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}
	tag := c.Params("tag")
	s, err := h.store.Update(id, func(s *session.Session) error {
		return s.ToggleRole(tag, selected)
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			return notFound(c)
		case errors.Is(err, session.ErrRoleSelected), errors.Is(err, session.ErrRoleNotFound):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(sessionResponse(s))
}

func (h *Handler) ReplaceRoleFields(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}
	tag := c.Params("tag")
	s, err := h.store.Update(id, func(s *session.Session) error {
		return s.ReplaceRoleFields(tag, c.Body())
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			return notFound(c)
		case errors.Is(err, session.ErrUnknownRole):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload: " + err.Error()})
		}
	}
	return c.JSON(sessionResponse(s))
}

func (h *Handler) GetProgress(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return notFound(c)
	}
	return c.JSON(progress.Estimate(s.CV))
}

func (h *Handler) EnterPreview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}
	s, err := h.store.Update(id, func(s *session.Session) error {
		return s.EnterPreview()
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			return notFound(c)
		case errors.Is(err, session.ErrPreviewGated):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error(), "mode": s.Mode})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(sessionResponse(s))
}

func (h *Handler) ExitPreview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}
	s, err := h.store.Update(id, func(s *session.Session) error {
		s.ExitPreview()
		return nil
	})
	if err != nil {
		return notFound(c)
	}
	return c.JSON(sessionResponse(s))
}

func (h *Handler) PreviewHTML(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return notFound(c)
	}
	html, err := h.renderer.RenderHTML(s.CV)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(html)
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return notFound(c)
	}
	if s.Mode != session.ModePreviewing {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": session.ErrNotPreviewing.Error()})
	}
	html, err := h.renderer.RenderHTML(s.CV)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	pdf, err := h.pdf.RenderHTMLToPDF(c.Context(), html)

	rec := &domain.ExportRecord{
		ID:        uuid.New(),
		SessionID: s.ID,
		Title:     s.CV.PersonalInfo.FullName,
		Kind:      domain.ExportKindPDF,
		Status:    "completed",
		CreatedAt: time.Now(),
	}
	if err != nil {
		rec.Status = "failed"
		rec.Detail = err.Error()
	}
	h.saveRecord(rec)

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "pdf render failed: " + err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="cv.pdf"`)
	return c.Send(pdf)
}

func (h *Handler) ListExports(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return notFound(c)
	}
	recs, err := h.repo.ListBySession(c.Context(), s.ID.String())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"exports": recs})
}

func (h *Handler) Submit(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return notFound(c)
	}
	if !h.gen.Configured() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "generate-cv endpoint not configured"})
	}
	if err := model.Validate(h.schemaPath, s.CV); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.gen.Generate(c.Context(), s.CV)

	rec := &domain.ExportRecord{
		ID:        uuid.New(),
		SessionID: s.ID,
		Title:     s.CV.PersonalInfo.FullName,
		Kind:      domain.ExportKindSubmission,
		Status:    "completed",
		CreatedAt: time.Now(),
	}
	if err != nil {
		rec.Status = "failed"
		rec.Detail = err.Error()
	}
	h.saveRecord(rec)

	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

func (h *Handler) session(c *fiber.Ctx) (*session.Session, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, session.ErrNotFound
	}
	return h.store.Get(id)
}

func (h *Handler) saveRecord(rec *domain.ExportRecord) {
	if h.repo == nil {
		return
	}
	if err := h.repo.Save(context.Background(), rec); err != nil {
		log.Printf("warning: failed to save export record: %v", err)
	}
}

func sessionResponse(s *session.Session) fiber.Map {
	return fiber.Map{
		"id":            s.ID.String(),
		"mode":          s.Mode,
		"activeSection": s.ActiveSection,
		"cv":            s.CV,
		"progress":      progress.Estimate(s.CV),
	}
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
}
