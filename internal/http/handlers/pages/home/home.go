// Package home реализует HTTP-обработчик главной страницы с промо-блоком.
package home

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/research-portal/internal/lib/sl"
	"github.com/magabrotheeeer/research-portal/internal/models"
	"github.com/magabrotheeeer/research-portal/internal/view"
)

// Renderer отрисовывает страницу по имени шаблона.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler отдаёт главную страницу.
type Handler struct {
	log      *slog.Logger
	renderer Renderer
	content  models.HeroContent
}

// New создает Handler. Пустые поля content заменяются стандартными текстами.
func New(log *slog.Logger, renderer Renderer, content models.HeroContent) *Handler {
	return &Handler{
		log:      log,
		renderer: renderer,
		content:  content,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pages.home"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, view.PageHome, view.NewHero(h.content)); err != nil {
		log.Error("failed to render page", sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
}
