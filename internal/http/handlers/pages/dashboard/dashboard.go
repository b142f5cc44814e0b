// Package dashboard реализует HTTP-обработчик личного кабинета.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/research-portal/internal/lib/sl"
	"github.com/magabrotheeeer/research-portal/internal/models"
	"github.com/magabrotheeeer/research-portal/internal/session"
	"github.com/magabrotheeeer/research-portal/internal/view"
)

// Renderer отрисовывает страницу по имени шаблона.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Source источник снимков кабинета.
type Source interface {
	Dashboard(ctx context.Context, userID string) (models.DashboardState, error)
}

// Handler отдаёт страницу кабинета для пользователя из пути.
type Handler struct {
	log      *slog.Logger
	renderer Renderer
	source   Source
}

func New(log *slog.Logger, renderer Renderer, source Source) *Handler {
	return &Handler{
		log:      log,
		renderer: renderer,
		source:   source,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pages.dashboard"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "user")
	log = log.With(slog.String("user", userID))

	state, err := h.source.Dashboard(r.Context(), userID)
	if errors.Is(err, session.ErrNotFound) {
		log.Info("dashboard state not found")
		h.notFound(w, log, fmt.Sprintf("No dashboard for user %q.", userID))
		return
	}
	if err != nil {
		log.Error("failed to load dashboard state", sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page := view.NewDashboard(state, "/dashboard/"+userID, r.URL.Query().Get("tab"))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, view.PageDashboard, page); err != nil {
		log.Error("failed to render page", sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) notFound(w http.ResponseWriter, log *slog.Logger, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.renderer.Render(w, view.PageNotFound, message); err != nil {
		log.Error("failed to render not found page", sl.Err(err))
	}
}
