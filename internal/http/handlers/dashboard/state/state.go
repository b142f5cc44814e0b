// Package state реализует JSON-эндпоинт снимка личного кабинета.
package state

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/research-portal/internal/http/response"
	"github.com/magabrotheeeer/research-portal/internal/lib/sl"
	"github.com/magabrotheeeer/research-portal/internal/models"
	"github.com/magabrotheeeer/research-portal/internal/session"
)

// Source источник снимков кабинета.
type Source interface {
	Dashboard(ctx context.Context, userID string) (models.DashboardState, error)
}

type Handler struct {
	log    *slog.Logger
	source Source
}

func New(log *slog.Logger, source Source) *Handler {
	return &Handler{
		log:    log,
		source: source,
	}
}

// ServeHTTP godoc
// @Summary Снимок личного кабинета
// @Description Возвращает проверенный снимок состояния кабинета пользователя.
// @Tags Dashboard
// @Produce  json
// @Param user path string true "Идентификатор пользователя"
// @Success 200 {object} response.Response{data=models.DashboardState} "Снимок кабинета"
// @Failure 404 {object} response.ErrorResponse "Снимок не найден"
// @Failure 500 {object} response.ErrorResponse "Источник недоступен"
// @Router /dashboard/{user} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.state"
	userID := chi.URLParam(r, "user")
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("user", userID),
	)

	state, err := h.source.Dashboard(r.Context(), userID)
	if errors.Is(err, session.ErrNotFound) {
		log.Info("dashboard state not found")
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("dashboard not found"))
		return
	}
	if err != nil {
		log.Error("failed to load dashboard state", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load dashboard"))
		return
	}

	render.JSON(w, r, response.OKWithData(state))
}
