// Package plans реализует HTTP-обработчик страницы тарифов.
//
// Вкладка периода оплаты берётся из параметра billing (monthly или annual)
// и нигде не сохраняется. Таблица сравнения строится из планов выбранного периода.
package plans

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

// Catalog источник тарифных планов по периоду оплаты.
type Catalog interface {
	Plans(period models.BillingPeriod) ([]models.SubscriptionPlan, error)
}

// Handler отдаёт страницу тарифов.
type Handler struct {
	log      *slog.Logger
	renderer Renderer
	catalog  Catalog
}

func New(log *slog.Logger, renderer Renderer, catalog Catalog) *Handler {
	return &Handler{
		log:      log,
		renderer: renderer,
		catalog:  catalog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pages.plans"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	period, billing := view.BillingPeriod(r.URL.Query().Get("billing"))

	plans, err := h.catalog.Plans(period)
	if err != nil {
		log.Error("failed to load plans", slog.String("period", string(period)), sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	trialPlans, err := h.catalog.Plans(models.PeriodMonthly)
	if err != nil {
		log.Error("failed to load trial plans", sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := view.NewSubscriptionPage(billing, plans, trialPlans)
	if err := h.renderer.Render(w, view.PageSubscription, page); err != nil {
		log.Error("failed to render page", sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
}
