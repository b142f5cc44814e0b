// Package selectplan принимает форму выбора тарифа со страницы тарифов.
//
// Обработчик выбора вызывается ровно один раз на отправку формы, после чего
// браузер возвращается на ту же вкладку оплаты.
package selectplan

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/research-portal/internal/lib/sl"
	"github.com/magabrotheeeer/research-portal/internal/models"
	"github.com/magabrotheeeer/research-portal/internal/selection"
	"github.com/magabrotheeeer/research-portal/internal/view"
)

// Catalog ищет план по идентификатору.
type Catalog interface {
	Plan(id string) (models.SubscriptionPlan, bool)
}

type Handler struct {
	log      *slog.Logger
	catalog  Catalog
	onSelect selection.Handler
}

func New(log *slog.Logger, catalog Catalog, onSelect selection.Handler) *Handler {
	if onSelect == nil {
		onSelect = selection.Noop
	}
	return &Handler{
		log:      log,
		catalog:  catalog,
		onSelect: onSelect,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pages.selectplan"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	planID := r.PostForm.Get("plan_id")
	if planID == "" {
		log.Info("plan_id is missing")
		http.Error(w, "plan_id is required", http.StatusBadRequest)
		return
	}

	if _, ok := h.catalog.Plan(planID); !ok {
		log.Info("unknown plan", slog.String("plan_id", planID))
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	}

	h.onSelect(planID)

	_, billing := view.BillingPeriod(r.PostForm.Get("billing"))
	http.Redirect(w, r, "/subscription?billing="+billing, http.StatusSeeOther)
}
