// Package list реализует JSON-эндпоинт каталога тарифов.
//
// Handler отдаёт планы одного периода оплаты вместе с таблицей сравнения,
// построенной из тех же планов.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/research-portal/internal/catalog"
	"github.com/magabrotheeeer/research-portal/internal/http/response"
	"github.com/magabrotheeeer/research-portal/internal/lib/sl"
	"github.com/magabrotheeeer/research-portal/internal/models"
	"github.com/magabrotheeeer/research-portal/internal/view"
)

// Catalog источник тарифных планов по периоду оплаты.
type Catalog interface {
	Plans(period models.BillingPeriod) ([]models.SubscriptionPlan, error)
}

type Handler struct {
	log     *slog.Logger
	catalog Catalog
}

// Plans тело успешного ответа.
type Plans struct {
	Billing    string                    `json:"billing" example:"monthly"`
	Plans      []models.SubscriptionPlan `json:"plans"`
	Comparison catalog.Comparison        `json:"comparison"`
}

func New(log *slog.Logger, catalog Catalog) *Handler {
	return &Handler{
		log:     log,
		catalog: catalog,
	}
}

// ServeHTTP godoc
// @Summary Тарифные планы
// @Description Возвращает планы выбранного периода оплаты и таблицу их сравнения.
// @Tags Plans
// @Produce  json
// @Param billing query string false "Период оплаты: monthly или annual" default(monthly)
// @Success 200 {object} response.Response{data=list.Plans} "Планы и сравнение"
// @Failure 500 {object} response.ErrorResponse "Каталог недоступен"
// @Router /plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plans.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	period, billing := view.BillingPeriod(r.URL.Query().Get("billing"))

	plans, err := h.catalog.Plans(period)
	if err != nil {
		log.Error("failed to load plans", slog.String("period", string(period)), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load plans"))
		return
	}

	render.JSON(w, r, response.OKWithData(Plans{
		Billing:    billing,
		Plans:      plans,
		Comparison: catalog.Compare(plans...),
	}))
}
