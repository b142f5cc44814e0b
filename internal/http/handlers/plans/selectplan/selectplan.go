// Package selectplan реализует JSON-эндпоинт выбора тарифа.
package selectplan

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/research-portal/internal/http/response"
	"github.com/magabrotheeeer/research-portal/internal/lib/sl"
	"github.com/magabrotheeeer/research-portal/internal/models"
	"github.com/magabrotheeeer/research-portal/internal/selection"
)

// Catalog ищет план по идентификатору.
type Catalog interface {
	Plan(id string) (models.SubscriptionPlan, bool)
}

// Request тело запроса на выбор тарифа.
type Request struct {
	PlanID string `json:"plan_id" validate:"required,max=64" example:"premium"`
}

type Handler struct {
	log      *slog.Logger
	catalog  Catalog
	onSelect selection.Handler
	validate *validator.Validate
}

func New(log *slog.Logger, catalog Catalog, onSelect selection.Handler) *Handler {
	if onSelect == nil {
		onSelect = selection.Noop
	}
	return &Handler{
		log:      log,
		catalog:  catalog,
		onSelect: onSelect,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Выбрать тариф
// @Description Передаёт идентификатор плана во внешний обработчик выбора. Результат оплаты сюда не возвращается.
// @Tags Plans
// @Accept  json
// @Produce  json
// @Param request body selectplan.Request true "Выбранный план"
// @Success 200 {object} response.Response{data=models.SubscriptionPlan} "Выбор принят"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "План не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 429 {object} response.ErrorResponse "Слишком много запросов"
// @Router /plans/select [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plans.selectplan"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(verrs))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request"))
		return
	}

	plan, ok := h.catalog.Plan(req.PlanID)
	if !ok {
		log.Info("unknown plan", slog.String("plan_id", req.PlanID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("plan not found"))
		return
	}

	h.onSelect(plan.ID)

	log.Info("plan selection accepted", slog.String("plan_id", plan.ID))
	render.JSON(w, r, response.OKWithData(plan))
}
