// Package catalog предоставляет каталог тарифных планов по периодам оплаты
// и построение таблицы сравнения тарифов.
//
// Встроенный каталог статичен: месячный и годовой наборы задаются отдельно,
// годовые цены не вычисляются из месячных при отрисовке.
package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/research-portal/internal/models"
)

// ErrDuplicatePlanID возвращается, если идентификатор плана встречается в каталоге дважды.
var ErrDuplicatePlanID = errors.New("duplicate plan id")

// ErrUnknownPeriod возвращается для неизвестного периода оплаты.
var ErrUnknownPeriod = errors.New("unknown billing period")

// Catalog неизменяемый набор планов, сгруппированный по периоду оплаты.
type Catalog struct {
	plans map[models.BillingPeriod][]models.SubscriptionPlan
	byID  map[string]models.SubscriptionPlan
}

// New проверяет наборы планов и собирает из них каталог.
func New(monthly, annual []models.SubscriptionPlan) (*Catalog, error) {
	const op = "catalog.New"

	all := make([]models.SubscriptionPlan, 0, len(monthly)+len(annual))
	all = append(all, monthly...)
	all = append(all, annual...)
	if err := Validate(all); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c := &Catalog{
		plans: map[models.BillingPeriod][]models.SubscriptionPlan{
			models.PeriodMonthly: clonePlans(monthly),
			models.PeriodYearly:  clonePlans(annual),
		},
		byID: make(map[string]models.SubscriptionPlan, len(all)),
	}
	for _, p := range all {
		c.byID[p.ID] = clonePlan(p)
	}
	return c, nil
}

// Default возвращает встроенный каталог.
func Default() *Catalog {
	c, err := New(Monthly(), Annual())
	if err != nil {
		panic(err)
	}
	return c
}

// Plans возвращает копию планов для периода оплаты.
func (c *Catalog) Plans(period models.BillingPeriod) ([]models.SubscriptionPlan, error) {
	plans, ok := c.plans[period]
	if !ok {
		return nil, fmt.Errorf("catalog.Plans: %w: %q", ErrUnknownPeriod, period)
	}
	return clonePlans(plans), nil
}

// Plan ищет план по идентификатору во всех периодах.
func (c *Catalog) Plan(id string) (models.SubscriptionPlan, bool) {
	p, ok := c.byID[id]
	if !ok {
		return models.SubscriptionPlan{}, false
	}
	return clonePlan(p), true
}

// Validate проверяет планы: обязательные поля, неотрицательную цену
// и уникальность идентификаторов.
func Validate(plans []models.SubscriptionPlan) error {
	const op = "catalog.Validate"

	validate := validator.New()
	seen := make(map[string]struct{}, len(plans))
	for _, p := range plans {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("%s: plan %q: %w", op, p.ID, err)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%s: %w: %q", op, ErrDuplicatePlanID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func clonePlans(plans []models.SubscriptionPlan) []models.SubscriptionPlan {
	out := make([]models.SubscriptionPlan, len(plans))
	for i, p := range plans {
		out[i] = clonePlan(p)
	}
	return out
}

func clonePlan(p models.SubscriptionPlan) models.SubscriptionPlan {
	p.Features = append([]models.PlanFeature(nil), p.Features...)
	return p
}
