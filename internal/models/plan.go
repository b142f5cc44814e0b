// Package models содержит доменные структуры витрины: тарифные планы,
// их возможности, снимок состояния личного кабинета и тексты промо-блока.
// Все структуры — неизменяемые снимки, слой представления их не модифицирует.
package models

// BillingPeriod период оплаты тарифного плана.
type BillingPeriod string

const (
	// PeriodMonthly — ежемесячная оплата.
	PeriodMonthly BillingPeriod = "monthly"
	// PeriodYearly — ежегодная оплата.
	PeriodYearly BillingPeriod = "yearly"
)

// PlanFeature описывает одну возможность тарифа.
//
// Row, Value и RowHint используются только таблицей сравнения тарифов:
// Row — название строки сравнения, Value — текст ячейки,
// RowHint — подсказка к строке.
type PlanFeature struct {
	Name     string `json:"name" validate:"required"`
	Included bool   `json:"included"`
	Tooltip  string `json:"tooltip,omitempty"`
	Row      string `json:"row,omitempty"`
	Value    string `json:"value,omitempty"`
	RowHint  string `json:"row_hint,omitempty"`
}

// SubscriptionPlan тарифный план подписки.
type SubscriptionPlan struct {
	ID          string        `json:"id" validate:"required"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Price       float64       `json:"price" validate:"gte=0"`
	Period      BillingPeriod `json:"period" validate:"required,oneof=monthly yearly"`
	Features    []PlanFeature `json:"features" validate:"dive"`
	Popular     bool          `json:"popular,omitempty"`
	ButtonText  string        `json:"button_text" validate:"required"`
}
