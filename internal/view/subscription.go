package view

import (
	"github.com/magabrotheeeer/research-portal/internal/catalog"
	"github.com/magabrotheeeer/research-portal/internal/models"
)

// Вкладки периода оплаты на странице тарифов.
const (
	BillingMonthly = "monthly"
	BillingAnnual  = "annual"
)

// BillingPeriod возвращает период каталога для вкладки оплаты
// и нормализованный ключ вкладки. Неизвестный ключ означает месячную оплату.
func BillingPeriod(billing string) (models.BillingPeriod, string) {
	if billing == BillingAnnual {
		return models.PeriodYearly, BillingAnnual
	}
	return models.PeriodMonthly, BillingMonthly
}

// FeatureRow строка возможности в карточке плана.
type FeatureRow struct {
	Name     string
	Included bool
	Icon     string
	Class    string
	Tooltip  string
}

// PlanCard карточка тарифного плана.
type PlanCard struct {
	ID            string
	Name          string
	Description   string
	Price         string
	Period        string
	Popular       bool
	CardClass     string
	ButtonText    string
	ButtonVariant string
	Features      []FeatureRow
}

// ComparisonColumn заголовок столбца таблицы сравнения.
type ComparisonColumn struct {
	PlanID      string
	Name        string
	PriceLabel  string
	Popular     bool
	SelectLabel string
	Variant     string
}

// ComparisonTable таблица сравнения тарифов.
type ComparisonTable struct {
	Columns []ComparisonColumn
	Rows    []catalog.Row
}

// TrialButton кнопка пробного периода, выбирающая план.
type TrialButton struct {
	PlanID  string
	Label   string
	Variant string
}

// BillingTab вкладка периода оплаты.
type BillingTab struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

// SubscriptionPage данные шаблона страницы тарифов.
type SubscriptionPage struct {
	Title        string
	Subtitle     string
	SectionTitle string
	SectionText  string
	Billing      string
	BillingTabs  []BillingTab
	Plans        []PlanCard
	Comparison   ComparisonTable
	FAQ          []FAQItem
	Testimonials []Testimonial
	Trials       []TrialButton
	SelectAction string
}

// NewSubscriptionPage строит страницу тарифов. plans — планы выбранного периода,
// trialPlans — планы для кнопок "Try ... Plan" внизу страницы.
func NewSubscriptionPage(billing string, plans, trialPlans []models.SubscriptionPlan) SubscriptionPage {
	_, billing = BillingPeriod(billing)

	page := SubscriptionPage{
		Title:        "Research Subscription Plans",
		Subtitle:     "Get unlimited access to expert research reports and consultations with our flexible subscription options",
		SectionTitle: "Choose Your Research Plan",
		SectionText:  "Get access to expert research reports and consultations with flexible subscription options",
		Billing:      billing,
		BillingTabs: []BillingTab{
			{Key: BillingMonthly, Label: "Monthly Billing", Href: "/subscription?billing=" + BillingMonthly, Active: billing == BillingMonthly},
			{Key: BillingAnnual, Label: "Annual Billing (Save 20%)", Href: "/subscription?billing=" + BillingAnnual, Active: billing == BillingAnnual},
		},
		Comparison:   NewComparison(plans),
		FAQ:          faq,
		Testimonials: testimonials,
		SelectAction: "/plans/select",
	}

	for _, p := range plans {
		page.Plans = append(page.Plans, NewPlanCard(p))
	}
	for i, p := range trialPlans {
		variant := "secondary"
		if i > 0 {
			variant = "outline"
		}
		page.Trials = append(page.Trials, TrialButton{PlanID: p.ID, Label: "Try " + p.Name + " Plan", Variant: variant})
	}
	return page
}

// NewPlanCard строит карточку плана. Невключённые возможности получают
// другую иконку и приглушённый стиль.
func NewPlanCard(p models.SubscriptionPlan) PlanCard {
	card := PlanCard{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         FormatPrice(p.Price),
		Period:        string(p.Period),
		Popular:       p.Popular,
		ButtonText:    p.ButtonText,
		ButtonVariant: "outline",
	}
	if p.Popular {
		card.CardClass = "border-primary shadow-lg"
		card.ButtonVariant = "default"
	}

	for _, f := range p.Features {
		row := FeatureRow{
			Name:     f.Name,
			Included: f.Included,
			Icon:     "check",
			Class:    "feature-included",
			Tooltip:  f.Tooltip,
		}
		if !f.Included {
			row.Icon = "x"
			row.Class = "feature-excluded text-muted-foreground"
		}
		card.Features = append(card.Features, row)
	}
	return card
}

// NewComparison строит таблицу сравнения из возможностей планов.
func NewComparison(plans []models.SubscriptionPlan) ComparisonTable {
	cmp := catalog.Compare(plans...)

	table := ComparisonTable{Rows: cmp.Rows}
	for _, c := range cmp.Columns {
		variant := "outline"
		if c.Popular {
			variant = "default"
		}
		table.Columns = append(table.Columns, ComparisonColumn{
			PlanID:      c.PlanID,
			Name:        c.Name,
			PriceLabel:  FormatPrice(c.Price) + "/" + periodUnit(c.Period),
			Popular:     c.Popular,
			SelectLabel: "Select " + c.Name,
			Variant:     variant,
		})
	}
	return table
}

func periodUnit(p models.BillingPeriod) string {
	if p == models.PeriodYearly {
		return "year"
	}
	return "month"
}
