package catalog

import "github.com/magabrotheeeer/research-portal/internal/models"

// Цены годовых планов заданы константами, а не вычисляются из месячных.
const (
	BasicMonthlyPrice   = 29.99
	PremiumMonthlyPrice = 99.99
	BasicAnnualPrice    = 287.90
	PremiumAnnualPrice  = 959.90
)

const (
	basicDescription   = "Essential access to research reports and limited features"
	premiumDescription = "Full access to all reports and expert consultations"
)

func basicFeatures() []models.PlanFeature {
	return []models.PlanFeature{
		{Name: "Access to 100+ research reports", Included: true, Row: "Research Reports Access", Value: "100+ reports"},
		{Name: "Download up to 10 reports/month", Included: true, Row: "Monthly Downloads", Value: "10 reports"},
		{Name: "Basic search functionality", Included: true, Row: "Search Functionality", Value: "Basic"},
		{Name: "Email support", Included: true, Row: "Customer Support", Value: "Email only"},
		{
			Name:     "Expert consultations",
			Included: false,
			Tooltip:  "Available in Premium plan",
			Row:      "Expert Consultations",
			RowHint:  "One-on-one sessions with research experts",
		},
		{Name: "Priority access to new reports", Included: false, Row: "New Reports Access", Value: "Standard"},
		{Name: "Advanced analytics tools", Included: false, Row: "Analytics Tools"},
	}
}

func premiumFeatures() []models.PlanFeature {
	return []models.PlanFeature{
		{Name: "Unlimited access to all reports", Included: true, Row: "Research Reports Access", Value: "Unlimited"},
		{Name: "Unlimited downloads", Included: true, Row: "Monthly Downloads", Value: "Unlimited"},
		{Name: "Advanced search & filters", Included: true, Row: "Search Functionality", Value: "Advanced"},
		{Name: "Priority email & phone support", Included: true, Row: "Customer Support", Value: "Priority email & phone"},
		{
			Name:     "Monthly expert consultations",
			Included: true,
			Tooltip:  "2 hours of expert consultation per month",
			Row:      "Expert Consultations",
			Value:    "2 hours/month",
			RowHint:  "One-on-one sessions with research experts",
		},
		{Name: "Early access to new reports", Included: true, Row: "New Reports Access", Value: "Early access"},
		{Name: "Advanced analytics dashboard", Included: true, Row: "Analytics Tools", Value: "Advanced dashboard"},
	}
}

// Monthly возвращает копию встроенного набора месячных планов.
func Monthly() []models.SubscriptionPlan {
	return []models.SubscriptionPlan{
		{
			ID:          "basic",
			Name:        "Basic",
			Description: basicDescription,
			Price:       BasicMonthlyPrice,
			Period:      models.PeriodMonthly,
			ButtonText:  "Get Started",
			Features:    basicFeatures(),
		},
		{
			ID:          "premium",
			Name:        "Premium",
			Description: premiumDescription,
			Price:       PremiumMonthlyPrice,
			Period:      models.PeriodMonthly,
			Popular:     true,
			ButtonText:  "Subscribe Now",
			Features:    premiumFeatures(),
		},
	}
}

// Annual возвращает копию встроенного набора годовых планов.
func Annual() []models.SubscriptionPlan {
	return []models.SubscriptionPlan{
		{
			ID:          "basic-annual",
			Name:        "Basic",
			Description: basicDescription,
			Price:       BasicAnnualPrice,
			Period:      models.PeriodYearly,
			ButtonText:  "Get Started",
			Features:    basicFeatures(),
		},
		{
			ID:          "premium-annual",
			Name:        "Premium",
			Description: premiumDescription,
			Price:       PremiumAnnualPrice,
			Period:      models.PeriodYearly,
			Popular:     true,
			ButtonText:  "Subscribe Now",
			Features:    premiumFeatures(),
		},
	}
}
