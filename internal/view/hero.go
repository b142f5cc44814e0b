package view

import "github.com/magabrotheeeer/research-portal/internal/models"

// Стандартные тексты промо-блока.
const (
	DefaultHeroTitle                  = "Access Expert Research & Insights"
	DefaultHeroDescription            = "Discover comprehensive research reports from leading industry experts. Subscribe for unlimited access or purchase individual reports to make informed decisions."
	DefaultHeroBrowseReportsLabel     = "Browse Reports"
	DefaultHeroSubscriptionPlansLabel = "View Subscription Plans"
	DefaultHeroBackgroundImage        = "https://images.unsplash.com/photo-1507842217343-583bb7270b66?w=1200&q=80"
)

// HeroPage данные шаблона главной страницы.
type HeroPage struct {
	Title                  string
	Description            string
	BrowseReports          Button
	SubscriptionPlans      Button
	BackgroundImage        string
	SearchAction           string
	SearchPlaceholderLabel string
}

// NewHero подставляет стандартные тексты вместо пустых полей content.
func NewHero(content models.HeroContent) HeroPage {
	return HeroPage{
		Title:       or(content.Title, DefaultHeroTitle),
		Description: or(content.Description, DefaultHeroDescription),
		BrowseReports: Button{
			Label:   or(content.BrowseReportsLabel, DefaultHeroBrowseReportsLabel),
			Href:    "/categories",
			Variant: "default",
		},
		SubscriptionPlans: Button{
			Label:   or(content.SubscriptionPlansLabel, DefaultHeroSubscriptionPlansLabel),
			Href:    "/subscription",
			Variant: "outline",
		},
		BackgroundImage:        or(content.BackgroundImage, DefaultHeroBackgroundImage),
		SearchAction:           "/categories",
		SearchPlaceholderLabel: "Search for reports...",
	}
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
