package view

import "github.com/magabrotheeeer/research-portal/internal/models"

// Вкладки личного кабинета.
const (
	TabDownloads       = "downloads"
	TabWishlist        = "wishlist"
	TabConsultations   = "consultations"
	TabHistory         = "history"
	TabRecommendations = "recommendations"
)

var dashboardTabs = []struct {
	key, label, icon string
}{
	{TabDownloads, "Downloads", "download"},
	{TabWishlist, "Wishlist", "heart"},
	{TabConsultations, "Consultations", "calendar"},
	{TabHistory, "History", "clock"},
	{TabRecommendations, "For You", "star"},
}

// Tab ссылка-вкладка. Активная вкладка — состояние запроса, нигде не сохраняется.
type Tab struct {
	Key    string
	Label  string
	Icon   string
	Href   string
	Active bool
}

// Badge значок уровня подписки.
type Badge struct {
	Label   string
	Variant string
	Class   string
}

// Button кнопка или ссылка-действие.
type Button struct {
	Label   string
	Href    string
	Variant string
}

type DownloadRow struct {
	ID       string
	Title    string
	Category string
	Date     string
}

type WishlistRow struct {
	ID    string
	Title string
	Price string
	Date  string
}

type ConsultationRow struct {
	ID     string
	Expert string
	Topic  string
	When   string
}

type HistoryRow struct {
	ID    string
	Title string
	Date  string
}

// DashboardPage данные шаблона личного кабинета.
type DashboardPage struct {
	UserName        string
	Badge           Badge
	ValidUntil      string
	CTA             Button
	Tabs            []Tab
	ActiveTab       string
	Downloads       []DownloadRow
	Wishlist        []WishlistRow
	Consultations   []ConsultationRow
	History         []HistoryRow
	Recommendations []models.Recommendation
}

// NewDashboard строит страницу кабинета из снимка состояния пользователя.
// Неизвестная вкладка заменяется на вкладку загрузок.
func NewDashboard(state models.DashboardState, basePath, tab string) DashboardPage {
	if !knownTab(tab) {
		tab = TabDownloads
	}

	page := DashboardPage{
		UserName:        state.UserName,
		Badge:           tierBadge(state.Tier),
		CTA:             tierCTA(state.Tier),
		ActiveTab:       tab,
		Recommendations: state.Recommendations,
	}
	if state.Tier != models.TierNone {
		page.ValidUntil = FormatDate(state.SubscriptionEndDate)
	}

	for _, t := range dashboardTabs {
		page.Tabs = append(page.Tabs, Tab{
			Key:    t.key,
			Label:  t.label,
			Icon:   t.icon,
			Href:   basePath + "?tab=" + t.key,
			Active: t.key == tab,
		})
	}

	for _, r := range state.Downloaded {
		page.Downloads = append(page.Downloads, DownloadRow{
			ID:       r.ID,
			Title:    r.Title,
			Category: r.Category,
			Date:     FormatDate(r.DownloadDate),
		})
	}
	for _, r := range state.Wishlist {
		page.Wishlist = append(page.Wishlist, WishlistRow{
			ID:    r.ID,
			Title: r.Title,
			Price: FormatPrice(r.Price),
			Date:  FormatDate(r.AddedDate),
		})
	}
	for _, c := range state.Consultations {
		page.Consultations = append(page.Consultations, ConsultationRow{
			ID:     c.ID,
			Expert: c.ExpertName,
			Topic:  c.Topic,
			When:   FormatSchedule(c.Date, c.Time),
		})
	}
	for _, r := range state.RecentlyViewed {
		page.History = append(page.History, HistoryRow{
			ID:    r.ID,
			Title: r.Title,
			Date:  FormatDate(r.ViewedDate),
		})
	}
	return page
}

func knownTab(tab string) bool {
	for _, t := range dashboardTabs {
		if t.key == tab {
			return true
		}
	}
	return false
}

func tierBadge(tier models.Tier) Badge {
	switch tier {
	case models.TierPremium:
		return Badge{Label: "Premium Plan", Variant: "default"}
	case models.TierBasic:
		return Badge{Label: "Basic Plan", Variant: "secondary"}
	default:
		return Badge{Label: "No Active Plan", Variant: "outline", Class: "bg-muted"}
	}
}

func tierCTA(tier models.Tier) Button {
	if tier == models.TierNone {
		return Button{Label: "Subscribe Now", Href: "/subscription", Variant: "default"}
	}
	return Button{Label: "Manage Subscription", Href: "/subscription", Variant: "outline"}
}
