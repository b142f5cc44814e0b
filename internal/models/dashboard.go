package models

// Tier уровень подписки пользователя.
type Tier string

const (
	TierBasic   Tier = "Basic"
	TierPremium Tier = "Premium"
	TierNone    Tier = "None"
)

// DownloadedReport отчёт, скачанный пользователем.
type DownloadedReport struct {
	ID           string `json:"id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	DownloadDate string `json:"download_date" validate:"required"` // YYYY-MM-DD
	Category     string `json:"category"`
}

// WishlistedReport отчёт, отложенный для покупки.
type WishlistedReport struct {
	ID        string  `json:"id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	AddedDate string  `json:"added_date" validate:"required"`
}

// Consultation запланированная консультация с экспертом.
type Consultation struct {
	ID         string `json:"id" validate:"required"`
	ExpertName string `json:"expert_name" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`
	Topic      string `json:"topic"`
}

// ViewedReport недавно просмотренный отчёт.
type ViewedReport struct {
	ID         string `json:"id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	ViewedDate string `json:"viewed_date" validate:"required"`
}

// Recommendation рекомендованный отчёт во вкладке "For You".
type Recommendation struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// DashboardState снимок данных пользователя, поставляемый внешней системой сессий.
// Поле SubscriptionEndDate не интерпретируется при Tier == TierNone.
type DashboardState struct {
	UserName            string             `json:"user_name" validate:"required"`
	Tier                Tier               `json:"tier" validate:"required,oneof=Basic Premium None"`
	SubscriptionEndDate string             `json:"subscription_end_date,omitempty"`
	Downloaded          []DownloadedReport `json:"downloaded" validate:"dive"`
	Wishlist            []WishlistedReport `json:"wishlist" validate:"dive"`
	Consultations       []Consultation     `json:"consultations" validate:"dive"`
	RecentlyViewed      []ViewedReport     `json:"recently_viewed" validate:"dive"`
	Recommendations     []Recommendation   `json:"recommendations,omitempty" validate:"dive"`
}
