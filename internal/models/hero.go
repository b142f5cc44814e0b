package models

// HeroContent тексты и фон промо-блока главной страницы.
// Пустые поля заменяются стандартными текстами при отрисовке.
type HeroContent struct {
	Title                  string
	Description            string
	BrowseReportsLabel     string
	SubscriptionPlansLabel string
	BackgroundImage        string
}
