// Package demo содержит образцы данных для предпросмотра витрины.
// Используется только при demo: true в конфиге и в тестах.
package demo

import "github.com/magabrotheeeer/research-portal/internal/models"

// UserID идентификатор демонстрационного пользователя.
const UserID = "john-doe"

// Dashboard возвращает демонстрационный снимок кабинета.
func Dashboard() models.DashboardState {
	return models.DashboardState{
		UserName:            "John Doe",
		Tier:                models.TierPremium,
		SubscriptionEndDate: "2023-12-31",
		Downloaded: []models.DownloadedReport{
			{ID: "1", Title: "Market Analysis 2023", DownloadDate: "2023-06-15", Category: "Market Research"},
			{ID: "2", Title: "Emerging Technologies in Finance", DownloadDate: "2023-05-22", Category: "Finance"},
			{ID: "3", Title: "Consumer Behavior Trends", DownloadDate: "2023-04-10", Category: "Consumer Research"},
		},
		Wishlist: []models.WishlistedReport{
			{ID: "4", Title: "Healthcare Industry Outlook", Price: 49.99, AddedDate: "2023-06-01"},
			{ID: "5", Title: "Renewable Energy Market Forecast", Price: 59.99, AddedDate: "2023-05-28"},
		},
		Consultations: []models.Consultation{
			{ID: "1", ExpertName: "Dr. Sarah Johnson", Date: "2023-07-15", Time: "10:00 AM", Topic: "Market Entry Strategy"},
		},
		RecentlyViewed: []models.ViewedReport{
			{ID: "6", Title: "AI in Business Operations", ViewedDate: "2023-06-18"},
			{ID: "7", Title: "Supply Chain Optimization", ViewedDate: "2023-06-17"},
		},
		Recommendations: []models.Recommendation{
			{
				Title:    "Global Supply Chain Trends 2023",
				Category: "Logistics & Operations",
				Summary:  "Comprehensive analysis of global supply chain trends and disruptions in 2023.",
			},
			{
				Title:    "Digital Transformation in Banking",
				Category: "Finance & Technology",
				Summary:  "How financial institutions are leveraging technology to transform their operations.",
			},
			{
				Title:    "Sustainable Business Practices",
				Category: "Environmental Studies",
				Summary:  "Research on implementing sustainable practices in business operations.",
			},
		},
	}
}

// Dashboards возвращает демонстрационные снимки по идентификатору пользователя.
func Dashboards() map[string]models.DashboardState {
	return map[string]models.DashboardState{
		UserID: Dashboard(),
	}
}
