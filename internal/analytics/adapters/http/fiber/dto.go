package fiber

import (
	"time"

	"video-analytics-service/internal/analytics/core/domain"
)

type UserEngagementResponse struct {
	UserID          string   `json:"userId"`
	TotalWatchTime  float64  `json:"totalWatchTime"`
	VideosWatched   int      `json:"videosWatched"`
	ProductsClicked int      `json:"productsClicked"`
	PurchaseCount   int      `json:"purchaseCount"`
	TotalSpent      float64  `json:"totalSpent"`
	ConversionRate  float64  `json:"conversionRate"`
	Sessions        []string `json:"sessions"`
}

type ProductPerformanceResponse struct {
	ProductID        string  `json:"productId"`
	ProductName      string  `json:"productName"`
	ProductCategory  string  `json:"productCategory"`
	Impressions      int     `json:"impressions"`
	Clicks           int     `json:"clicks"`
	Hovers           int     `json:"hovers"`
	AddToCartCount   int     `json:"addToCartCount"`
	Purchases        int     `json:"purchases"`
	Revenue          float64 `json:"revenue"`
	ClickThroughRate float64 `json:"clickThroughRate"`
	ConversionRate   float64 `json:"conversionRate"`
}

type ProductClicksResponse struct {
	ProductID string `json:"productId"`
	Clicks    int    `json:"clicks"`
}

type VideoAnalyticsResponse struct {
	VideoID            string                  `json:"videoId"`
	TotalViews         int                     `json:"totalViews"`
	CompletionRate     float64                 `json:"completionRate"`
	AvgWatchTime       float64                 `json:"avgWatchTime"`
	TotalProductClicks int                     `json:"totalProductClicks"`
	TopProducts        []ProductClicksResponse `json:"topProducts"`
	DropOffPoints      []float64               `json:"dropOffPoints"`
}

type SessionSummaryResponse struct {
	SessionID          string   `json:"sessionId"`
	UserID             string   `json:"userId"`
	StartTime          string   `json:"startTime"`
	EndTime            string   `json:"endTime"`
	Duration           float64  `json:"duration"`
	VideosWatched      []string `json:"videosWatched"`
	ProductsInteracted []string `json:"productsInteracted"`
	Purchased          bool     `json:"purchased"`
	TotalSpent         float64  `json:"totalSpent"`
}

type FunnelMetricsResponse struct {
	VideoViews            int     `json:"videoViews"`
	ProductClicks         int     `json:"productClicks"`
	AddToCarts            int     `json:"addToCarts"`
	Purchases             int     `json:"purchases"`
	ViewToClickRate       float64 `json:"viewToClickRate"`
	ClickToCartRate       float64 `json:"clickToCartRate"`
	CartToPurchaseRate    float64 `json:"cartToPurchaseRate"`
	OverallConversionRate float64 `json:"overallConversionRate"`
}

type HourlyMetricsResponse struct {
	Hour       string  `json:"hour"`
	EventCount int     `json:"eventCount"`
	Purchases  int     `json:"purchases"`
	Revenue    float64 `json:"revenue"`
}

type CartItemResponse struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
}

type AbandonedCartResponse struct {
	SessionID             string             `json:"sessionId"`
	UserID                string             `json:"userId"`
	CartItems             []CartItemResponse `json:"cartItems"`
	CartValue             float64            `json:"cartValue"`
	LastActivity          string             `json:"lastActivity"`
	TimeSinceLastActivity float64            `json:"timeSinceLastActivity"`
}

type UserCohortResponse struct {
	CohortDate         string  `json:"cohortDate"`
	UserCount          int     `json:"userCount"`
	TotalRevenue       float64 `json:"totalRevenue"`
	AvgRevenuePerUser  float64 `json:"avgRevenuePerUser"`
	RepeatPurchaseRate float64 `json:"repeatPurchaseRate"`
}

type WindowMetricsResponse struct {
	WindowStart     string  `json:"windowStart"`
	WindowEnd       string  `json:"windowEnd"`
	EventCount      int     `json:"eventCount"`
	UniqueUsers     int     `json:"uniqueUsers"`
	PurchaseCount   int     `json:"purchaseCount"`
	Revenue         float64 `json:"revenue"`
	EventsPerSecond float64 `json:"eventsPerSecond"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"user id is required"`
}

// formatTime renders RFC3339, keeping the empty-sentinel contract: the
// zero time becomes an empty string.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func toUserEngagementResponse(e domain.UserEngagement) UserEngagementResponse {
	return UserEngagementResponse{
		UserID:          e.UserID,
		TotalWatchTime:  e.TotalWatchTime,
		VideosWatched:   e.VideosWatched,
		ProductsClicked: e.ProductsClicked,
		PurchaseCount:   e.PurchaseCount,
		TotalSpent:      e.TotalSpent,
		ConversionRate:  e.ConversionRate,
		Sessions:        e.Sessions,
	}
}
