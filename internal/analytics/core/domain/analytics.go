package domain

import "time"

// UserEngagement summarizes one user's activity across the whole log.
type UserEngagement struct {
	UserID          string
	TotalWatchTime  float64 // seconds, play->end pairing
	VideosWatched   int     // distinct videos started
	ProductsClicked int
	PurchaseCount   int
	TotalSpent      float64
	ConversionRate  float64 // purchases / clicks, 0 when no clicks
	Sessions        []string
}

// ProductPerformance summarizes one product's interaction funnel.
type ProductPerformance struct {
	ProductID        string
	ProductName      string
	ProductCategory  string
	Impressions      int // hovers + clicks
	Clicks           int
	Hovers           int
	AddToCartCount   int
	Purchases        int
	Revenue          float64
	ClickThroughRate float64
	ConversionRate   float64
}

type ProductClicks struct {
	ProductID string
	Clicks    int
}

// VideoAnalytics summarizes playback and product engagement for one video.
type VideoAnalytics struct {
	VideoID            string
	TotalViews         int
	CompletionRate     float64
	AvgWatchTime       float64 // mean end-event position, not pairing-based
	TotalProductClicks int
	TopProducts        []ProductClicks
	DropOffPoints      []float64
}

// SessionSummary is one visit's journey. Unknown sessions yield the zero
// value with SessionID set.
type SessionSummary struct {
	SessionID          string
	UserID             string
	StartTime          time.Time
	EndTime            time.Time
	Duration           float64 // seconds
	VideosWatched      []string
	ProductsInteracted []string
	Purchased          bool
	TotalSpent         float64
}

// FunnelMetrics counts the view -> click -> cart -> purchase stages over the
// entire log.
type FunnelMetrics struct {
	VideoViews            int
	ProductClicks         int
	AddToCarts            int
	Purchases             int
	ViewToClickRate       float64
	ClickToCartRate       float64
	CartToPurchaseRate    float64
	OverallConversionRate float64
}

// HourlyMetrics is one calendar-hour bucket.
type HourlyMetrics struct {
	Hour       time.Time
	EventCount int
	Purchases  int
	Revenue    float64
}

type CartItem struct {
	ProductID   string
	ProductName string
	Price       float64
}

// AbandonedCart is a session that added items to the cart without
// purchasing all of them.
type AbandonedCart struct {
	SessionID             string
	UserID                string
	CartItems             []CartItem
	CartValue             float64
	LastActivity          time.Time
	TimeSinceLastActivity float64 // seconds, relative to the caller's clock
}

// UserCohort groups users by their first purchase day.
type UserCohort struct {
	CohortDate         string // YYYY-MM-DD
	UserCount          int
	TotalRevenue       float64
	AvgRevenuePerUser  float64
	RepeatPurchaseRate float64
}

// WindowMetrics is a snapshot over [now - window, now].
type WindowMetrics struct {
	WindowStart     time.Time
	WindowEnd       time.Time
	EventCount      int
	UniqueUsers     int
	PurchaseCount   int
	Revenue         float64
	EventsPerSecond float64
}
