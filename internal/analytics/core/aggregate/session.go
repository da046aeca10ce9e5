package aggregate

import (
	"sort"

	"video-analytics-service/internal/analytics/core/domain"
)

// SessionSummary builds a summary of one visit. An unknown session yields
// the zero-valued summary with only SessionID set.
func SessionSummary(events []domain.Event, sessionID string) domain.SessionSummary {
	sessionEvents := make([]domain.Event, 0)
	for _, e := range events {
		if e.SessionID == sessionID {
			sessionEvents = append(sessionEvents, e)
		}
	}

	if len(sessionEvents) == 0 {
		return domain.SessionSummary{
			SessionID:          sessionID,
			VideosWatched:      []string{},
			ProductsInteracted: []string{},
		}
	}

	sort.SliceStable(sessionEvents, func(i, j int) bool {
		return sessionEvents[i].Timestamp.Before(sessionEvents[j].Timestamp)
	})

	first := sessionEvents[0]
	last := sessionEvents[len(sessionEvents)-1]

	videoIDs := make([]string, 0, len(sessionEvents))
	productIDs := make([]string, 0)
	purchased := false
	totalSpent := 0.0

	for _, e := range sessionEvents {
		videoIDs = append(videoIDs, e.VideoID)
		if e.ProductID != "" {
			productIDs = append(productIDs, e.ProductID)
		}
		if e.Type == domain.EventPurchase {
			purchased = true
			totalSpent += e.Metadata.TotalAmount
		}
	}

	return domain.SessionSummary{
		SessionID:          sessionID,
		UserID:             first.UserID,
		StartTime:          first.Timestamp,
		EndTime:            last.Timestamp,
		Duration:           last.Timestamp.Sub(first.Timestamp).Seconds(),
		VideosWatched:      distinct(videoIDs),
		ProductsInteracted: distinct(productIDs),
		Purchased:          purchased,
		TotalSpent:         totalSpent,
	}
}
