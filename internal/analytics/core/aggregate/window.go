package aggregate

import (
	"time"

	"video-analytics-service/internal/analytics/core/domain"
)

// SlidingWindow computes metrics over events within [now - window, now],
// boundaries inclusive. The caller supplies now; against a static
// historical log and the true wall clock the window is typically empty,
// which is the documented batch-over-static-data limitation rather than
// a defect.
func SlidingWindow(events []domain.Event, windowSeconds int, now time.Time) domain.WindowMetrics {
	windowStart := now.Add(-time.Duration(windowSeconds) * time.Second)

	eventCount := 0
	purchaseCount := 0
	revenue := 0.0
	users := make(map[string]struct{})

	for _, e := range events {
		if e.Timestamp.Before(windowStart) || e.Timestamp.After(now) {
			continue
		}
		eventCount++
		users[e.UserID] = struct{}{}
		if e.Type == domain.EventPurchase {
			purchaseCount++
			revenue += e.Metadata.TotalAmount
		}
	}

	return domain.WindowMetrics{
		WindowStart:     windowStart,
		WindowEnd:       now,
		EventCount:      eventCount,
		UniqueUsers:     len(users),
		PurchaseCount:   purchaseCount,
		Revenue:         revenue,
		EventsPerSecond: ratio(float64(eventCount), float64(windowSeconds)),
	}
}
