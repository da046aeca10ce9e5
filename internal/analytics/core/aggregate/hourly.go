package aggregate

import (
	"sort"
	"time"

	"video-analytics-service/internal/analytics/core/domain"
)

// ByHour buckets events by their calendar hour and reports event count,
// purchase count and revenue per bucket, ascending by hour. Truncation
// keeps the event's own zone offset.
func ByHour(events []domain.Event) []domain.HourlyMetrics {
	order := make([]time.Time, 0)
	buckets := make(map[time.Time]*domain.HourlyMetrics)

	for _, e := range events {
		hour := truncateToHour(e.Timestamp)

		b, ok := buckets[hour]
		if !ok {
			b = &domain.HourlyMetrics{Hour: hour}
			buckets[hour] = b
			order = append(order, hour)
		}

		b.EventCount++
		if e.Type == domain.EventPurchase {
			b.Purchases++
			b.Revenue += e.Metadata.TotalAmount
		}
	}

	out := make([]domain.HourlyMetrics, 0, len(order))
	for _, hour := range order {
		out = append(out, *buckets[hour])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Hour.Before(out[j].Hour)
	})
	return out
}

func truncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
