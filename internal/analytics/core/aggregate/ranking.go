package aggregate

import (
	"sort"

	"video-analytics-service/internal/analytics/core/domain"
)

// HighValueUsers ranks users by total spend, descending, dropping users
// who never spent anything, truncated to limit. Ties keep first-seen
// user order.
func HighValueUsers(events []domain.Event, limit int) []domain.UserEngagement {
	userIDs := make([]string, 0, len(events))
	for _, e := range events {
		userIDs = append(userIDs, e.UserID)
	}

	ranked := make([]domain.UserEngagement, 0)
	for _, id := range distinct(userIDs) {
		eng := UserEngagement(events, id)
		if eng.TotalSpent > 0 {
			ranked = append(ranked, eng)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
