package aggregate

import (
	"video-analytics-service/internal/analytics/core/domain"
)

// UserEngagement computes engagement metrics for a single user.
//
// Watch time pairs each video_play with the earliest later
// video_complete/video_pause in the same session and video. Pairing is
// per play: two plays in one session may both match the same end event,
// which is the established behavior for seek-then-replay sequences.
// An end event with a zero video position contributes nothing, as does
// an unmatched play.
func UserEngagement(events []domain.Event, userID string) domain.UserEngagement {
	userEvents := make([]domain.Event, 0)
	for _, e := range events {
		if e.UserID == userID {
			userEvents = append(userEvents, e)
		}
	}

	videoIDs := make([]string, 0)
	sessions := make([]string, 0, len(userEvents))
	productsClicked := 0
	purchaseCount := 0
	totalSpent := 0.0

	plays := make([]domain.Event, 0)
	ends := make([]domain.Event, 0)

	for _, e := range userEvents {
		sessions = append(sessions, e.SessionID)

		switch e.Type {
		case domain.EventVideoPlay:
			videoIDs = append(videoIDs, e.VideoID)
			plays = append(plays, e)
		case domain.EventVideoComplete, domain.EventVideoPause:
			ends = append(ends, e)
		case domain.EventProductClick:
			productsClicked++
		case domain.EventPurchase:
			purchaseCount++
			totalSpent += e.Metadata.TotalAmount
		}
	}

	totalWatchTime := 0.0
	for _, play := range plays {
		end, ok := matchEnd(play, ends)
		if !ok || end.Metadata.VideoTimestamp == 0 {
			continue
		}
		totalWatchTime += end.Metadata.VideoTimestamp - play.Metadata.VideoTimestamp
	}

	return domain.UserEngagement{
		UserID:          userID,
		TotalWatchTime:  totalWatchTime,
		VideosWatched:   len(distinct(videoIDs)),
		ProductsClicked: productsClicked,
		PurchaseCount:   purchaseCount,
		TotalSpent:      totalSpent,
		ConversionRate:  ratio(float64(purchaseCount), float64(productsClicked)),
		Sessions:        distinct(sessions),
	}
}

// matchEnd finds the earliest end event in the same session and video
// with a strictly later timestamp. Ties keep the first-encountered event.
func matchEnd(play domain.Event, ends []domain.Event) (domain.Event, bool) {
	var best domain.Event
	found := false
	for _, e := range ends {
		if e.SessionID != play.SessionID || e.VideoID != play.VideoID {
			continue
		}
		if !e.Timestamp.After(play.Timestamp) {
			continue
		}
		if !found || e.Timestamp.Before(best.Timestamp) {
			best = e
			found = true
		}
	}
	return best, found
}
