package aggregate

import (
	"sort"

	"video-analytics-service/internal/analytics/core/domain"
)

const topProductsLimit = 5

// VideoAnalytics computes playback and product metrics for one video.
//
// AvgWatchTime is the mean video position of complete/pause events, an
// independent proxy that is deliberately NOT the play->end pairing used
// by UserEngagement; the two definitions differ on purpose and must not
// be unified.
func VideoAnalytics(events []domain.Event, videoID string) domain.VideoAnalytics {
	totalViews := 0
	completions := 0
	endCount := 0
	endPositionSum := 0.0
	totalProductClicks := 0

	clickOrder := make([]string, 0)
	clickCounts := make(map[string]int)
	dropOffPoints := make([]float64, 0)

	for _, e := range events {
		if e.VideoID != videoID {
			continue
		}

		switch e.Type {
		case domain.EventVideoPlay:
			totalViews++
		case domain.EventVideoComplete:
			completions++
			endCount++
			endPositionSum += e.Metadata.VideoTimestamp
		case domain.EventVideoPause:
			endCount++
			endPositionSum += e.Metadata.VideoTimestamp
		case domain.EventProductClick:
			totalProductClicks++
			if e.ProductID != "" {
				if _, ok := clickCounts[e.ProductID]; !ok {
					clickOrder = append(clickOrder, e.ProductID)
				}
				clickCounts[e.ProductID]++
			}
		}

		// Drop-off points: pause/seek positions, zeros excluded, in
		// original event order.
		if e.Type == domain.EventVideoPause || e.Type == domain.EventVideoSeek {
			if ts := e.Metadata.VideoTimestamp; ts > 0 {
				dropOffPoints = append(dropOffPoints, ts)
			}
		}
	}

	topProducts := make([]domain.ProductClicks, 0, len(clickOrder))
	for _, id := range clickOrder {
		topProducts = append(topProducts, domain.ProductClicks{ProductID: id, Clicks: clickCounts[id]})
	}
	sort.SliceStable(topProducts, func(i, j int) bool {
		return topProducts[i].Clicks > topProducts[j].Clicks
	})
	if len(topProducts) > topProductsLimit {
		topProducts = topProducts[:topProductsLimit]
	}

	return domain.VideoAnalytics{
		VideoID:            videoID,
		TotalViews:         totalViews,
		CompletionRate:     ratio(float64(completions), float64(totalViews)),
		AvgWatchTime:       ratio(endPositionSum, float64(endCount)),
		TotalProductClicks: totalProductClicks,
		TopProducts:        topProducts,
		DropOffPoints:      dropOffPoints,
	}
}
