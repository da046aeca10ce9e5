package aggregate

import (
	"video-analytics-service/internal/analytics/core/domain"
)

// Funnel counts the view -> click -> cart -> purchase stages over the
// entire log and derives the stage-to-stage rates, each zero-guarded.
func Funnel(events []domain.Event) domain.FunnelMetrics {
	views := 0
	clicks := 0
	carts := 0
	purchases := 0

	for _, e := range events {
		switch e.Type {
		case domain.EventVideoPlay:
			views++
		case domain.EventProductClick:
			clicks++
		case domain.EventAddToCart:
			carts++
		case domain.EventPurchase:
			purchases++
		}
	}

	return domain.FunnelMetrics{
		VideoViews:            views,
		ProductClicks:         clicks,
		AddToCarts:            carts,
		Purchases:             purchases,
		ViewToClickRate:       ratio(float64(clicks), float64(views)),
		ClickToCartRate:       ratio(float64(carts), float64(clicks)),
		CartToPurchaseRate:    ratio(float64(purchases), float64(carts)),
		OverallConversionRate: ratio(float64(purchases), float64(views)),
	}
}
