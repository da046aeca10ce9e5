package aggregate

import (
	"video-analytics-service/internal/analytics/core/domain"
)

// ProductPerformance computes interaction metrics for a single product
// across the whole log. Impressions are hovers plus clicks; both surfaces
// count as an impression for this catalog.
func ProductPerformance(events []domain.Event, productID string) domain.ProductPerformance {
	name := "Unknown"
	category := "Unknown"
	named := false

	hovers := 0
	clicks := 0
	addToCart := 0
	purchases := 0
	revenue := 0.0

	for _, e := range events {
		if e.ProductID != productID {
			continue
		}

		// Display details come from the first event carrying a name.
		if !named && e.Metadata.ProductName != "" {
			name = e.Metadata.ProductName
			if e.Metadata.ProductCategory != "" {
				category = e.Metadata.ProductCategory
			}
			named = true
		}

		switch e.Type {
		case domain.EventProductHover:
			hovers++
		case domain.EventProductClick:
			clicks++
		case domain.EventAddToCart:
			addToCart++
		case domain.EventPurchase:
			purchases++
			revenue += e.Metadata.TotalAmount
		}
	}

	impressions := hovers + clicks

	return domain.ProductPerformance{
		ProductID:        productID,
		ProductName:      name,
		ProductCategory:  category,
		Impressions:      impressions,
		Clicks:           clicks,
		Hovers:           hovers,
		AddToCartCount:   addToCart,
		Purchases:        purchases,
		Revenue:          revenue,
		ClickThroughRate: ratio(float64(clicks), float64(impressions)),
		ConversionRate:   ratio(float64(purchases), float64(clicks)),
	}
}
