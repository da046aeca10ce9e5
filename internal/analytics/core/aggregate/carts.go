package aggregate

import (
	"sort"
	"time"

	"video-analytics-service/internal/analytics/core/domain"
)

// AbandonedCarts finds sessions where items were added to the cart but
// never purchased within that session. A session whose every cart item
// was purchased is excluded. Results are ordered by cart value, highest
// first. TimeSinceLastActivity is measured against now, which the caller
// supplies so the computation stays reproducible.
func AbandonedCarts(events []domain.Event, now time.Time) []domain.AbandonedCart {
	sessionIDs, sessions := groupKeys(events, func(e domain.Event) string { return e.SessionID })

	carts := make([]domain.AbandonedCart, 0)

	for _, sessionID := range sessionIDs {
		sessionEvents := sessions[sessionID]

		purchased := make(map[string]struct{})
		cartAdds := make([]domain.Event, 0)

		for _, e := range sessionEvents {
			switch e.Type {
			case domain.EventAddToCart:
				cartAdds = append(cartAdds, e)
			case domain.EventPurchase:
				purchased[e.ProductID] = struct{}{}
			}
		}

		if len(cartAdds) == 0 {
			continue
		}

		items := make([]domain.CartItem, 0, len(cartAdds))
		cartValue := 0.0
		for _, e := range cartAdds {
			if e.ProductID == "" {
				continue
			}
			if _, ok := purchased[e.ProductID]; ok {
				continue
			}
			name := e.Metadata.ProductName
			if name == "" {
				name = "Unknown"
			}
			items = append(items, domain.CartItem{
				ProductID:   e.ProductID,
				ProductName: name,
				Price:       e.Metadata.ProductPrice,
			})
			cartValue += e.Metadata.ProductPrice
		}

		if len(items) == 0 {
			continue
		}

		lastActivity := sessionEvents[0].Timestamp
		for _, e := range sessionEvents[1:] {
			if e.Timestamp.After(lastActivity) {
				lastActivity = e.Timestamp
			}
		}

		carts = append(carts, domain.AbandonedCart{
			SessionID:             sessionID,
			UserID:                sessionEvents[0].UserID,
			CartItems:             items,
			CartValue:             cartValue,
			LastActivity:          lastActivity,
			TimeSinceLastActivity: now.Sub(lastActivity).Seconds(),
		})
	}

	sort.SliceStable(carts, func(i, j int) bool {
		return carts[i].CartValue > carts[j].CartValue
	})
	return carts
}
