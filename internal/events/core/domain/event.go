package domain

import "time"

type EventType string

const (
	EventVideoPlay     EventType = "video_play"
	EventVideoPause    EventType = "video_pause"
	EventVideoComplete EventType = "video_complete"
	EventVideoSeek     EventType = "video_seek"
	EventProductHover  EventType = "product_hover"
	EventProductClick  EventType = "product_click"
	EventAddToCart     EventType = "add_to_cart"
	EventPurchase      EventType = "purchase"
)

// Valid reports whether t is one of the known interaction types.
func (t EventType) Valid() bool {
	switch t {
	case EventVideoPlay, EventVideoPause, EventVideoComplete, EventVideoSeek,
		EventProductHover, EventProductClick, EventAddToCart, EventPurchase:
		return true
	}
	return false
}

// Metadata carries the optional, type-dependent attributes of an event.
// Zero values stand in for absent fields; the analytics side applies the
// same zero-default fallbacks, so no pointers are needed.
type Metadata struct {
	VideoTimestamp  float64 // seconds into the video
	VideoDuration   float64
	ProductPrice    float64
	ProductName     string
	ProductCategory string
	Quantity        int
	TotalAmount     float64 // realized amount for this purchase line item
	DeviceType      string  // mobile | desktop | tablet
	Referrer        string
}

// Event is a single immutable user interaction. Events are append-only and
// never mutated after ingestion.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	UserID    string
	SessionID string
	VideoID   string
	ProductID string // empty for pure video events
	Metadata  Metadata
	DedupeKey string
}
