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

// Metadata holds the optional event attributes. Absent fields are zero
// values; every aggregation applies zero-default fallbacks, so the
// distinction between "missing" and "zero" is deliberately not modelled.
type Metadata struct {
	VideoTimestamp  float64
	VideoDuration   float64
	ProductPrice    float64
	ProductName     string
	ProductCategory string
	Quantity        int
	TotalAmount     float64
	DeviceType      string
	Referrer        string
}

// Event is the read-side view of a stored interaction. The aggregation
// functions treat the event log as immutable input and never modify it.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	UserID    string
	SessionID string
	VideoID   string
	ProductID string
	Metadata  Metadata
}
