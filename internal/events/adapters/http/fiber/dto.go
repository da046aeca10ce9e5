package fiber

import "video-analytics-service/internal/events/core/domain"

// EventMetadataDTO mirrors the optional metadata bag on the wire.
// @Description Optional event attributes
type EventMetadataDTO struct {
	VideoTimestamp  float64 `json:"videoTimestamp,omitempty"`
	VideoDuration   float64 `json:"videoDuration,omitempty"`
	ProductPrice    float64 `json:"productPrice,omitempty"`
	ProductName     string  `json:"productName,omitempty"`
	ProductCategory string  `json:"productCategory,omitempty"`
	Quantity        int     `json:"quantity,omitempty"`
	TotalAmount     float64 `json:"totalAmount,omitempty"`
	DeviceType      string  `json:"deviceType" example:"mobile"`
	Referrer        string  `json:"referrer,omitempty"`
}

// CreateEventRequest represents event creation payload
// @Description Event creation DTO
type CreateEventRequest struct {
	ID        string           `json:"id,omitempty"`
	Type      string           `json:"type" example:"video_play"`
	Timestamp string           `json:"timestamp" example:"2026-01-15T09:00:00.000Z"`
	UserID    string           `json:"userId"`
	SessionID string           `json:"sessionId"`
	VideoID   string           `json:"videoId"`
	ProductID string           `json:"productId,omitempty"`
	Metadata  EventMetadataDTO `json:"metadata"`
}

type CreateEventResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}

func toMetadata(m EventMetadataDTO) domain.Metadata {
	return domain.Metadata{
		VideoTimestamp:  m.VideoTimestamp,
		VideoDuration:   m.VideoDuration,
		ProductPrice:    m.ProductPrice,
		ProductName:     m.ProductName,
		ProductCategory: m.ProductCategory,
		Quantity:        m.Quantity,
		TotalAmount:     m.TotalAmount,
		DeviceType:      m.DeviceType,
		Referrer:        m.Referrer,
	}
}
