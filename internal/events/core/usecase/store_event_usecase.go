package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"video-analytics-service/internal/events/core/domain"
	"video-analytics-service/internal/events/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidEvent     = errors.New("invalid event")
	ErrUnknownEventType = errors.New("unknown event type")
	ErrUnknownDevice    = errors.New("unknown device type")
	ErrMissingProductID = errors.New("product id is required for product events")
	ErrInvalidTimestamp = errors.New("timestamp is not a valid RFC3339 instant")
	ErrFutureTime       = errors.New("timestamp cannot be in the future")
)

type StoreEventUseCase struct {
	repo ports.EventRepositoryPort
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort) *StoreEventUseCase {
	return &StoreEventUseCase{repo: repo}
}

type StoreEventInput struct {
	ID        string // optional; assigned server-side when empty
	Type      string
	Timestamp string // RFC3339
	UserID    string
	SessionID string
	VideoID   string
	ProductID string
	Metadata  domain.Metadata
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (bool, error) {

	eventTime, err := uc.validateInput(in)
	if err != nil {
		return false, err
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	e := &domain.Event{
		ID:        id,
		Type:      domain.EventType(in.Type),
		Timestamp: eventTime,
		UserID:    in.UserID,
		SessionID: in.SessionID,
		VideoID:   in.VideoID,
		ProductID: in.ProductID,
		Metadata:  in.Metadata,
		DedupeKey: buildDedupeKey(in, eventTime),
	}

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return false, err
	}

	return created, nil
}

func buildDedupeKey(in StoreEventInput, t time.Time) string {
	// type + user_id + session_id + video_id + product_id + unix_millis
	return fmt.Sprintf("%s|%s|%s|%s|%s|%d",
		in.Type,
		in.UserID,
		in.SessionID,
		in.VideoID,
		in.ProductID,
		t.UnixMilli(),
	)
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created    int
	Duplicates int
}

func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	for _, ev := range in.Events {
		if _, err := uc.validateInput(ev); err != nil {
			return res, err
		}
	}

	for _, ev := range in.Events {
		ok, err := uc.Execute(ctx, ev)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) (time.Time, error) {

	if in.UserID == "" || in.SessionID == "" || in.VideoID == "" {
		return time.Time{}, ErrInvalidEvent
	}

	t := domain.EventType(in.Type)
	if !t.Valid() {
		return time.Time{}, ErrUnknownEventType
	}

	switch in.Metadata.DeviceType {
	case "mobile", "desktop", "tablet":
	default:
		return time.Time{}, ErrUnknownDevice
	}

	switch t {
	case domain.EventProductHover, domain.EventProductClick, domain.EventAddToCart, domain.EventPurchase:
		if in.ProductID == "" {
			return time.Time{}, ErrMissingProductID
		}
	}

	eventTime, err := time.Parse(time.RFC3339, in.Timestamp)
	if err != nil {
		return time.Time{}, ErrInvalidTimestamp
	}

	if eventTime.After(time.Now()) {
		return time.Time{}, ErrFutureTime
	}

	return eventTime, nil
}
