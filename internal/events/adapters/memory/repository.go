// Package memory holds the event log as a bounded in-memory collection,
// the canonical data source for the batch aggregation core. It serves
// both sides: the ingestion store port and the analytics reader port.
package memory

import (
	"context"
	"sort"
	"sync"

	analyticsdomain "video-analytics-service/internal/analytics/core/domain"
	analyticsports "video-analytics-service/internal/analytics/core/ports"
	"video-analytics-service/internal/events/core/domain"
	"video-analytics-service/internal/events/core/ports"
)

type EventLog struct {
	mu     sync.RWMutex
	events []domain.Event
	keys   map[string]struct{}
}

func NewEventLog() *EventLog {
	return &EventLog{
		keys: make(map[string]struct{}),
	}
}

var (
	_ ports.EventRepositoryPort      = (*EventLog)(nil)
	_ analyticsports.EventReaderPort = (*EventLog)(nil)
)

func (l *EventLog) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.keys[e.DedupeKey]; ok {
		return false, nil
	}

	l.keys[e.DedupeKey] = struct{}{}
	l.events = append(l.events, *e)
	return true, nil
}

// ListEvents returns a time-ordered copy of the log mapped to the
// analytics view. Copying keeps the aggregations free of shared state.
func (l *EventLog) ListEvents(ctx context.Context) ([]analyticsdomain.Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]analyticsdomain.Event, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, analyticsdomain.Event{
			ID:        e.ID,
			Type:      analyticsdomain.EventType(e.Type),
			Timestamp: e.Timestamp,
			UserID:    e.UserID,
			SessionID: e.SessionID,
			VideoID:   e.VideoID,
			ProductID: e.ProductID,
			Metadata: analyticsdomain.Metadata{
				VideoTimestamp:  e.Metadata.VideoTimestamp,
				VideoDuration:   e.Metadata.VideoDuration,
				ProductPrice:    e.Metadata.ProductPrice,
				ProductName:     e.Metadata.ProductName,
				ProductCategory: e.Metadata.ProductCategory,
				Quantity:        e.Metadata.Quantity,
				TotalAmount:     e.Metadata.TotalAmount,
				DeviceType:      e.Metadata.DeviceType,
				Referrer:        e.Metadata.Referrer,
			},
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// Len reports how many events are stored.
func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
