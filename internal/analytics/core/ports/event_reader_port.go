package ports

import (
	"context"

	"video-analytics-service/internal/analytics/core/domain"
)

type EventReaderPort interface {
	// ListEvents returns the full event log ordered by timestamp. The
	// returned slice is owned by the caller.
	ListEvents(ctx context.Context) ([]domain.Event, error)
}
