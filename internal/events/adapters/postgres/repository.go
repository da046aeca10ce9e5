package postgres

import (
	"context"

	"video-analytics-service/internal/events/core/domain"
	"video-analytics-service/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL template
const insertEventSQL = `
INSERT INTO video_events (
    id,
    event_type,
    event_time,
    user_id,
    session_id,
    video_id,
    product_id,
    video_timestamp,
    video_duration,
    product_price,
    product_name,
    product_category,
    quantity,
    total_amount,
    device_type,
    referrer,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8,
    $9, $10, $11, $12, $13, $14, $15, $16, $17
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {

	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID,
		string(e.Type),
		e.Timestamp,
		e.UserID,
		e.SessionID,
		e.VideoID,
		nullableString(e.ProductID),
		nullableFloat(e.Metadata.VideoTimestamp),
		nullableFloat(e.Metadata.VideoDuration),
		nullableFloat(e.Metadata.ProductPrice),
		nullableString(e.Metadata.ProductName),
		nullableString(e.Metadata.ProductCategory),
		nullableInt(e.Metadata.Quantity),
		nullableFloat(e.Metadata.TotalAmount),
		e.Metadata.DeviceType,
		nullableString(e.Metadata.Referrer),
		e.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableFloat(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}

func nullableInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
