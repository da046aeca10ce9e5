package postgres

import (
	"context"
	"database/sql"

	"video-analytics-service/internal/analytics/core/domain"
	"video-analytics-service/internal/analytics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type EventReader struct {
	db DB
}

func NewEventReader(db DB) *EventReader {
	return &EventReader{db: db}
}

var _ ports.EventReaderPort = (*EventReader)(nil)

const listEventsSQL = `
SELECT
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
    referrer
FROM video_events
ORDER BY event_time, id`

func (r *EventReader) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]domain.Event, 0)

	for rows.Next() {
		var (
			e               domain.Event
			productID       sql.NullString
			videoTimestamp  sql.NullFloat64
			videoDuration   sql.NullFloat64
			productPrice    sql.NullFloat64
			productName     sql.NullString
			productCategory sql.NullString
			quantity        sql.NullInt64
			totalAmount     sql.NullFloat64
			referrer        sql.NullString
		)

		if err := rows.Scan(
			&e.ID,
			&e.Type,
			&e.Timestamp,
			&e.UserID,
			&e.SessionID,
			&e.VideoID,
			&productID,
			&videoTimestamp,
			&videoDuration,
			&productPrice,
			&productName,
			&productCategory,
			&quantity,
			&totalAmount,
			&e.Metadata.DeviceType,
			&referrer,
		); err != nil {
			return nil, err
		}

		// NULL columns collapse to the same zero defaults the
		// aggregations already treat as absent.
		e.ProductID = productID.String
		e.Metadata.VideoTimestamp = videoTimestamp.Float64
		e.Metadata.VideoDuration = videoDuration.Float64
		e.Metadata.ProductPrice = productPrice.Float64
		e.Metadata.ProductName = productName.String
		e.Metadata.ProductCategory = productCategory.String
		e.Metadata.Quantity = int(quantity.Int64)
		e.Metadata.TotalAmount = totalAmount.Float64
		e.Metadata.Referrer = referrer.String

		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
