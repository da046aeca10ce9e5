package usecase

import (
	"context"
	"errors"
	"time"

	"video-analytics-service/internal/analytics/core/aggregate"
	"video-analytics-service/internal/analytics/core/domain"
	"video-analytics-service/internal/analytics/core/ports"
)

var (
	ErrMissingUserID     = errors.New("user id is required")
	ErrMissingProductID  = errors.New("product id is required")
	ErrMissingVideoID    = errors.New("video id is required")
	ErrMissingSessionID  = errors.New("session id is required")
	ErrInvalidLimit      = errors.New("limit must be positive")
	ErrInvalidWindowSize = errors.New("window size must be positive")
)

const (
	DefaultHighValueLimit = 10
	DefaultWindowSeconds  = 300
)

// AnalyticsUseCase answers every analytics query by loading the event log
// through the reader port and delegating to the pure aggregation core.
// The clock is injectable so the wall-clock-dependent queries stay
// testable against static fixtures.
type AnalyticsUseCase struct {
	reader ports.EventReaderPort
	nowFn  func() time.Time
}

type Option func(*AnalyticsUseCase)

// WithNowFunc overrides the clock used by AbandonedCarts and
// SlidingWindow.
func WithNowFunc(fn func() time.Time) Option {
	return func(uc *AnalyticsUseCase) {
		uc.nowFn = fn
	}
}

func NewAnalyticsUseCase(reader ports.EventReaderPort, opts ...Option) *AnalyticsUseCase {
	uc := &AnalyticsUseCase{
		reader: reader,
		nowFn:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *AnalyticsUseCase) UserEngagement(ctx context.Context, userID string) (*domain.UserEngagement, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	events, err := uc.reader.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	res := aggregate.UserEngagement(events, userID)
	return &res, nil
}

// HighValueUsers returns the top spenders. A zero limit falls back to
// DefaultHighValueLimit.
func (uc *AnalyticsUseCase) HighValueUsers(ctx context.Context, limit int) ([]domain.UserEngagement, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultHighValueLimit
	}

	events, err := uc.reader.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.HighValueUsers(events, limit), nil
}

func (uc *AnalyticsUseCase) ProductPerformance(ctx context.Context, productID string) (*domain.ProductPerformance, error) {
	if productID == "" {
		return nil, ErrMissingProductID
	}

	events, err := uc.reader.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	res := aggregate.ProductPerformance(events, productID)
	return &res, nil
}

func (uc *AnalyticsUseCase) VideoAnalytics(ctx context.Context, videoID string) (*domain.VideoAnalytics, error) {
	if videoID == "" {
		return nil, ErrMissingVideoID
	}

	events, err := uc.reader.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	res := aggregate.VideoAnalytics(events, videoID)
	return &res, nil
}

func (uc *AnalyticsUseCase) SessionSummary(ctx context.Context, sessionID string) (*domain.SessionSummary, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}

	events, err := uc.reader.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	res := aggregate.SessionSummary(events, sessionID)
	return &res, nil
}

func (uc *AnalyticsUseCase) Funnel(ctx context.Context) (*domain.FunnelMetrics, error) {
	events, err := uc.reader.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	res := aggregate.Funnel(events)
	return &res, nil
}

func (uc *AnalyticsUseCase) ByHour(ctx context.Context) ([]domain.HourlyMetrics, error) {
	events, err := uc.reader.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.ByHour(events), nil
}

func (uc *AnalyticsUseCase) AbandonedCarts(ctx context.Context) ([]domain.AbandonedCart, error) {
	events, err := uc.reader.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.AbandonedCarts(events, uc.nowFn()), nil
}

func (uc *AnalyticsUseCase) Cohorts(ctx context.Context) ([]domain.UserCohort, error) {
	events, err := uc.reader.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.Cohorts(events), nil
}

// SlidingWindow computes real-time metrics over the trailing window. A
// zero windowSeconds falls back to DefaultWindowSeconds.
func (uc *AnalyticsUseCase) SlidingWindow(ctx context.Context, windowSeconds int) (*domain.WindowMetrics, error) {
	if windowSeconds < 0 {
		return nil, ErrInvalidWindowSize
	}
	if windowSeconds == 0 {
		windowSeconds = DefaultWindowSeconds
	}

	events, err := uc.reader.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	res := aggregate.SlidingWindow(events, windowSeconds, uc.nowFn())
	return &res, nil
}
