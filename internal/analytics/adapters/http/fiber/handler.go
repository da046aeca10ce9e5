package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"video-analytics-service/internal/analytics/core/domain"
	"video-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsUseCase interface {
	UserEngagement(ctx context.Context, userID string) (*domain.UserEngagement, error)
	HighValueUsers(ctx context.Context, limit int) ([]domain.UserEngagement, error)
	ProductPerformance(ctx context.Context, productID string) (*domain.ProductPerformance, error)
	VideoAnalytics(ctx context.Context, videoID string) (*domain.VideoAnalytics, error)
	SessionSummary(ctx context.Context, sessionID string) (*domain.SessionSummary, error)
	Funnel(ctx context.Context) (*domain.FunnelMetrics, error)
	ByHour(ctx context.Context) ([]domain.HourlyMetrics, error)
	AbandonedCarts(ctx context.Context) ([]domain.AbandonedCart, error)
	Cohorts(ctx context.Context) ([]domain.UserCohort, error)
	SlidingWindow(ctx context.Context, windowSeconds int) (*domain.WindowMetrics, error)
}

type AnalyticsHandler struct {
	uc AnalyticsUseCase
}

func NewAnalyticsHandler(uc AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetUserEngagement godoc
// @Summary Engagement metrics for one user
// @Tags Analytics
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} UserEngagementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/users/{userId}/engagement [get]
func (h *AnalyticsHandler) GetUserEngagement(c *fiber.Ctx) error {
	res, err := h.uc.UserEngagement(c.UserContext(), c.Params("userId"))
	if err != nil {
		return queryErrorResponse(c, err)
	}
	return c.Status(http.StatusOK).JSON(toUserEngagementResponse(*res))
}

// GetHighValueUsers godoc
// @Summary Top spenders ranked by total spent
// @Tags Analytics
// @Produce json
// @Param limit query int false "Max results (default 10)"
// @Success 200 {array} UserEngagementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/users/top [get]
func (h *AnalyticsHandler) GetHighValueUsers(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit", ""); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: "invalid 'limit' parameter",
			})
		}
		limit = parsed
	}

	users, err := h.uc.HighValueUsers(c.UserContext(), limit)
	if err != nil {
		return queryErrorResponse(c, err)
	}

	resp := make([]UserEngagementResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserEngagementResponse(u))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetProductPerformance godoc
// @Summary Interaction metrics for one product
// @Tags Analytics
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} ProductPerformanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/products/{productId} [get]
func (h *AnalyticsHandler) GetProductPerformance(c *fiber.Ctx) error {
	res, err := h.uc.ProductPerformance(c.UserContext(), c.Params("productId"))
	if err != nil {
		return queryErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(ProductPerformanceResponse{
		ProductID:        res.ProductID,
		ProductName:      res.ProductName,
		ProductCategory:  res.ProductCategory,
		Impressions:      res.Impressions,
		Clicks:           res.Clicks,
		Hovers:           res.Hovers,
		AddToCartCount:   res.AddToCartCount,
		Purchases:        res.Purchases,
		Revenue:          res.Revenue,
		ClickThroughRate: res.ClickThroughRate,
		ConversionRate:   res.ConversionRate,
	})
}

// GetVideoAnalytics godoc
// @Summary Playback and product metrics for one video
// @Tags Analytics
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} VideoAnalyticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/videos/{videoId} [get]
func (h *AnalyticsHandler) GetVideoAnalytics(c *fiber.Ctx) error {
	res, err := h.uc.VideoAnalytics(c.UserContext(), c.Params("videoId"))
	if err != nil {
		return queryErrorResponse(c, err)
	}

	top := make([]ProductClicksResponse, 0, len(res.TopProducts))
	for _, p := range res.TopProducts {
		top = append(top, ProductClicksResponse{ProductID: p.ProductID, Clicks: p.Clicks})
	}

	return c.Status(http.StatusOK).JSON(VideoAnalyticsResponse{
		VideoID:            res.VideoID,
		TotalViews:         res.TotalViews,
		CompletionRate:     res.CompletionRate,
		AvgWatchTime:       res.AvgWatchTime,
		TotalProductClicks: res.TotalProductClicks,
		TopProducts:        top,
		DropOffPoints:      res.DropOffPoints,
	})
}

// GetSessionSummary godoc
// @Summary Journey summary for one session
// @Tags Analytics
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} SessionSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/sessions/{sessionId} [get]
func (h *AnalyticsHandler) GetSessionSummary(c *fiber.Ctx) error {
	res, err := h.uc.SessionSummary(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return queryErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(SessionSummaryResponse{
		SessionID:          res.SessionID,
		UserID:             res.UserID,
		StartTime:          formatTime(res.StartTime),
		EndTime:            formatTime(res.EndTime),
		Duration:           res.Duration,
		VideosWatched:      res.VideosWatched,
		ProductsInteracted: res.ProductsInteracted,
		Purchased:          res.Purchased,
		TotalSpent:         res.TotalSpent,
	})
}

// GetFunnel godoc
// @Summary Conversion funnel over the whole log
// @Tags Analytics
// @Produce json
// @Success 200 {object} FunnelMetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/funnel [get]
func (h *AnalyticsHandler) GetFunnel(c *fiber.Ctx) error {
	res, err := h.uc.Funnel(c.UserContext())
	if err != nil {
		return queryErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(FunnelMetricsResponse{
		VideoViews:            res.VideoViews,
		ProductClicks:         res.ProductClicks,
		AddToCarts:            res.AddToCarts,
		Purchases:             res.Purchases,
		ViewToClickRate:       res.ViewToClickRate,
		ClickToCartRate:       res.ClickToCartRate,
		CartToPurchaseRate:    res.CartToPurchaseRate,
		OverallConversionRate: res.OverallConversionRate,
	})
}

// GetHourlyMetrics godoc
// @Summary Event counts bucketed by calendar hour
// @Tags Analytics
// @Produce json
// @Success 200 {array} HourlyMetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/hourly [get]
func (h *AnalyticsHandler) GetHourlyMetrics(c *fiber.Ctx) error {
	buckets, err := h.uc.ByHour(c.UserContext())
	if err != nil {
		return queryErrorResponse(c, err)
	}

	resp := make([]HourlyMetricsResponse, 0, len(buckets))
	for _, b := range buckets {
		resp = append(resp, HourlyMetricsResponse{
			Hour:       formatTime(b.Hour),
			EventCount: b.EventCount,
			Purchases:  b.Purchases,
			Revenue:    b.Revenue,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetAbandonedCarts godoc
// @Summary Sessions with unpurchased cart items
// @Tags Analytics
// @Produce json
// @Success 200 {array} AbandonedCartResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/carts/abandoned [get]
func (h *AnalyticsHandler) GetAbandonedCarts(c *fiber.Ctx) error {
	carts, err := h.uc.AbandonedCarts(c.UserContext())
	if err != nil {
		return queryErrorResponse(c, err)
	}

	resp := make([]AbandonedCartResponse, 0, len(carts))
	for _, cart := range carts {
		items := make([]CartItemResponse, 0, len(cart.CartItems))
		for _, it := range cart.CartItems {
			items = append(items, CartItemResponse{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Price:       it.Price,
			})
		}
		resp = append(resp, AbandonedCartResponse{
			SessionID:             cart.SessionID,
			UserID:                cart.UserID,
			CartItems:             items,
			CartValue:             cart.CartValue,
			LastActivity:          formatTime(cart.LastActivity),
			TimeSinceLastActivity: cart.TimeSinceLastActivity,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetCohorts godoc
// @Summary Users grouped by first purchase day
// @Tags Analytics
// @Produce json
// @Success 200 {array} UserCohortResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/cohorts [get]
func (h *AnalyticsHandler) GetCohorts(c *fiber.Ctx) error {
	cohorts, err := h.uc.Cohorts(c.UserContext())
	if err != nil {
		return queryErrorResponse(c, err)
	}

	resp := make([]UserCohortResponse, 0, len(cohorts))
	for _, co := range cohorts {
		resp = append(resp, UserCohortResponse{
			CohortDate:         co.CohortDate,
			UserCount:          co.UserCount,
			TotalRevenue:       co.TotalRevenue,
			AvgRevenuePerUser:  co.AvgRevenuePerUser,
			RepeatPurchaseRate: co.RepeatPurchaseRate,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetSlidingWindow godoc
// @Summary Metrics over the trailing time window
// @Tags Analytics
// @Produce json
// @Param window_seconds query int false "Window size in seconds (default 300)"
// @Success 200 {object} WindowMetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/realtime [get]
func (h *AnalyticsHandler) GetSlidingWindow(c *fiber.Ctx) error {
	window := 0
	if raw := c.Query("window_seconds", ""); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: "invalid 'window_seconds' parameter",
			})
		}
		window = parsed
	}

	res, err := h.uc.SlidingWindow(c.UserContext(), window)
	if err != nil {
		return queryErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(WindowMetricsResponse{
		WindowStart:     formatTime(res.WindowStart),
		WindowEnd:       formatTime(res.WindowEnd),
		EventCount:      res.EventCount,
		UniqueUsers:     res.UniqueUsers,
		PurchaseCount:   res.PurchaseCount,
		Revenue:         res.Revenue,
		EventsPerSecond: res.EventsPerSecond,
	})
}

func queryErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrMissingUserID),
		errors.Is(err, usecase.ErrMissingProductID),
		errors.Is(err, usecase.ErrMissingVideoID),
		errors.Is(err, usecase.ErrMissingSessionID),
		errors.Is(err, usecase.ErrInvalidLimit),
		errors.Is(err, usecase.ErrInvalidWindowSize):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
