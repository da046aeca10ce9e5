package aggregate_test

import (
	"fmt"
	"reflect"
	"testing"

	"video-analytics-service/internal/analytics/core/aggregate"
	"video-analytics-service/internal/analytics/core/domain"
)

// ------------------------------------------------------------
// REFERENCE VIDEO
// ------------------------------------------------------------

func TestVideoAnalytics_FashionVideo(t *testing.T) {
	va := aggregate.VideoAnalytics(referenceLog(), "vid_fashion_summer")

	if va.TotalViews != 2 {
		t.Fatalf("expected 2 views, got %d", va.TotalViews)
	}
	if !almostEqual(va.CompletionRate, 1.0) {
		t.Fatalf("expected completion rate 1.0, got %v", va.CompletionRate)
	}
	// Two completes at position 180.
	if !almostEqual(va.AvgWatchTime, 180) {
		t.Fatalf("expected avg watch time 180, got %v", va.AvgWatchTime)
	}
	if va.TotalProductClicks != 2 {
		t.Fatalf("expected 2 product clicks, got %d", va.TotalProductClicks)
	}

	found := false
	for _, p := range va.TopProducts {
		if p.ProductID == "prod_007" {
			found = true
			if p.Clicks != 1 {
				t.Fatalf("expected 1 click for prod_007, got %d", p.Clicks)
			}
		}
	}
	if !found {
		t.Fatalf("expected prod_007 in top products: %v", va.TopProducts)
	}

	if len(va.DropOffPoints) != 0 {
		t.Fatalf("expected no drop-off points, got %v", va.DropOffPoints)
	}
}

// ------------------------------------------------------------
// DROP-OFF POINTS KEEP EVENT ORDER, ZEROS EXCLUDED
// ------------------------------------------------------------

func TestVideoAnalytics_DropOffOrdering(t *testing.T) {
	va := aggregate.VideoAnalytics(referenceLog(), "vid_home_decor")

	// session_004 seek@150, pause@180, then session_007 seek@100.
	if !reflect.DeepEqual(va.DropOffPoints, []float64{150, 180, 100}) {
		t.Fatalf("unexpected drop-off points: %v", va.DropOffPoints)
	}
	if !almostEqual(va.CompletionRate, 0.5) {
		t.Fatalf("expected completion rate 0.5, got %v", va.CompletionRate)
	}
	// Pause@180 and complete@200.
	if !almostEqual(va.AvgWatchTime, 190) {
		t.Fatalf("expected avg watch time 190, got %v", va.AvgWatchTime)
	}
}

// ------------------------------------------------------------
// TOP PRODUCTS: DESCENDING, STABLE, CAPPED AT 5
// ------------------------------------------------------------

func TestVideoAnalytics_TopProductsSortedAndCapped(t *testing.T) {
	events := make([]domain.Event, 0)
	// prod_a x3, prod_b x1, prod_c x2, then prod_d..prod_g x1 each.
	clicks := []string{"prod_a", "prod_a", "prod_b", "prod_c", "prod_a", "prod_c", "prod_d", "prod_e", "prod_f", "prod_g"}
	for i, pid := range clicks {
		events = append(events, ev(
			fmt.Sprintf("c%d", i), domain.EventProductClick, at(9, i, 0),
			"u1", "s1", "v1", pid,
			productMeta(float64(i), 100, "mobile", 10, "P", "C"),
		))
	}

	va := aggregate.VideoAnalytics(events, "v1")

	if len(va.TopProducts) != 5 {
		t.Fatalf("expected top products capped at 5, got %d", len(va.TopProducts))
	}
	if va.TopProducts[0].ProductID != "prod_a" || va.TopProducts[0].Clicks != 3 {
		t.Fatalf("expected prod_a with 3 clicks first, got %+v", va.TopProducts[0])
	}
	if va.TopProducts[1].ProductID != "prod_c" || va.TopProducts[1].Clicks != 2 {
		t.Fatalf("expected prod_c with 2 clicks second, got %+v", va.TopProducts[1])
	}
	// Ties on 1 click keep first-encountered order.
	if va.TopProducts[2].ProductID != "prod_b" {
		t.Fatalf("expected stable tie order starting with prod_b, got %+v", va.TopProducts[2])
	}
}

// ------------------------------------------------------------
// UNKNOWN VIDEO
// ------------------------------------------------------------

func TestVideoAnalytics_UnknownVideo(t *testing.T) {
	va := aggregate.VideoAnalytics(referenceLog(), "vid_unknown")

	if va.TotalViews != 0 || va.TotalProductClicks != 0 {
		t.Fatalf("expected zero counts, got %+v", va)
	}
	if va.CompletionRate != 0 || va.AvgWatchTime != 0 {
		t.Fatalf("expected zero rates, got %+v", va)
	}
	if len(va.TopProducts) != 0 || len(va.DropOffPoints) != 0 {
		t.Fatalf("expected empty lists, got %+v", va)
	}
}
