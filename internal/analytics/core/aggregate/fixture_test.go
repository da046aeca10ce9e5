package aggregate_test

import (
	"math"
	"time"

	"video-analytics-service/internal/analytics/core/domain"
)

// The fixture reproduces the sample log from the video commerce demo:
// five users, four videos, eight sessions, 37 events on 2026-01-15.

func at(hour, min, sec int) time.Time {
	return time.Date(2026, time.January, 15, hour, min, sec, 0, time.UTC)
}

func ev(id string, typ domain.EventType, t time.Time, user, session, video, product string, md domain.Metadata) domain.Event {
	return domain.Event{
		ID:        id,
		Type:      typ,
		Timestamp: t,
		UserID:    user,
		SessionID: session,
		VideoID:   video,
		ProductID: product,
		Metadata:  md,
	}
}

func playMeta(pos, dur float64, device string) domain.Metadata {
	return domain.Metadata{VideoTimestamp: pos, VideoDuration: dur, DeviceType: device}
}

func productMeta(pos, dur float64, device string, price float64, name, category string) domain.Metadata {
	return domain.Metadata{
		VideoTimestamp:  pos,
		VideoDuration:   dur,
		DeviceType:      device,
		ProductPrice:    price,
		ProductName:     name,
		ProductCategory: category,
	}
}

func cartMeta(device string, price float64, name, category string, qty int) domain.Metadata {
	return domain.Metadata{
		DeviceType:      device,
		ProductPrice:    price,
		ProductName:     name,
		ProductCategory: category,
		Quantity:        qty,
	}
}

func purchaseMeta(device string, price float64, name, category string, qty int, total float64) domain.Metadata {
	md := cartMeta(device, price, name, category, qty)
	md.TotalAmount = total
	return md
}

func referenceLog() []domain.Event {
	return []domain.Event{
		// user_001, session_001: full conversion journey (fashion video)
		ev("evt_001", domain.EventVideoPlay, at(9, 0, 0), "user_001", "session_001", "vid_fashion_summer", "", playMeta(0, 180, "mobile")),
		ev("evt_002", domain.EventProductHover, at(9, 0, 45), "user_001", "session_001", "vid_fashion_summer", "prod_001", productMeta(45, 180, "mobile", 79.99, "Summer Dress", "Fashion")),
		ev("evt_003", domain.EventProductClick, at(9, 0, 50), "user_001", "session_001", "vid_fashion_summer", "prod_001", productMeta(50, 180, "mobile", 79.99, "Summer Dress", "Fashion")),
		ev("evt_004", domain.EventAddToCart, at(9, 1, 30), "user_001", "session_001", "vid_fashion_summer", "prod_001", cartMeta("mobile", 79.99, "Summer Dress", "Fashion", 1)),
		ev("evt_005", domain.EventVideoComplete, at(9, 3, 0), "user_001", "session_001", "vid_fashion_summer", "", playMeta(180, 180, "mobile")),
		ev("evt_006", domain.EventPurchase, at(9, 5, 0), "user_001", "session_001", "vid_fashion_summer", "prod_001", purchaseMeta("mobile", 79.99, "Summer Dress", "Fashion", 1, 79.99)),

		// user_001, session_002: tech video, no purchase
		ev("evt_007", domain.EventVideoPlay, at(14, 0, 0), "user_001", "session_002", "vid_tech_review", "", playMeta(0, 300, "desktop")),
		ev("evt_008", domain.EventProductClick, at(14, 2, 0), "user_001", "session_002", "vid_tech_review", "prod_002", productMeta(120, 300, "desktop", 149.99, "Wireless Earbuds", "Tech")),
		ev("evt_009", domain.EventVideoPause, at(14, 3, 30), "user_001", "session_002", "vid_tech_review", "", playMeta(210, 300, "desktop")),

		// user_002, session_003: browse and purchase two items
		ev("evt_010", domain.EventVideoPlay, at(10, 0, 0), "user_002", "session_003", "vid_fitness_gear", "", playMeta(0, 240, "tablet")),
		ev("evt_011", domain.EventProductClick, at(10, 1, 0), "user_002", "session_003", "vid_fitness_gear", "prod_004", productMeta(60, 240, "tablet", 39.99, "Yoga Mat", "Fitness")),
		ev("evt_012", domain.EventProductClick, at(10, 2, 30), "user_002", "session_003", "vid_fitness_gear", "prod_005", productMeta(150, 240, "tablet", 129.99, "Running Shoes", "Fitness")),
		ev("evt_013", domain.EventAddToCart, at(10, 3, 0), "user_002", "session_003", "vid_fitness_gear", "prod_004", cartMeta("tablet", 39.99, "Yoga Mat", "Fitness", 2)),
		ev("evt_014", domain.EventAddToCart, at(10, 3, 30), "user_002", "session_003", "vid_fitness_gear", "prod_005", cartMeta("tablet", 129.99, "Running Shoes", "Fitness", 1)),
		ev("evt_015", domain.EventVideoComplete, at(10, 4, 0), "user_002", "session_003", "vid_fitness_gear", "", playMeta(240, 240, "tablet")),
		ev("evt_016", domain.EventPurchase, at(10, 6, 0), "user_002", "session_003", "vid_fitness_gear", "prod_004", purchaseMeta("tablet", 39.99, "Yoga Mat", "Fitness", 2, 79.98)),
		ev("evt_017", domain.EventPurchase, at(10, 6, 0), "user_002", "session_003", "vid_fitness_gear", "prod_005", purchaseMeta("tablet", 129.99, "Running Shoes", "Fitness", 1, 129.99)),

		// user_003, session_004: window shopper, no purchase
		ev("evt_018", domain.EventVideoPlay, at(11, 0, 0), "user_003", "session_004", "vid_home_decor", "", playMeta(0, 200, "mobile")),
		ev("evt_019", domain.EventProductHover, at(11, 0, 30), "user_003", "session_004", "vid_home_decor", "prod_003", productMeta(30, 200, "mobile", 89.99, "Modern Lamp", "Home")),
		ev("evt_020", domain.EventProductClick, at(11, 0, 35), "user_003", "session_004", "vid_home_decor", "prod_003", productMeta(35, 200, "mobile", 89.99, "Modern Lamp", "Home")),
		ev("evt_021", domain.EventProductHover, at(11, 1, 0), "user_003", "session_004", "vid_home_decor", "prod_008", productMeta(60, 200, "mobile", 45.99, "Plant Pot Set", "Home")),
		ev("evt_022", domain.EventProductClick, at(11, 1, 5), "user_003", "session_004", "vid_home_decor", "prod_008", productMeta(65, 200, "mobile", 45.99, "Plant Pot Set", "Home")),
		ev("evt_023", domain.EventVideoSeek, at(11, 1, 30), "user_003", "session_004", "vid_home_decor", "", playMeta(150, 200, "mobile")),
		ev("evt_024", domain.EventVideoPause, at(11, 2, 0), "user_003", "session_004", "vid_home_decor", "", playMeta(180, 200, "mobile")),

		// user_003, session_005: returns for the fashion video
		ev("evt_025", domain.EventVideoPlay, at(16, 0, 0), "user_003", "session_005", "vid_fashion_summer", "", playMeta(0, 180, "desktop")),
		ev("evt_026", domain.EventProductClick, at(16, 1, 0), "user_003", "session_005", "vid_fashion_summer", "prod_007", productMeta(60, 180, "desktop", 119.99, "Denim Jacket", "Fashion")),
		ev("evt_027", domain.EventVideoComplete, at(16, 3, 0), "user_003", "session_005", "vid_fashion_summer", "", playMeta(180, 180, "desktop")),

		// user_004, session_006: quick converter
		ev("evt_028", domain.EventVideoPlay, at(12, 0, 0), "user_004", "session_006", "vid_tech_review", "", playMeta(0, 300, "mobile")),
		ev("evt_029", domain.EventProductClick, at(12, 0, 30), "user_004", "session_006", "vid_tech_review", "prod_006", productMeta(30, 300, "mobile", 299.99, "Smart Watch", "Tech")),
		ev("evt_030", domain.EventAddToCart, at(12, 0, 45), "user_004", "session_006", "vid_tech_review", "prod_006", cartMeta("mobile", 299.99, "Smart Watch", "Tech", 1)),
		ev("evt_031", domain.EventPurchase, at(12, 2, 0), "user_004", "session_006", "vid_tech_review", "prod_006", purchaseMeta("mobile", 299.99, "Smart Watch", "Tech", 1, 299.99)),

		// user_005, session_007: browsing only
		ev("evt_032", domain.EventVideoPlay, at(13, 0, 0), "user_005", "session_007", "vid_home_decor", "", playMeta(0, 200, "desktop")),
		ev("evt_033", domain.EventVideoSeek, at(13, 1, 0), "user_005", "session_007", "vid_home_decor", "", playMeta(100, 200, "desktop")),
		ev("evt_034", domain.EventVideoComplete, at(13, 2, 40), "user_005", "session_007", "vid_home_decor", "", playMeta(200, 200, "desktop")),

		// user_005, session_008: tech video, no product interaction
		ev("evt_035", domain.EventVideoPlay, at(15, 0, 0), "user_005", "session_008", "vid_tech_review", "", playMeta(0, 300, "desktop")),
		ev("evt_036", domain.EventProductHover, at(15, 1, 30), "user_005", "session_008", "vid_tech_review", "prod_002", productMeta(90, 300, "desktop", 149.99, "Wireless Earbuds", "Tech")),
		ev("evt_037", domain.EventVideoPause, at(15, 3, 0), "user_005", "session_008", "vid_tech_review", "", playMeta(180, 300, "desktop")),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
