package aggregate

import (
	"sort"

	"video-analytics-service/internal/analytics/core/domain"
)

// Cohorts groups purchasing users by the calendar day of their first
// purchase and reports size, revenue and repeat-purchase rate per cohort,
// ascending by cohort date. Repeat rate counts users with more than one
// purchase anywhere in the log, not within a retention window.
func Cohorts(events []domain.Event) []domain.UserCohort {
	sorted := make([]domain.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	type userPurchases struct {
		firstDate string
		purchases int
		revenue   float64
	}

	userOrder := make([]string, 0)
	byUser := make(map[string]*userPurchases)

	for _, e := range sorted {
		if e.Type != domain.EventPurchase {
			continue
		}

		u, ok := byUser[e.UserID]
		if !ok {
			u = &userPurchases{firstDate: e.Timestamp.Format("2006-01-02")}
			byUser[e.UserID] = u
			userOrder = append(userOrder, e.UserID)
		}
		u.purchases++
		u.revenue += e.Metadata.TotalAmount
	}

	type cohortAccum struct {
		users       int
		revenue     float64
		repeatUsers int
	}

	dateOrder := make([]string, 0)
	byDate := make(map[string]*cohortAccum)

	for _, userID := range userOrder {
		u := byUser[userID]

		c, ok := byDate[u.firstDate]
		if !ok {
			c = &cohortAccum{}
			byDate[u.firstDate] = c
			dateOrder = append(dateOrder, u.firstDate)
		}
		c.users++
		c.revenue += u.revenue
		if u.purchases > 1 {
			c.repeatUsers++
		}
	}

	cohorts := make([]domain.UserCohort, 0, len(dateOrder))
	for _, date := range dateOrder {
		c := byDate[date]
		cohorts = append(cohorts, domain.UserCohort{
			CohortDate:         date,
			UserCount:          c.users,
			TotalRevenue:       c.revenue,
			AvgRevenuePerUser:  ratio(c.revenue, float64(c.users)),
			RepeatPurchaseRate: ratio(float64(c.repeatUsers), float64(c.users)),
		})
	}

	sort.SliceStable(cohorts, func(i, j int) bool {
		return cohorts[i].CohortDate < cohorts[j].CohortDate
	})
	return cohorts
}
