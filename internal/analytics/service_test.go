package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BluezConcepts/API-backend/internal/shared/middleware"
	"github.com/BluezConcepts/API-backend/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	overview ownerOverviewRow
	perf     []spotPerformanceRow
	daily    []dailyBookingRow
	guest    guestSummaryRow

	overviewCalls int
	since         time.Time
}

func (s *stubRepository) OwnerOverview(ctx context.Context, ownerID uuid.UUID, today time.Time) (*ownerOverviewRow, error) {
	s.overviewCalls++
	row := s.overview
	return &row, nil
}

func (s *stubRepository) SpotPerformance(ctx context.Context, ownerID uuid.UUID) ([]spotPerformanceRow, error) {
	return s.perf, nil
}

func (s *stubRepository) DailyBookingStats(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]dailyBookingRow, error) {
	s.since = since
	return s.daily, nil
}

func (s *stubRepository) GuestSummary(ctx context.Context, userID uuid.UUID, today time.Time) (*guestSummaryRow, error) {
	row := s.guest
	return &row, nil
}

var fixedNow = time.Date(2030, 6, 15, 14, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, repo Repository) *service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := NewService(repo, cache.NewService(client), "EUR").(*service)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestAcceptanceRate(t *testing.T) {
	assert.Zero(t, acceptanceRate(0, 0))
	assert.Equal(t, 100.0, acceptanceRate(3, 0))
	assert.Equal(t, 66.7, acceptanceRate(2, 1))
}

func TestClampDays(t *testing.T) {
	assert.Equal(t, 30, clampDays(0))
	assert.Equal(t, 7, clampDays(7))
	assert.Equal(t, 365, clampDays(1000))
}

func TestFillDays(t *testing.T) {
	today := truncateDay(fixedNow)
	out := fillDays([]dailyBookingRow{{Day: "2030-06-14", Requests: 3, Accepted: 1}}, today, 3)

	require.Len(t, out, 3)
	assert.Equal(t, DailyBookingStats{Date: "2030-06-13"}, out[0])
	assert.Equal(t, DailyBookingStats{Date: "2030-06-14", Requests: 3, Accepted: 1}, out[1])
	assert.Equal(t, "2030-06-15", out[2].Date)
}

func TestOwnerDashboard(t *testing.T) {
	repo := &stubRepository{
		overview: ownerOverviewRow{
			TotalSpots:       2,
			AverageRating:    4.5,
			PendingBookings:  1,
			AcceptedBookings: 3,
			DeclinedBookings: 1,
			AcceptedRevenue:  decimal.RequireFromString("412.5"),
			UpcomingStays:    2,
		},
		perf: []spotPerformanceRow{
			{SpotID: uuid.NewString(), Name: "Lakeside", ActiveBookings: 3, NightsBooked: 9, Revenue: decimal.RequireFromString("300")},
		},
	}
	svc := newTestService(t, repo)
	ctx := context.Background()
	owner := uuid.New()

	dashboard, err := svc.GetOwnerDashboard(ctx, owner, 7)
	require.NoError(t, err)

	assert.Equal(t, 75.0, dashboard.Overview.AcceptanceRate)
	assert.Equal(t, "412.50", dashboard.Overview.AcceptedRevenue)
	assert.Equal(t, "EUR", dashboard.Overview.Currency)
	require.Len(t, dashboard.Spots, 1)
	assert.Equal(t, "300.00", dashboard.Spots[0].Revenue)
	assert.Len(t, dashboard.DailyBookings, 7)
	assert.Equal(t, time.Date(2030, 6, 9, 0, 0, 0, 0, time.UTC), repo.since)

	t.Run("served from cache", func(t *testing.T) {
		_, err := svc.GetOwnerDashboard(ctx, owner, 7)
		require.NoError(t, err)
		assert.Equal(t, 1, repo.overviewCalls)
	})

	t.Run("window is part of the key", func(t *testing.T) {
		_, err := svc.GetOwnerDashboard(ctx, owner, 14)
		require.NoError(t, err)
		assert.Equal(t, 2, repo.overviewCalls)
	})
}

func TestPersonalAnalytics(t *testing.T) {
	repo := &stubRepository{guest: guestSummaryRow{
		TotalBookings: 4,
		Accepted:      2,
		Pending:       1,
		Declined:      1,
		NightsBooked:  5,
		TotalSpent:    decimal.RequireFromString("150"),
		NextStay:      sql.NullTime{Time: time.Date(2030, 7, 1, 0, 0, 0, 0, time.UTC), Valid: true},
	}}
	svc := newTestService(t, repo)

	result, err := svc.GetPersonalAnalytics(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "150.00", result.TotalSpent)
	require.NotNil(t, result.NextStay)
	assert.Equal(t, "2030-07-01", *result.NextStay)

	repo.guest = guestSummaryRow{TotalSpent: decimal.Zero}
	result, err = svc.GetPersonalAnalytics(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, result.NextStay)
	assert.Equal(t, "0.00", result.TotalSpent)
}

func TestOwnerDashboardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewController(newTestService(t, &stubRepository{}))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uuid.NewString())
		c.Next()
	})
	r.GET("/owner/analytics", ctrl.GetOwnerDashboard)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	assert.Equal(t, http.StatusBadRequest, get("/owner/analytics?days=-2").Code)
	assert.Equal(t, http.StatusBadRequest, get("/owner/analytics?days=week").Code)

	w := get("/owner/analytics?days=3")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data OwnerDashboard `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.DailyBookings, 3)
	assert.Equal(t, "0.00", body.Data.Overview.AcceptedRevenue)
}
