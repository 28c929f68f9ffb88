//go:build integration

package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/BluezConcepts/API-backend/internal/bookings"
	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/internal/spots"
	"github.com/BluezConcepts/API-backend/internal/users"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var poolConfig = config.DatabaseConfig{
	MaxOpenConns:    20,
	MaxIdleConns:    5,
	ConnMaxLifetime: time.Minute,
}

// startPostgres runs a throwaway postgres and returns its DSN
func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "campspots",
			"POSTGRES_PASSWORD": "campspots",
			"POSTGRES_DB":       "campspots_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(90 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("host=%s port=%s user=campspots password=campspots dbname=campspots_test sslmode=disable",
		host, port.Port())
}

type fixture struct {
	dsn   string
	db    *gorm.DB
	owner users.User
	guest users.User
	spot  spots.Spot
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	dsn := startPostgres(t)

	db, err := OpenPostgres(ctx, dsn, poolConfig, logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	// running twice must not fail on existing constraints
	require.NoError(t, Migrate(db))

	f := &fixture{
		dsn:   dsn,
		db:    db,
		owner: users.User{Name: "Olivia Owner", Email: "owner@example.com", Password: "x", IsOwner: true},
		guest: users.User{Name: "Gus Guest", Email: "guest@example.com", Password: "x"},
	}
	require.NoError(t, db.Create(&f.owner).Error)
	require.NoError(t, db.Create(&f.guest).Error)

	f.spot = spots.Spot{
		OwnerID:       f.owner.ID,
		Name:          "Pine Hollow",
		Location:      "Ardennes",
		PricePerNight: decimal.RequireFromString("30.00"),
		Capacity:      4,
	}
	require.NoError(t, db.Omit("Images").Create(&f.spot).Error)
	return f
}

func (f *fixture) booking(start, end string, status bookings.Status) *bookings.Booking {
	s, _ := bookings.ParseDate(start)
	e, _ := bookings.ParseDate(end)
	return &bookings.Booking{
		ID:         uuid.New(),
		BookingRef: "CMP-" + uuid.NewString()[:8],
		SpotID:     f.spot.ID,
		UserID:     f.guest.ID,
		StartDate:  datatypes.Date(s),
		EndDate:    datatypes.Date(e),
		GuestCount: 2,
		TotalPrice: decimal.RequireFromString("60.00"),
		Currency:   "EUR",
		Status:     status,
	}
}

func TestPostgresConstraints(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	repo := bookings.NewRepository(f.db)

	t.Run("exclusion constraint rejects overlapping active bookings", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, f.booking("2030-07-01", "2030-07-05", bookings.StatusAccepted)))

		err := f.db.Create(f.booking("2030-07-04", "2030-07-06", bookings.StatusPending)).Error
		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "23P01", pgErr.Code)

		err = repo.Create(ctx, f.booking("2030-07-03", "2030-07-04", bookings.StatusPending))
		assert.ErrorIs(t, err, bookings.ErrSlotUnavailable)
	})

	t.Run("back to back stays are allowed", func(t *testing.T) {
		assert.NoError(t, repo.Create(ctx, f.booking("2030-07-05", "2030-07-07", bookings.StatusPending)))
	})

	t.Run("declined bookings do not block", func(t *testing.T) {
		assert.NoError(t, repo.Create(ctx, f.booking("2030-07-01", "2030-07-03", bookings.StatusDeclined)))
	})

	t.Run("deleting a spot cascades to its bookings", func(t *testing.T) {
		other := spots.Spot{
			OwnerID:       f.owner.ID,
			Name:          "Short Lived",
			Location:      "Eifel",
			PricePerNight: decimal.RequireFromString("10.00"),
			Capacity:      1,
		}
		require.NoError(t, f.db.Omit("Images").Create(&other).Error)
		b := f.booking("2031-01-01", "2031-01-02", bookings.StatusDeclined)
		b.SpotID = other.ID
		require.NoError(t, repo.Create(ctx, b))

		require.NoError(t, f.db.Delete(&spots.Spot{}, "id = ?", other.ID).Error)

		var count int64
		require.NoError(t, f.db.Model(&bookings.Booking{}).Where("spot_id = ?", other.ID).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestConcurrentBookingsHaveOneWinner(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	catalog := spots.NewCatalogAdapter(spots.NewRepository(f.db))
	svc := bookings.NewService(bookings.NewRepository(f.db), catalog, nil, nil, "EUR")

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		refused   int
		other     []error
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateBooking(ctx, f.guest.ID, &bookings.CreateBookingRequest{
				SpotID:     f.spot.ID.String(),
				StartDate:  "2030-08-10",
				EndDate:    "2030-08-14",
				GuestCount: 2,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, bookings.ErrSlotUnavailable):
				refused++
			default:
				other = append(other, err)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, refused)

	var active int64
	require.NoError(t, f.db.Model(&bookings.Booking{}).
		Where("spot_id = ? AND status IN ?", f.spot.ID, bookings.ActiveStatuses()).
		Count(&active).Error)
	assert.EqualValues(t, 1, active)
}

func TestConcurrentBookingsExceedingPoolSize(t *testing.T) {
	f := setup(t)

	small := poolConfig
	small.MaxOpenConns = 3
	small.MaxIdleConns = 3
	db, err := OpenPostgres(context.Background(), f.dsn, small, logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, db.Omit("Spot").Create(&spots.UnavailabilityWindow{
		SpotID:    f.spot.ID,
		StartDate: datatypes.Date(time.Date(2030, 9, 20, 0, 0, 0, 0, time.UTC)),
		EndDate:   datatypes.Date(time.Date(2030, 9, 25, 0, 0, 0, 0, time.UTC)),
		Reason:    "maintenance",
	}).Error)

	catalog := spots.NewCatalogAdapter(spots.NewRepository(db))
	svc := bookings.NewService(bookings.NewRepository(db), catalog, nil, nil, "EUR")

	// a wedged pool shows up as deadline errors instead of a clean result
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const attempts = 24
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		refused   int
		other     []error
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateBooking(ctx, f.guest.ID, &bookings.CreateBookingRequest{
				SpotID:     f.spot.ID.String(),
				StartDate:  "2030-09-10",
				EndDate:    "2030-09-14",
				GuestCount: 2,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, bookings.ErrSlotUnavailable):
				refused++
			default:
				other = append(other, err)
			}
		}()
	}
	wg.Wait()

	require.NoError(t, ctx.Err())
	assert.Empty(t, other)
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, refused)

	_, err = svc.CreateBooking(ctx, f.guest.ID, &bookings.CreateBookingRequest{
		SpotID:     f.spot.ID.String(),
		StartDate:  "2030-09-24",
		EndDate:    "2030-09-26",
		GuestCount: 1,
	})
	assert.ErrorIs(t, err, bookings.ErrSlotUnavailable)

	windows, err := bookings.NewRepository(db).ListWindows(ctx, f.spot.ID)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, "[2030-09-20, 2030-09-25)", windows[0].Range.String())
}

func TestReadModelAggregates(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	reads, err := OpenReadPool(ctx, f.dsn, poolConfig)
	require.NoError(t, err)
	defer reads.Close()

	for _, rating := range []int{4, 5} {
		require.NoError(t, f.db.Omit("Spot").Create(&spots.Review{
			SpotID: f.spot.ID, UserID: f.guest.ID, Rating: rating, Comment: "lovely",
		}).Error)
	}

	summary, err := spots.NewReadModel(reads).GetSpot(ctx, f.spot.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ReviewCount)
	assert.InDelta(t, 4.5, summary.AverageRating, 0.001)
}
