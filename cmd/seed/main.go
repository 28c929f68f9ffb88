package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/BluezConcepts/API-backend/internal/bookings"
	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/internal/shared/database"
	"github.com/BluezConcepts/API-backend/internal/spots"
	"github.com/BluezConcepts/API-backend/internal/tags"
	"github.com/BluezConcepts/API-backend/internal/users"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

const seedPassword = "qwerty"

type Seeder struct {
	db       *database.DB
	tags     tags.Repository
	currency string
}

type seedSpot struct {
	owner       string
	name        string
	description string
	location    string
	price       string
	capacity    int
	tags        []string
	amenities   []string
	images      []string
}

func main() {
	_ = godotenv.Load()
	fmt.Println("🌱 Starting camping spot database seeder...")

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.InitDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, tags: tags.NewRepository(db.PostgreSQL), currency: cfg.Booking.Currency}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(ctx); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// cached listings would still show the old rows
	if err := db.Redis.FlushDB(ctx).Err(); err != nil {
		fmt.Printf("  ⚠️ Could not flush Redis cache: %v\n", err)
	}

	fmt.Printf("\n🎉 Seeding completed! Every user logs in with password %q.\n", seedPassword)
}

// CleanDatabase truncates every table; CASCADE takes care of dependents
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookings",
		"reviews",
		"unavailability_windows",
		"camping_spot_images",
		"camping_spot_tags",
		"camping_spot_amenities",
		"camping_spots",
		"tags",
		"amenities",
		"users",
	}

	return s.db.PostgreSQL.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " CASCADE").Error
}

// SeedAll seeds users, the catalog and a few bookings
func (s *Seeder) SeedAll(ctx context.Context) error {
	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	spotIDs, err := s.SeedSpots(ctx, userIDs)
	if err != nil {
		return fmt.Errorf("failed to seed spots: %w", err)
	}

	if err := s.SeedReviews(spotIDs, userIDs); err != nil {
		return fmt.Errorf("failed to seed reviews: %w", err)
	}

	if err := s.SeedUnavailability(spotIDs); err != nil {
		return fmt.Errorf("failed to seed unavailability: %w", err)
	}

	if err := s.SeedBookings(ctx, spotIDs, userIDs); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}
	return nil
}

// SeedUsers creates two owners and two guests
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key     string
		name    string
		email   string
		isOwner bool
	}{
		{"owner1", "Lotte Janssens", "lotte@campspots.dev", true},
		{"owner2", "Pieter De Smet", "pieter@campspots.dev", true},
		{"guest1", "Amira Haddad", "amira@campspots.dev", false},
		{"guest2", "Tom Peeters", "tom@campspots.dev", false},
	}

	userIDs := make(map[string]uuid.UUID, len(usersData))
	for _, u := range usersData {
		user := users.User{
			ID:             uuid.New(),
			Name:           u.name,
			Email:          u.email,
			Password:       string(hashedPassword),
			IsOwner:        u.isOwner,
			PhoneNumber:    users.DefaultPhoneNumber,
			ProfilePicture: users.DefaultProfilePicture,
		}
		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", u.email, err)
		}

		userIDs[u.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role())
	}
	return userIDs, nil
}

// SeedSpots creates camping spots with images, tags and amenities
func (s *Seeder) SeedSpots(ctx context.Context, userIDs map[string]uuid.UUID) ([]uuid.UUID, error) {
	fmt.Println("  🏕️ Seeding camping spots...")

	spotsData := []seedSpot{
		{
			owner:       "owner1",
			name:        "Lakeside Meadow",
			description: "Flat grass pitch a few steps from the water, sunrise over the lake.",
			location:    "Virelles, Belgium",
			price:       "28.50",
			capacity:    4,
			tags:        []string{"Lakeside", "Family Friendly"},
			amenities:   []string{"Showers", "Drinking Water", "Fire Pit"},
			images:      []string{"https://images.campspots.dev/lakeside-1.jpg", "https://images.campspots.dev/lakeside-2.jpg"},
		},
		{
			owner:       "owner1",
			name:        "Pine Ridge Hideaway",
			description: "Secluded forest clearing with a hammock-friendly tree line.",
			location:    "Bouillon, Belgium",
			price:       "22.00",
			capacity:    2,
			tags:        []string{"Forest", "Quiet"},
			amenities:   []string{"Fire Pit", "Compost Toilet"},
			images:      []string{"https://images.campspots.dev/pine-ridge.jpg"},
		},
		{
			owner:       "owner2",
			name:        "Riverside Orchard",
			description: "Apple orchard on the riverbank. Dogs welcome.",
			location:    "Durbuy, Belgium",
			price:       "35.00",
			capacity:    6,
			tags:        []string{"Riverside", "Pet Friendly", "Family Friendly"},
			amenities:   []string{"Showers", "Electricity", "Drinking Water"},
			images:      []string{"https://images.campspots.dev/orchard.jpg"},
		},
		{
			owner:       "owner2",
			name:        "Dune Edge Pitch",
			description: "Sheltered pitch behind the dunes, ten minutes walk to the beach.",
			location:    "De Panne, Belgium",
			price:       "40.00",
			capacity:    3,
			tags:        []string{"Beach"},
			amenities:   []string{"Showers", "Electricity"},
		},
	}

	var spotIDs []uuid.UUID
	for _, data := range spotsData {
		spot := spots.Spot{
			ID:            uuid.New(),
			OwnerID:       userIDs[data.owner],
			Name:          data.name,
			Description:   data.description,
			Location:      data.location,
			PricePerNight: decimal.RequireFromString(data.price),
			Capacity:      data.capacity,
		}
		for _, url := range data.images {
			spot.Images = append(spot.Images, spots.Image{ID: uuid.New(), SpotID: spot.ID, ImageURL: url})
		}

		if err := s.db.PostgreSQL.Create(&spot).Error; err != nil {
			return nil, fmt.Errorf("failed to create spot %s: %w", data.name, err)
		}
		if err := s.labelSpot(ctx, spot.ID, data); err != nil {
			return nil, err
		}

		spotIDs = append(spotIDs, spot.ID)
		fmt.Printf("    ✅ Created spot: %s (%s/night, %d guests)\n", spot.Name, spot.PricePerNight.StringFixed(2), spot.Capacity)
	}
	return spotIDs, nil
}

func (s *Seeder) labelSpot(ctx context.Context, spotID uuid.UUID, data seedSpot) error {
	spotTags, err := s.tags.EnsureTags(ctx, data.tags)
	if err != nil {
		return fmt.Errorf("failed to ensure tags for %s: %w", data.name, err)
	}
	tagIDs := make([]uuid.UUID, 0, len(spotTags))
	for _, t := range spotTags {
		tagIDs = append(tagIDs, t.ID)
	}
	if err := s.tags.ReplaceSpotTags(ctx, spotID, tagIDs); err != nil {
		return fmt.Errorf("failed to tag %s: %w", data.name, err)
	}

	amenities, err := s.tags.EnsureAmenities(ctx, data.amenities)
	if err != nil {
		return fmt.Errorf("failed to ensure amenities for %s: %w", data.name, err)
	}
	amenityIDs := make([]uuid.UUID, 0, len(amenities))
	for _, a := range amenities {
		amenityIDs = append(amenityIDs, a.ID)
	}
	if err := s.tags.ReplaceSpotAmenities(ctx, spotID, amenityIDs); err != nil {
		return fmt.Errorf("failed to set amenities for %s: %w", data.name, err)
	}
	return nil
}

// SeedReviews gives the first spots a few ratings so featured ordering has data
func (s *Seeder) SeedReviews(spotIDs []uuid.UUID, userIDs map[string]uuid.UUID) error {
	fmt.Println("  ⭐ Seeding reviews...")

	reviews := []struct {
		spot    int
		guest   string
		rating  int
		comment string
	}{
		{0, "guest1", 5, "Woke up to mist on the lake. Perfect."},
		{0, "guest2", 4, "Great spot, showers were a bit cold."},
		{1, "guest1", 4, "Very quiet, bring your own firewood."},
		{2, "guest2", 5, "Kids loved the orchard."},
	}

	for _, r := range reviews {
		review := spots.Review{
			ID:      uuid.New(),
			SpotID:  spotIDs[r.spot],
			UserID:  userIDs[r.guest],
			Rating:  r.rating,
			Comment: r.comment,
		}
		if err := s.db.PostgreSQL.Omit("Spot").Create(&review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
	}
	fmt.Printf("    ✅ Created %d reviews\n", len(reviews))
	return nil
}

// SeedUnavailability blocks one week of the second spot for maintenance
func (s *Seeder) SeedUnavailability(spotIDs []uuid.UUID) error {
	fmt.Println("  🚧 Seeding unavailability windows...")

	start := today().AddDate(0, 1, 0)
	window := spots.UnavailabilityWindow{
		ID:        uuid.New(),
		SpotID:    spotIDs[1],
		StartDate: datatypes.Date(start),
		EndDate:   datatypes.Date(start.AddDate(0, 0, 7)),
		Reason:    "Maintenance",
	}
	if err := s.db.PostgreSQL.Omit("Spot").Create(&window).Error; err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	fmt.Printf("    ✅ Blocked %s to %s\n", start.Format("2006-01-02"), start.AddDate(0, 0, 7).Format("2006-01-02"))
	return nil
}

// SeedBookings goes through the booking service so references, prices and
// availability checks match what the API would produce
func (s *Seeder) SeedBookings(ctx context.Context, spotIDs []uuid.UUID, userIDs map[string]uuid.UUID) error {
	fmt.Println("  📅 Seeding bookings...")

	catalog := spots.NewCatalogAdapter(spots.NewRepository(s.db.PostgreSQL))
	svc := bookings.NewService(bookings.NewRepository(s.db.PostgreSQL), catalog, nil, nil, s.currency)

	base := today().AddDate(0, 0, 14)
	requests := []struct {
		spot   int
		guest  string
		offset int
		nights int
		guests int
		accept bool
	}{
		{0, "guest1", 0, 3, 2, true},
		{0, "guest2", 5, 2, 4, false},
		{2, "guest1", 2, 4, 3, false},
	}

	for _, r := range requests {
		start := base.AddDate(0, 0, r.offset)
		booking, err := svc.CreateBooking(ctx, userIDs[r.guest], &bookings.CreateBookingRequest{
			SpotID:     spotIDs[r.spot].String(),
			StartDate:  start.Format("2006-01-02"),
			EndDate:    start.AddDate(0, 0, r.nights).Format("2006-01-02"),
			GuestCount: r.guests,
		})
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		if r.accept {
			accepted, err := svc.AcceptBooking(ctx, booking.ID)
			if err != nil {
				return fmt.Errorf("failed to accept booking %s: %w", booking.BookingRef, err)
			}
			booking = accepted
		}
		fmt.Printf("    ✅ Booking %s %s (%s %s)\n", booking.BookingRef, booking.Status, booking.TotalPrice.StringFixed(2), booking.Currency)
	}
	return nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
