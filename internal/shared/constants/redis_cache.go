package constants

import (
	"fmt"
	"strings"
	"time"
)

// Redis cache keys and TTLs for the camping spot API.
// Pattern: campspots:{module}:{operation}:{identifier}:{params?}

const (
	TTL_STATIC_LONG       = 24 * time.Hour
	TTL_STATIC_SHORT      = 6 * time.Hour
	TTL_SEMI_STATIC_SHORT = 1 * time.Hour
	TTL_SEMI_STATIC_QUICK = 15 * time.Minute
	TTL_DYNAMIC_SHORT     = 5 * time.Minute
	TTL_DYNAMIC_QUICK     = 2 * time.Minute
)

const (
	CACHE_PREFIX = "campspots"
)

// ================== SPOTS MODULE ==================

const (
	CACHE_KEY_SPOTS_LIST     = CACHE_PREFIX + ":spots:list"          // + filters
	CACHE_KEY_SPOTS_FEATURED = CACHE_PREFIX + ":spots:featured"      // + :limit:X
	CACHE_KEY_SPOT_DETAIL    = CACHE_PREFIX + ":spots:detail:uuid:"  // + spot-id
	CACHE_KEY_SPOT_WINDOWS   = CACHE_PREFIX + ":spots:windows:uuid:" // + spot-id
	CACHE_KEY_SPOT_REVIEWS   = CACHE_PREFIX + ":spots:reviews:uuid:" // + spot-id
)

const (
	TTL_SPOTS_LIST     = TTL_SEMI_STATIC_QUICK // 15 minutes
	TTL_SPOTS_FEATURED = TTL_SEMI_STATIC_SHORT // 1 hour
	TTL_SPOT_DETAIL    = TTL_SEMI_STATIC_QUICK // 15 minutes
	TTL_SPOT_WINDOWS   = TTL_DYNAMIC_SHORT     // 5 minutes
	TTL_SPOT_REVIEWS   = TTL_DYNAMIC_SHORT     // 5 minutes
)

// ================== TAGS MODULE ==================

const (
	CACHE_KEY_TAGS_ALL      = CACHE_PREFIX + ":tags:all"
	CACHE_KEY_AMENITIES_ALL = CACHE_PREFIX + ":amenities:all"
)

const (
	TTL_TAGS_ALL      = TTL_STATIC_LONG
	TTL_AMENITIES_ALL = TTL_STATIC_LONG
)

// ================== AUTH MODULE ==================

const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":auth:user:profile:uuid:" // + user-id
)

const (
	TTL_USER_PROFILE = TTL_STATIC_SHORT
)

// ================== ANALYTICS MODULE ==================

const (
	CACHE_KEY_OWNER_DASHBOARD = CACHE_PREFIX + ":analytics:owner:uuid:" // + owner-id + :days:X
)

const (
	TTL_OWNER_DASHBOARD = TTL_DYNAMIC_QUICK
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_SPOT_LISTS = CACHE_PREFIX + ":spots:list*"
	PATTERN_INVALIDATE_FEATURED   = CACHE_PREFIX + ":spots:featured*"
	PATTERN_INVALIDATE_TAGS_ALL   = CACHE_PREFIX + ":tags:*"
)

// ================== HELPER FUNCTIONS ==================

// BuildSpotListKey -> "campspots:spots:list:page:1:limit:10:guests:0:q:lake:loc::tags:forest,river"
func BuildSpotListKey(page, limit, minGuests int, search, location string, tagSlugs []string) string {
	return fmt.Sprintf("%s:page:%d:limit:%d:guests:%d:q:%s:loc:%s:tags:%s",
		CACHE_KEY_SPOTS_LIST, page, limit, minGuests,
		strings.ToLower(search), strings.ToLower(location), strings.Join(tagSlugs, ","))
}

func BuildFeaturedSpotsKey(limit int) string {
	return fmt.Sprintf("%s:limit:%d", CACHE_KEY_SPOTS_FEATURED, limit)
}

func BuildSpotDetailKey(spotID string) string {
	return CACHE_KEY_SPOT_DETAIL + spotID
}

func BuildSpotWindowsKey(spotID string) string {
	return CACHE_KEY_SPOT_WINDOWS + spotID
}

func BuildSpotReviewsKey(spotID string) string {
	return CACHE_KEY_SPOT_REVIEWS + spotID
}

func BuildOwnerDashboardKey(ownerID string, days int) string {
	return fmt.Sprintf("%s%s:days:%d", CACHE_KEY_OWNER_DASHBOARD, ownerID, days)
}

func BuildUserProfileKey(userID string) string {
	return CACHE_KEY_USER_PROFILE + userID
}
