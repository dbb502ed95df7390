// Package redis provides Redis cache key management and TTL definitions.
// All cache keys and TTLs should be defined in this file to ensure centralized management.
package redis

import "time"

// Cache Key Prefixes
// All Redis cache key prefixes are defined here to ensure consistent naming
// and centralized management across the application.
const (
	// PlaylistKeyPrefix is the prefix for cached raw playlist text
	// Format: vod:playlist:{bucket}:{path}
	PlaylistKeyPrefix = "vod:playlist:"

	// ThumbnailKeyPrefix is the prefix for cached signed thumbnail URLs
	// Format: vod:thumbnail:{bucket}:{path}
	ThumbnailKeyPrefix = "vod:thumbnail:"

	// LockKeyPrefix is the prefix for conversion lease keys.
	// Namespaced separately from artifact keys so that "is converting"
	// never collides with "is cached".
	// Format: vod:lock:{bucket}:{path}
	LockKeyPrefix = "vod:lock:"
)

// Cache TTL Definitions
// All Redis cache TTL values are defined here to ensure consistent
// expiration policies across the application.
const (
	// PlaylistTTL is the TTL for cached playlist text (45 minutes,
	// on the order of the signed segment URL lifetime)
	PlaylistTTL = 45 * time.Minute

	// ThumbnailTTL is the TTL for cached signed thumbnail URLs (45 minutes,
	// must stay below the 1 hour signature lifetime)
	ThumbnailTTL = 45 * time.Minute

	// LockTTL is the lease duration for conversion locks. Must exceed the
	// worst-case conversion time; a crashed holder is reclaimed after expiry.
	LockTTL = 2 * time.Minute
)

// PlaylistKey generates a cache key for raw playlist text
func PlaylistKey(tail string) string {
	return PlaylistKeyPrefix + tail
}

// ThumbnailKey generates a cache key for a signed thumbnail URL
func ThumbnailKey(tail string) string {
	return ThumbnailKeyPrefix + tail
}

// LockKey generates a cache key for a conversion lease
func LockKey(tail string) string {
	return LockKeyPrefix + tail
}
