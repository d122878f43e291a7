package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Getaway storefront.
// Pattern: getaway:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

const (
	// Catalog snapshot from the external inventory service. The five minute
	// freshness window is part of the flow contract: within it every cart
	// clamp uses the same availability snapshot.
	TTL_CATALOG = 5 * time.Minute

	// Per-session flow state (cart, order draft, confirmation snapshot).
	// Refreshed on every write so an active session never expires mid-flow.
	TTL_SESSION = 24 * time.Hour
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "getaway"
)

// ================== CATALOG MODULE ==================

const (
	CACHE_KEY_CATALOG_LIST   = CACHE_PREFIX + ":catalog:list"
	CACHE_KEY_CATALOG_ITEM   = CACHE_PREFIX + ":catalog:item:"   // + item id
	CACHE_KEY_CATALOG_SEARCH = CACHE_PREFIX + ":catalog:search:" // + lowercased query
)

// ================== SESSION STATE ==================

const (
	SESSION_KEY_CART         = "cart"
	SESSION_KEY_DRAFT        = "draft"
	SESSION_KEY_CONFIRMATION = "confirmation"
)

// SessionKey builds the Redis key for one piece of per-session flow state.
func SessionKey(sessionID, part string) string {
	return fmt.Sprintf("%s:session:%s:%s", CACHE_PREFIX, sessionID, part)
}

// CatalogItemKey builds the cache key for a single catalog item.
func CatalogItemKey(itemID int) string {
	return fmt.Sprintf("%s%d", CACHE_KEY_CATALOG_ITEM, itemID)
}
