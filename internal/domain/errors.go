package domain

import "errors"

var (
	// ErrProductNotFound is returned when no product carries the requested box code
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrMalformedCatalog is returned when catalog data cannot be parsed or a
	// product record is structurally broken
	ErrMalformedCatalog = errors.New("malformed catalog data")

	// ErrCatalogUnavailable is returned when catalog files cannot be read
	ErrCatalogUnavailable = errors.New("catalog data unavailable")
)
