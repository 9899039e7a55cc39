package auth

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

// JWKSFetcher fetches and caches the directory's published signing keys.
// Keys rotate rarely, so the set is cached with a TTL and refreshed
// eagerly when a lookup misses (to pick up a rotation without waiting
// for the cache to expire).
type JWKSFetcher struct {
	jwksURL    string
	httpClient *http.Client

	mu        sync.RWMutex
	set       jwk.Set
	expiresAt time.Time
	cacheTTL  time.Duration
}

// NewJWKSFetcher creates a JWKS fetcher for the directory's key endpoint.
func NewJWKSFetcher(jwksURL string, cacheTTL time.Duration) *JWKSFetcher {
	return &JWKSFetcher{
		jwksURL: jwksURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cacheTTL: cacheTTL,
	}
}

// PublicKey returns the raw public key for the given key ID.
// The result is suitable as a verification key for golang-jwt.
func (f *JWKSFetcher) PublicKey(ctx context.Context, kid string) (interface{}, error) {
	set, err := f.getSet(ctx)
	if err != nil {
		return nil, err
	}

	key, found := set.LookupKeyID(kid)
	if !found {
		// Key not in the cached set - the directory may have rotated.
		set, err = f.refresh(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh JWKS: %w", err)
		}
		key, found = set.LookupKeyID(kid)
		if !found {
			return nil, fmt.Errorf("key %q not found in directory JWKS", kid)
		}
	}

	var raw interface{}
	if err := key.Raw(&raw); err != nil {
		return nil, fmt.Errorf("failed to materialize public key: %w", err)
	}
	return raw, nil
}

// getSet returns the cached key set, fetching if missing or expired.
func (f *JWKSFetcher) getSet(ctx context.Context) (jwk.Set, error) {
	f.mu.RLock()
	set, expiresAt := f.set, f.expiresAt
	f.mu.RUnlock()

	if set != nil && time.Now().Before(expiresAt) {
		return set, nil
	}
	return f.refresh(ctx)
}

// refresh fetches the key set from the directory and replaces the cache.
func (f *JWKSFetcher) refresh(ctx context.Context) (jwk.Set, error) {
	set, err := jwk.Fetch(ctx, f.jwksURL, jwk.WithHTTPClient(f.httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS from %s: %w", f.jwksURL, err)
	}

	f.mu.Lock()
	f.set = set
	f.expiresAt = time.Now().Add(f.cacheTTL)
	f.mu.Unlock()

	return set, nil
}
