// Package observability provides hooks for diagnostics, metrics and tracing.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific backends. Consumers register hooks at startup to receive events
// about brand ordering, option-space generation, parity and caching.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The branding engine never fails because of a diagnostic condition. Anomalies
// such as a brand-ordering cycle are recovered locally and reported here.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBrandingHooks(&myBrandingHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Branding().OnPrecedenceCycle(firstSeen)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/vnalla55/farebrand/pkg/brand"
)

// Table stages reported through BrandingHooks.OnBrandTable.
const (
	StageUnfiltered = "unfiltered"
	StageFiltered   = "filtered"
)

// =============================================================================
// Branding Hooks
// =============================================================================

// BrandingHooks receives diagnostics from the branding engine.
type BrandingHooks interface {
	// OnPrecedenceCycle reports that brand precedence could not be resolved
	// and the first-seen order is used instead.
	OnPrecedenceCycle(firstSeen []brand.Code)

	// OnUnorderedBrands reports a comparison involving a brand missing from
	// the resolved order; lexical order was used.
	OnUnorderedBrands(a, b brand.Code)

	// OnBrandTable reports the per-segment carrier/brand table for a cabin
	// (CabinUnknown when not layering) before and after filtering.
	OnBrandTable(itin, stage string, cabin brand.Cabin, table brand.ItinBrands)

	// OnSpacesGenerated reports the spaces produced for a cabin.
	OnSpacesGenerated(itin string, cabin brand.Cabin, spaces []brand.Space)

	// OnCabinFiltered reports whether a cabin kept any real brand after
	// filtering.
	OnCabinFiltered(itin string, cabin brand.Cabin, branded bool)

	// OnNoApplicableBrands reports that an itinerary has nothing to offer.
	OnNoApplicableBrands(itin string)
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the batch runner.
type PipelineHooks interface {
	OnItineraryStart(ctx context.Context, itin string)
	OnItineraryComplete(ctx context.Context, itin string, spaces int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBrandingHooks is a no-op implementation of BrandingHooks.
type NoopBrandingHooks struct{}

func (NoopBrandingHooks) OnPrecedenceCycle([]brand.Code)                             {}
func (NoopBrandingHooks) OnUnorderedBrands(brand.Code, brand.Code)                   {}
func (NoopBrandingHooks) OnBrandTable(string, string, brand.Cabin, brand.ItinBrands) {}
func (NoopBrandingHooks) OnSpacesGenerated(string, brand.Cabin, []brand.Space)       {}
func (NoopBrandingHooks) OnCabinFiltered(string, brand.Cabin, bool)                  {}
func (NoopBrandingHooks) OnNoApplicableBrands(string)                                {}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnItineraryStart(context.Context, string) {}
func (NoopPipelineHooks) OnItineraryComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	brandingHooks BrandingHooks = NoopBrandingHooks{}
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetBrandingHooks registers custom branding hooks.
// This should be called once at application startup before any branding runs.
func SetBrandingHooks(h BrandingHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		brandingHooks = h
	}
}

// SetPipelineHooks registers custom pipeline hooks.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Branding returns the registered branding hooks.
func Branding() BrandingHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return brandingHooks
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	brandingHooks = NoopBrandingHooks{}
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
