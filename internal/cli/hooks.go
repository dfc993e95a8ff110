package cli

import (
	"context"
	"maps"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/observability"
)

// logHooks forwards engine diagnostics to the CLI logger. Everything is
// logged at debug level except itineraries without brands. The orderer
// already warns about precedence cycles.
type logHooks struct {
	observability.NoopCacheHooks
	logger *log.Logger
}

func newLogHooks(logger *log.Logger) *logHooks {
	return &logHooks{logger: logger}
}

func (h *logHooks) OnPrecedenceCycle(firstSeen []brand.Code) {
	h.logger.Debug("brand precedence cycle", "order", firstSeen)
}

func (h *logHooks) OnUnorderedBrands(a, b brand.Code) {
	h.logger.Debug("brands outside precedence order", "a", a, "b", b)
}

func (h *logHooks) OnBrandTable(itin, stage string, cabin brand.Cabin, table brand.ItinBrands) {
	h.logger.Debug("brand table", "itin", itin, "stage", stage, "cabin", cabin, "segments", len(table), "depth", table.MaxLen())
}

func (h *logHooks) OnSpacesGenerated(itin string, cabin brand.Cabin, spaces []brand.Space) {
	h.logger.Debug("spaces generated", "itin", itin, "cabin", cabin, "count", len(spaces))
}

func (h *logHooks) OnCabinFiltered(itin string, cabin brand.Cabin, branded bool) {
	if !branded {
		h.logger.Debug("cabin has no brands", "itin", itin, "cabin", cabin)
	}
}

func (h *logHooks) OnNoApplicableBrands(itin string) {
	h.logger.Info("no applicable brands", "itin", itin)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

var (
	_ observability.BrandingHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
)

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
