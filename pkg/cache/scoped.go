package cache

// ScopedKeyer wraps a Keyer with a prefix, giving each scope its own
// namespace. The CLI scopes keys by build version so that reports written
// by another release are never reused.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ReportKey generates a prefixed report key.
func (k *ScopedKeyer) ReportKey(itinHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.ReportKey(itinHash, opts)
}
