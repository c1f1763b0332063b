package cache

// ScopedKeyer prefixes every key of an inner keyer, so several deployments
// can share one Redis without seeing each other's entries:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "stackshelf:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means the
// default one.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey implements [Keyer].
func (k *ScopedKeyer) LayoutKey(shelfHash string) string {
	return k.prefix + k.inner.LayoutKey(shelfHash)
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(shelfHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(shelfHash, opts)
}
