package cache

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey is the key of the computed layout and boards of a shelf.
	LayoutKey(shelfHash string) string
	// ArtifactKey is the key of a rendered file in the given format.
	ArtifactKey(shelfHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// DefaultKeyer builds keys of the form kind:sha256(parts).
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements [Keyer].
func (DefaultKeyer) LayoutKey(shelfHash string) string {
	return hashKey("layout", shelfHash)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(shelfHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", shelfHash, opts)
}
