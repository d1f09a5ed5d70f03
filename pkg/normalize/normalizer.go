package normalize

// Normalizer resolves canonical records from upstream objects using a
// KeyTable. The zero value is not usable; use New or the package-level
// functions, which share a Normalizer built from DefaultKeys.
type Normalizer struct {
	keys KeyTable
}

// Option configures a Normalizer.
type Option func(*Normalizer) error

// WithAliases appends extra upstream keys to the named fields.
func WithAliases(aliases map[string][]string) Option {
	return func(n *Normalizer) error {
		keys, err := n.keys.Extend(aliases)
		if err != nil {
			return err
		}
		n.keys = keys
		return nil
	}
}

// New creates a Normalizer starting from DefaultKeys.
func New(opts ...Option) (*Normalizer, error) {
	n := &Normalizer{keys: DefaultKeys.Clone()}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Keys returns a copy of the table in use.
func (n *Normalizer) Keys() KeyTable {
	return n.keys.Clone()
}

var defaultNormalizer = &Normalizer{keys: DefaultKeys.Clone()}

// NormalizeDrama maps obj with the default key table.
func NormalizeDrama(obj Object) Drama {
	return defaultNormalizer.Drama(obj)
}

// NormalizeEpisode maps obj with the default key table.
func NormalizeEpisode(obj Object, index int) Episode {
	return defaultNormalizer.Episode(obj, index)
}

// NormalizeCategory maps obj with the default key table.
func NormalizeCategory(obj Object) Category {
	return defaultNormalizer.Category(obj)
}

// ResolveQualities extracts stream options with the default key table.
func ResolveQualities(obj Object) []QualityOption {
	return defaultNormalizer.Qualities(obj)
}
