package diagconsts

// FontTier maps a minimum IR priority to the smallest acceptable font size,
// in pixels, for elements at or above that priority.
type FontTier struct {
	Priority int     `yaml:"priority" json:"priority"`
	MinPx    float64 `yaml:"minPx" json:"minPx"`
}

// DefaultFontTiers is the minimum-font-by-priority table, ordered highest
// priority threshold first.
func DefaultFontTiers() []FontTier {
	return []FontTier{
		{Priority: 90, MinPx: 32},
		{Priority: 50, MinPx: 16},
	}
}

// ResolveMinFont scans tiers (assumed descending by Priority) and returns
// the minimum px of the first tier whose threshold is <= priority, and
// whether any tier matched.
func ResolveMinFont(tiers []FontTier, priority int) (float64, bool) {
	for _, t := range tiers {
		if t.Priority <= priority {
			return t.MinPx, true
		}
	}
	return 0, false
}
