package solver

// Rule is a pure detector: given a board, it returns every deduction its
// technique currently supports, without mutating the board. The driver is
// responsible for deduplicating, filtering, and applying the result.
type Rule func(b *Board) []Deduction

// technique pairs a detector with the metadata needed to explain and
// enable/disable it.
type technique struct {
	Name       string
	Slug       string
	Tier       int
	Difficulty int
	Detect     Rule
	Enabled    bool
}

// Registry holds the tiered table of techniques, grouped by tier in
// registration order — the order the driver tries them in within a tier.
// Mirrors the teacher's TechniqueRegistry, minus the digit-candidate
// bookkeeping a tri-state board has no use for.
type Registry struct {
	tiers  [5][]*technique
	bySlug map[string]*technique
}

// NewRegistry builds the standard registry with every T1-T5 technique
// registered, in the tier order spec.md lists them.
func NewRegistry() *Registry {
	r := &Registry{bySlug: map[string]*technique{}}
	r.register(1, "T1.1", "Zero-clue", 1, DetectZeroClue)
	r.register(1, "T1.2", "Satisfied clue", 1, DetectSatisfiedClue)
	r.register(1, "T1.3", "Diagonal water", 1, DetectDiagonalWater)
	r.register(1, "T1.4", "Hint shape", 1, DetectHintShape)
	r.register(2, "T2.1", "Exact fit", 3, DetectExactFit)
	r.register(2, "T2.4", "Overflow prevention", 3, DetectOverflowPrevention)
	r.register(3, "T3.1", "Forced extension", 5, DetectForcedExtension)
	r.register(3, "T3.3", "Overlap", 6, DetectOverlap)
	r.register(3, "T3.4", "Three blocked sides", 5, DetectThreeBlockedSides)
	r.register(4, "T4.1", "Gap too small", 7, DetectGapTooSmall)
	r.register(4, "T4.2", "Fleet exhaustion", 7, DetectFleetExhaustion)
	r.register(4, "T4.3", "Cap at max", 8, DetectCapAtMax)
	r.register(4, "T4.4", "Prevent long join", 8, DetectPreventLongJoin)
	r.register(5, "T5.1", "Naked water", 9, DetectNakedWater)
	r.register(5, "T5.2", "Naked ship", 9, DetectNakedShip)
	return r
}

func (r *Registry) register(tier int, slug, name string, difficulty int, detect Rule) {
	t := &technique{Name: name, Slug: slug, Tier: tier, Difficulty: difficulty, Detect: detect, Enabled: true}
	r.tiers[tier-1] = append(r.tiers[tier-1], t)
	r.bySlug[slug] = t
}

// Tier returns the techniques registered for the given tier (1-5), in
// registration order.
func (r *Registry) Tier(tier int) []*technique {
	return r.tiers[tier-1]
}

// SetEnabled toggles a technique by slug, returning false if the slug is
// unknown. Used by tests that isolate a single technique.
func (r *Registry) SetEnabled(slug string, enabled bool) bool {
	t, ok := r.bySlug[slug]
	if !ok {
		return false
	}
	t.Enabled = enabled
	return true
}

// GetBySlug returns the technique registered under slug, if any.
func (r *Registry) GetBySlug(slug string) (*technique, bool) {
	t, ok := r.bySlug[slug]
	return t, ok
}
