package model

// CompatibilityResult is the full pairwise comparison of two profiles.
//
// It is always computed fresh and never persisted or mutated; it carries no
// reference back to the profiles it was derived from.
type CompatibilityResult struct {
	// OverallScore is the rounded mean of all per-trait similarities, 0-100.
	OverallScore int `json:"overallScore"`

	// TraitScores maps each trait key to a similarity score 0-100
	// (100 - |a - b|).
	TraitScores map[string]int `json:"traitScores"`

	// MatchedTraits lists display labels for traits with similarity >= 80;
	// Differences lists labels for similarity < 50. Similarities in [50,80)
	// land in neither list. Both follow the fixed trait ordering.
	MatchedTraits []string `json:"matchedTraits"`
	Differences   []string `json:"differences"`

	// Narrative lists. Each is non-empty: when no specific rule fires, a
	// single fallback sentence is supplied.
	Strengths   []string `json:"strengths"`
	Challenges  []string `json:"challenges"`
	Suggestions []string `json:"suggestions"`

	// PersonalityTypeMatch combines both profiles' MBTI archetype names.
	PersonalityTypeMatch string `json:"personalityTypeMatch"`

	// LoveLanguageMatch describes both profiles' love languages. Display
	// only; love language never contributes to numeric scoring.
	LoveLanguageMatch string `json:"loveLanguageMatch"`
}

// Compatibility classification thresholds. Similarities in [50,80) are a
// deliberate neutral band: neither matched nor flagged as a difference.
const (
	MatchedTraitThreshold  = 80
	DifferenceThreshold    = 50
	MinMatchedForBonus     = 5
	LowOverallScoreBand    = 60
	StrongOverallScoreBand = 80
)
