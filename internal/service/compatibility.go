package service

import (
	"context"
	"fmt"
	"math"

	"github.com/duetmatch/duet/api/internal/model"
)

// CompatibilityService handles compatibility calculations over stored
// profiles.
type CompatibilityService struct {
	profileRepo ProfileRepository
}

// CompatibilityServiceConfig holds configuration for the compatibility service
type CompatibilityServiceConfig struct {
	ProfileRepo ProfileRepository
}

// NewCompatibilityService creates a new compatibility service
func NewCompatibilityService(cfg CompatibilityServiceConfig) *CompatibilityService {
	return &CompatibilityService{
		profileRepo: cfg.ProfileRepo,
	}
}

// Compare loads two stored profiles and computes their compatibility.
func (s *CompatibilityService) Compare(ctx context.Context, idA, idB string) (*model.CompatibilityResult, error) {
	a, err := s.profileRepo.GetByID(ctx, idA)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrProfileNotFound
	}

	b, err := s.profileRepo.GetByID(ctx, idB)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrProfileNotFound
	}

	return ComputeCompatibility(a, b), nil
}

// strengthRule adds a fixed sentence when a trait's similarity exceeds a
// threshold. Rules are evaluated in table order so result ordering is
// reproducible rule by rule.
type strengthRule struct {
	trait string
	above int
	text  string
}

// challengeRule adds a fixed challenge sentence, with a paired suggestion,
// when a trait's similarity falls below a threshold.
type challengeRule struct {
	trait      string
	below      int
	challenge  string
	suggestion string
}

var strengthRules = []strengthRule{
	{model.TraitEmotionalIntelligence, 70, "You read each other's emotional states well, which makes hard conversations easier."},
	{model.TraitCommunication, 70, "You share a communication style, so misunderstandings are rare and quickly cleared up."},
	{model.TraitTrust, 75, "You both extend trust readily, giving the relationship a secure foundation."},
	{model.TraitHumor, 75, "A shared sense of humor helps you defuse tension and enjoy everyday moments together."},
	{model.TraitEmpathy, 75, "You show each other similar levels of empathy, so neither of you feels unheard."},
	{model.TraitAmbition, 80, "Your ambitions are closely aligned, making it natural to plan a future together."},
}

var challengeRules = []challengeRule{
	{
		trait:      model.TraitExtraversion,
		below:      50,
		challenge:  "One of you recharges socially while the other needs quiet, which can strain weekend plans.",
		suggestion: "Alternate between social outings and quiet evenings so both of you get what restores you.",
	},
	{
		trait:      model.TraitEmotionalStability,
		below:      50,
		challenge:  "You handle stress very differently, and pressure may hit one of you much harder.",
		suggestion: "Agree on a signal for overwhelming days, and give each other space before talking things through.",
	},
	{
		trait:      model.TraitAdventurousness,
		below:      50,
		challenge:  "One of you craves novelty while the other prefers the familiar, which can make shared plans contentious.",
		suggestion: "Trade turns choosing activities: one familiar comfort for every new experiment.",
	},
	{
		trait:      model.TraitTraditionalism,
		below:      50,
		challenge:  "You hold quite different views on tradition and convention, which may surface around family occasions.",
		suggestion: "Talk early about which traditions matter to each of you and build your own shared ones.",
	},
	{
		trait:      model.TraitIndependence,
		below:      50,
		challenge:  "Your needs for personal space differ noticeably, and that gap can read as distance or clinginess.",
		suggestion: "Name your space needs explicitly instead of letting them be discovered through friction.",
	},
	{
		trait:      model.TraitIntimacy,
		below:      50,
		challenge:  "You differ in how much closeness you are comfortable with, physically or emotionally.",
		suggestion: "Move at the pace of whoever needs more time, and keep checking in about comfort levels.",
	},
}

const (
	manyMatchesStrength = "You match closely on many traits, which gives this pairing an unusually broad common ground."
	fallbackStrength    = "Every pairing has strengths; yours will show themselves as you spend time together."
	fallbackChallenge   = "No major friction points stand out, though every relationship takes work."
	fallbackSuggestion  = "Keep communicating openly about what each of you needs."
	lowScoreSuggestion  = "Focus on your shared interests and give differences time rather than forcing agreement."
	highScoreSuggestion = "You are highly compatible on paper; invest in shared experiences to turn that into something real."
)

// ComputeCompatibility compares two profiles trait by trait.
//
// It is a pure function of its inputs: deterministic, no I/O, and it never
// fails on structurally valid profiles. Per-trait similarity is
// 100 - |a - b|; similarities of 80 and above count as matched, below 50 as
// differences, and the band between is deliberately neutral. A profile
// without a stored MBTI type is classified on the fly rather than rejected.
func ComputeCompatibility(a, b *model.PersonalityProfile) *model.CompatibilityResult {
	result := &model.CompatibilityResult{
		TraitScores:   make(map[string]int, len(model.TraitKeys)),
		MatchedTraits: make([]string, 0),
		Differences:   make([]string, 0),
	}

	total := 0
	for _, key := range model.TraitKeys {
		diff := a.Traits.Score(key) - b.Traits.Score(key)
		if diff < 0 {
			diff = -diff
		}
		similarity := 100 - diff

		result.TraitScores[key] = similarity
		total += similarity

		if similarity >= model.MatchedTraitThreshold {
			result.MatchedTraits = append(result.MatchedTraits, model.TraitLabel(key))
		} else if similarity < model.DifferenceThreshold {
			result.Differences = append(result.Differences, model.TraitLabel(key))
		}
	}
	result.OverallScore = int(math.Round(float64(total) / float64(len(model.TraitKeys))))

	for _, rule := range strengthRules {
		if result.TraitScores[rule.trait] > rule.above {
			result.Strengths = append(result.Strengths, rule.text)
		}
	}
	if len(result.MatchedTraits) >= model.MinMatchedForBonus {
		result.Strengths = append(result.Strengths, manyMatchesStrength)
	}

	for _, rule := range challengeRules {
		if result.TraitScores[rule.trait] < rule.below {
			result.Challenges = append(result.Challenges, rule.challenge)
			result.Suggestions = append(result.Suggestions, rule.suggestion)
		}
	}

	if len(result.Strengths) == 0 {
		result.Strengths = append(result.Strengths, fallbackStrength)
	}
	if len(result.Challenges) == 0 {
		result.Challenges = append(result.Challenges, fallbackChallenge)
	}

	if result.OverallScore < model.LowOverallScoreBand {
		result.Suggestions = append(result.Suggestions, lowScoreSuggestion)
	}
	if result.OverallScore >= model.StrongOverallScoreBand {
		result.Suggestions = append(result.Suggestions, highScoreSuggestion)
	}
	if len(result.Suggestions) == 0 {
		result.Suggestions = append(result.Suggestions, fallbackSuggestion)
	}

	result.PersonalityTypeMatch = fmt.Sprintf("%s & %s", archetypeFor(a), archetypeFor(b))
	result.LoveLanguageMatch = describeLoveLanguages(a.Traits.LoveLanguage, b.Traits.LoveLanguage)

	return result
}

// archetypeFor falls back to classifying from traits when a profile has no
// stored MBTI type.
func archetypeFor(p *model.PersonalityProfile) string {
	code := p.MBTIType
	if code == "" {
		code = ClassifyMBTI(p.Traits)
	}
	return ArchetypeName(code)
}

// describeLoveLanguages is display only; love language never enters the
// numeric scoring.
func describeLoveLanguages(a, b string) string {
	if a == b {
		return fmt.Sprintf("You share a love language: %s", model.LoveLanguageLabel(a))
	}
	return fmt.Sprintf("%s meets %s", model.LoveLanguageLabel(a), model.LoveLanguageLabel(b))
}
