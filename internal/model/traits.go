package model

// Trait keys. These are the wire-format identifiers used in stored profiles
// and in CompatibilityResult.TraitScores, so they must stay stable.
const (
	TraitOpenness              = "openness"
	TraitConscientiousness     = "conscientiousness"
	TraitExtraversion          = "extraversion"
	TraitAgreeableness         = "agreeableness"
	TraitEmotionalStability    = "emotionalStability"
	TraitEmotionalIntelligence = "emotionalIntelligence"
	TraitEmpathy               = "empathy"
	TraitCommunication         = "communication"
	TraitTrust                 = "trust"
	TraitIndependence          = "independence"
	TraitAdventurousness       = "adventurousness"
	TraitAmbition              = "ambition"
	TraitSpirituality          = "spirituality"
	TraitTraditionalism        = "traditionalism"
	TraitHumor                 = "humor"
	TraitRomance               = "romance"
	TraitSociability           = "sociability"
	TraitPatience              = "patience"
	TraitIntimacy              = "intimacy"
)

// TraitKeys lists every numeric trait in a fixed order. Compatibility
// scoring, trait listings, and narrative rules all iterate this slice, so
// result ordering is deterministic.
var TraitKeys = []string{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitEmotionalStability,
	TraitEmotionalIntelligence,
	TraitEmpathy,
	TraitCommunication,
	TraitTrust,
	TraitIndependence,
	TraitAdventurousness,
	TraitAmbition,
	TraitSpirituality,
	TraitTraditionalism,
	TraitHumor,
	TraitRomance,
	TraitSociability,
	TraitPatience,
	TraitIntimacy,
}

// NeutralTraitScore is the default for traits with no contributing answers.
const NeutralTraitScore = 50

// PersonalityTraits is the dense trait record derived from questionnaire
// answers. Every numeric field is an integer in [0,100]; 50 is neutral.
// JSON keys match the stored profile format and the trait key constants.
type PersonalityTraits struct {
	Openness              int `json:"openness"`
	Conscientiousness     int `json:"conscientiousness"`
	Extraversion          int `json:"extraversion"`
	Agreeableness         int `json:"agreeableness"`
	EmotionalStability    int `json:"emotionalStability"`
	EmotionalIntelligence int `json:"emotionalIntelligence"`
	Empathy               int `json:"empathy"`
	Communication         int `json:"communication"`
	Trust                 int `json:"trust"`
	Independence          int `json:"independence"`
	Adventurousness       int `json:"adventurousness"`
	Ambition              int `json:"ambition"`
	Spirituality          int `json:"spirituality"`
	Traditionalism        int `json:"traditionalism"`
	Humor                 int `json:"humor"`
	Romance               int `json:"romance"`
	Sociability           int `json:"sociability"`
	Patience              int `json:"patience"`
	Intimacy              int `json:"intimacy"`

	LoveLanguage string `json:"loveLanguage"`
}

// NewPersonalityTraits returns a traits record with every numeric field at
// the neutral score and the default love language.
func NewPersonalityTraits() PersonalityTraits {
	t := PersonalityTraits{LoveLanguage: DefaultLoveLanguage}
	for _, key := range TraitKeys {
		t.SetScore(key, NeutralTraitScore)
	}
	return t
}

func (t *PersonalityTraits) field(key string) *int {
	switch key {
	case TraitOpenness:
		return &t.Openness
	case TraitConscientiousness:
		return &t.Conscientiousness
	case TraitExtraversion:
		return &t.Extraversion
	case TraitAgreeableness:
		return &t.Agreeableness
	case TraitEmotionalStability:
		return &t.EmotionalStability
	case TraitEmotionalIntelligence:
		return &t.EmotionalIntelligence
	case TraitEmpathy:
		return &t.Empathy
	case TraitCommunication:
		return &t.Communication
	case TraitTrust:
		return &t.Trust
	case TraitIndependence:
		return &t.Independence
	case TraitAdventurousness:
		return &t.Adventurousness
	case TraitAmbition:
		return &t.Ambition
	case TraitSpirituality:
		return &t.Spirituality
	case TraitTraditionalism:
		return &t.Traditionalism
	case TraitHumor:
		return &t.Humor
	case TraitRomance:
		return &t.Romance
	case TraitSociability:
		return &t.Sociability
	case TraitPatience:
		return &t.Patience
	case TraitIntimacy:
		return &t.Intimacy
	}
	return nil
}

// Score returns the value for a trait key, or the neutral score for an
// unknown key.
func (t *PersonalityTraits) Score(key string) int {
	if f := t.field(key); f != nil {
		return *f
	}
	return NeutralTraitScore
}

// SetScore sets the value for a trait key. Unknown keys are ignored.
func (t *PersonalityTraits) SetScore(key string, value int) {
	if f := t.field(key); f != nil {
		*f = value
	}
}

// IsValidTraitKey reports whether key names one of the numeric traits.
func IsValidTraitKey(key string) bool {
	var t PersonalityTraits
	return t.field(key) != nil
}

// TraitLabel returns the human-readable display label for a trait key.
func TraitLabel(key string) string {
	switch key {
	case TraitOpenness:
		return "Openness"
	case TraitConscientiousness:
		return "Conscientiousness"
	case TraitExtraversion:
		return "Extraversion"
	case TraitAgreeableness:
		return "Agreeableness"
	case TraitEmotionalStability:
		return "Emotional Stability"
	case TraitEmotionalIntelligence:
		return "Emotional Intelligence"
	case TraitEmpathy:
		return "Empathy"
	case TraitCommunication:
		return "Communication"
	case TraitTrust:
		return "Trust"
	case TraitIndependence:
		return "Independence"
	case TraitAdventurousness:
		return "Adventurousness"
	case TraitAmbition:
		return "Ambition"
	case TraitSpirituality:
		return "Spirituality"
	case TraitTraditionalism:
		return "Traditionalism"
	case TraitHumor:
		return "Humor"
	case TraitRomance:
		return "Romance"
	case TraitSociability:
		return "Sociability"
	case TraitPatience:
		return "Patience"
	case TraitIntimacy:
		return "Intimacy"
	default:
		return key
	}
}

// Love language labels. These are categorical, compared for display only,
// never part of numeric compatibility scoring.
const (
	LoveLanguageQualityTime        = "quality_time"
	LoveLanguageWordsOfAffirmation = "words_of_affirmation"
	LoveLanguageActsOfService      = "acts_of_service"
	LoveLanguagePhysicalTouch      = "physical_touch"
	LoveLanguageReceivingGifts     = "receiving_gifts"
)

// DefaultLoveLanguage applies when no love-language questions were answered.
// quality_time is also first in the derivation table, so an all-neutral
// answer set resolves to it by the fixed tie-break order.
const DefaultLoveLanguage = LoveLanguageQualityTime

// LoveLanguages lists all labels in the fixed derivation order.
var LoveLanguages = []string{
	LoveLanguageQualityTime,
	LoveLanguageWordsOfAffirmation,
	LoveLanguageActsOfService,
	LoveLanguagePhysicalTouch,
	LoveLanguageReceivingGifts,
}

// LoveLanguageLabel returns the human-readable label for a love language.
func LoveLanguageLabel(language string) string {
	switch language {
	case LoveLanguageQualityTime:
		return "Quality Time"
	case LoveLanguageWordsOfAffirmation:
		return "Words of Affirmation"
	case LoveLanguageActsOfService:
		return "Acts of Service"
	case LoveLanguagePhysicalTouch:
		return "Physical Touch"
	case LoveLanguageReceivingGifts:
		return "Receiving Gifts"
	default:
		return language
	}
}
