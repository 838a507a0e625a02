package model

// QuestionKind discriminates how a question contributes to a profile.
// Only trait questions feed the generic weighted aggregation; the other
// kinds are resolved by specialized logic (or ignored, for enneagram).
type QuestionKind string

const (
	QuestionKindTrait        QuestionKind = "trait"
	QuestionKindMBTI         QuestionKind = "mbti"
	QuestionKindEnneagram    QuestionKind = "enneagram"
	QuestionKindLoveLanguage QuestionKind = "love_language"
)

// Question represents a single questionnaire entry.
// Answers are Likert values in [1,5] (strongly disagree..strongly agree).
type Question struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Category string       `json:"category"`
	Kind     QuestionKind `json:"kind"`
	// Trait is the trait key this question contributes to.
	// Set only when Kind == QuestionKindTrait.
	Trait string `json:"trait,omitempty"`
	// Mandatory questions must be answered before a profile can be created.
	Mandatory bool `json:"mandatory"`
	// Weight is a nonzero signed contribution weight. A negative weight
	// inverts the Likert scale: agreeing pushes the trait down.
	Weight float64 `json:"weight"`
}

// IsTrait reports whether this question feeds generic trait aggregation.
func (q *Question) IsTrait() bool {
	return q.Kind == QuestionKindTrait && q.Trait != ""
}

// QuestionCategory constants
const (
	QuestionCategoryPersonality   = "personality"
	QuestionCategoryEmotional     = "emotional"
	QuestionCategorySocial        = "social"
	QuestionCategoryLifestyle     = "lifestyle"
	QuestionCategoryValues        = "values"
	QuestionCategoryRelationship  = "relationship"
	QuestionCategoryCommunication = "communication"
	QuestionCategoryIntimacy      = "intimacy"
	QuestionCategoryConflict      = "conflict"
	QuestionCategoryFuture        = "future"
)

// QuestionCategories lists all categories in display order.
var QuestionCategories = []string{
	QuestionCategoryPersonality,
	QuestionCategoryEmotional,
	QuestionCategorySocial,
	QuestionCategoryLifestyle,
	QuestionCategoryValues,
	QuestionCategoryRelationship,
	QuestionCategoryCommunication,
	QuestionCategoryIntimacy,
	QuestionCategoryConflict,
	QuestionCategoryFuture,
}

// IsValidQuestionCategory reports whether category is one of the fixed set.
func IsValidQuestionCategory(category string) bool {
	for _, c := range QuestionCategories {
		if c == category {
			return true
		}
	}
	return false
}

// QuestionCategoryInfo provides display information for a category
type QuestionCategoryInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// GetQuestionCategories returns all question categories with display info
func GetQuestionCategories() []QuestionCategoryInfo {
	return []QuestionCategoryInfo{
		{ID: QuestionCategoryPersonality, Label: "Personality"},
		{ID: QuestionCategoryEmotional, Label: "Emotional Life"},
		{ID: QuestionCategorySocial, Label: "Social Style"},
		{ID: QuestionCategoryLifestyle, Label: "Lifestyle"},
		{ID: QuestionCategoryValues, Label: "Values & Ethics"},
		{ID: QuestionCategoryRelationship, Label: "Relationships"},
		{ID: QuestionCategoryCommunication, Label: "Communication"},
		{ID: QuestionCategoryIntimacy, Label: "Intimacy"},
		{ID: QuestionCategoryConflict, Label: "Conflict"},
		{ID: QuestionCategoryFuture, Label: "Future Plans"},
	}
}

// Likert answer bounds
const (
	MinAnswerValue = 1
	MaxAnswerValue = 5
	// NeutralAnswerValue substitutes for missing answers in love-language
	// derivation.
	NeutralAnswerValue = 3
)
