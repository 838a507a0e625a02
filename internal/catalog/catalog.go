package catalog

import (
	"fmt"

	"github.com/duetmatch/duet/api/internal/model"
)

// LoveLanguageSource maps a love-language candidate to the question IDs
// whose raw answers are summed for it. The table order is the tie-break
// order: on equal sums the earlier entry wins.
type LoveLanguageSource struct {
	Language    string
	QuestionIDs []string
}

// loveLanguageSources replaces the original's inline question-id literals
// with a declarative table validated against the catalog at load time.
var loveLanguageSources = []LoveLanguageSource{
	{Language: model.LoveLanguageQualityTime, QuestionIDs: []string{"q77", "q78"}},
	{Language: model.LoveLanguageWordsOfAffirmation, QuestionIDs: []string{"q79", "q80"}},
	{Language: model.LoveLanguageActsOfService, QuestionIDs: []string{"q81", "q82"}},
	{Language: model.LoveLanguagePhysicalTouch, QuestionIDs: []string{"q83", "q84"}},
	{Language: model.LoveLanguageReceivingGifts, QuestionIDs: []string{"q85", "q86"}},
}

// Questions returns the built-in question catalog. The returned slice is
// shared package data: callers must treat it as read-only.
func Questions() []*model.Question {
	return questions
}

// ByID returns the catalog question with the given ID, or nil.
func ByID(id string) *model.Question {
	for _, q := range questions {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// ByCategory returns all catalog questions in a category, in catalog order.
func ByCategory(category string) []*model.Question {
	matched := make([]*model.Question, 0)
	for _, q := range questions {
		if q.Category == category {
			matched = append(matched, q)
		}
	}
	return matched
}

// LoveLanguageSources returns the declarative love-language derivation
// table in its fixed tie-break order.
func LoveLanguageSources() []LoveLanguageSource {
	return loveLanguageSources
}

// Validate checks catalog integrity. It is called once at startup so a
// malformed catalog fails fast instead of silently skewing aggregation.
func Validate() error {
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("catalog: question with empty id (%q)", q.Text)
		}
		if seen[q.ID] {
			return fmt.Errorf("catalog: duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if q.Text == "" {
			return fmt.Errorf("catalog: question %s has no text", q.ID)
		}
		if !model.IsValidQuestionCategory(q.Category) {
			return fmt.Errorf("catalog: question %s has unknown category %q", q.ID, q.Category)
		}
		if q.Weight == 0 {
			return fmt.Errorf("catalog: question %s has zero weight", q.ID)
		}

		switch q.Kind {
		case model.QuestionKindTrait:
			if !model.IsValidTraitKey(q.Trait) {
				return fmt.Errorf("catalog: question %s has unknown trait %q", q.ID, q.Trait)
			}
		case model.QuestionKindMBTI, model.QuestionKindEnneagram, model.QuestionKindLoveLanguage:
			if q.Trait != "" {
				return fmt.Errorf("catalog: question %s is %s but carries trait %q", q.ID, q.Kind, q.Trait)
			}
		default:
			return fmt.Errorf("catalog: question %s has unknown kind %q", q.ID, q.Kind)
		}
	}

	seenLang := make(map[string]bool, len(loveLanguageSources))
	for _, src := range loveLanguageSources {
		if seenLang[src.Language] {
			return fmt.Errorf("catalog: duplicate love-language entry %q", src.Language)
		}
		seenLang[src.Language] = true

		if len(src.QuestionIDs) == 0 {
			return fmt.Errorf("catalog: love language %q has no source questions", src.Language)
		}
		for _, id := range src.QuestionIDs {
			q := ByID(id)
			if q == nil {
				return fmt.Errorf("catalog: love language %q references missing question %q", src.Language, id)
			}
			if q.Kind != model.QuestionKindLoveLanguage {
				return fmt.Errorf("catalog: love language %q references %s which is kind %q", src.Language, id, q.Kind)
			}
		}
	}

	return nil
}
