package service

import (
	"testing"

	"github.com/duetmatch/duet/api/internal/catalog"
	"github.com/duetmatch/duet/api/internal/model"
)

func TestAggregateTraits_EmptyAnswers_AllNeutral(t *testing.T) {
	t.Parallel()

	traits := AggregateTraits(map[string]int{}, catalog.Questions())

	for _, key := range model.TraitKeys {
		if got := traits.Score(key); got != model.NeutralTraitScore {
			t.Errorf("trait %s: expected %d, got %d", key, model.NeutralTraitScore, got)
		}
	}
	if traits.LoveLanguage != model.DefaultLoveLanguage {
		t.Errorf("expected default love language %s, got %s", model.DefaultLoveLanguage, traits.LoveLanguage)
	}
}

func TestAggregateTraits_SinglePositiveQuestion(t *testing.T) {
	t.Parallel()

	// q1 is a positive-weight openness question; a strong-agree answer
	// maxes the trait, a strong-disagree bottoms it at 20 (answer 1 of 5).
	traits := AggregateTraits(map[string]int{"q1": 5}, catalog.Questions())
	if got := traits.Openness; got != 100 {
		t.Errorf("expected openness 100, got %d", got)
	}

	traits = AggregateTraits(map[string]int{"q1": 1}, catalog.Questions())
	if got := traits.Openness; got != 20 {
		t.Errorf("expected openness 20, got %d", got)
	}
}

func TestAggregateTraits_NegativeWeightInverts(t *testing.T) {
	t.Parallel()

	// q3 is a negative-weight openness question: disagreeing raises the
	// trait, agreeing lowers it.
	traits := AggregateTraits(map[string]int{"q3": 1}, catalog.Questions())
	if got := traits.Openness; got != 100 {
		t.Errorf("expected openness 100 for strong disagreement, got %d", got)
	}

	traits = AggregateTraits(map[string]int{"q3": 5}, catalog.Questions())
	if got := traits.Openness; got != 20 {
		t.Errorf("expected openness 20 for strong agreement, got %d", got)
	}
}

func TestAggregateTraits_WeightedMean(t *testing.T) {
	t.Parallel()

	// q1 (weight 5, answer 5) contributes 25; q3 (weight -3, answer 5)
	// inverts to 1 and contributes 3. (25+3)/(5+3) = 3.5 -> 70.
	traits := AggregateTraits(map[string]int{"q1": 5, "q3": 5}, catalog.Questions())
	if got := traits.Openness; got != 70 {
		t.Errorf("expected openness 70, got %d", got)
	}
}

func TestAggregateTraits_UntouchedTraitsStayNeutral(t *testing.T) {
	t.Parallel()

	traits := AggregateTraits(map[string]int{"q1": 5}, catalog.Questions())

	for _, key := range model.TraitKeys {
		if key == model.TraitOpenness {
			continue
		}
		if got := traits.Score(key); got != model.NeutralTraitScore {
			t.Errorf("trait %s: expected untouched neutral %d, got %d", key, model.NeutralTraitScore, got)
		}
	}
}

func TestAggregateTraits_ScoresStayInRange(t *testing.T) {
	t.Parallel()

	for _, answer := range []int{1, 2, 3, 4, 5} {
		answers := make(map[string]int)
		for _, q := range catalog.Questions() {
			answers[q.ID] = answer
		}

		traits := AggregateTraits(answers, catalog.Questions())
		for _, key := range model.TraitKeys {
			got := traits.Score(key)
			if got < 0 || got > 100 {
				t.Errorf("answer %d, trait %s: score %d out of range", answer, key, got)
			}
		}
	}
}

func TestAggregateTraits_OutOfRangeAnswersClamped(t *testing.T) {
	t.Parallel()

	high := AggregateTraits(map[string]int{"q1": 99}, catalog.Questions())
	if got := high.Openness; got != 100 {
		t.Errorf("expected clamped high answer to score 100, got %d", got)
	}

	low := AggregateTraits(map[string]int{"q1": -7}, catalog.Questions())
	if got := low.Openness; got != 20 {
		t.Errorf("expected clamped low answer to score 20, got %d", got)
	}
}

func TestDeriveLoveLanguage_AllNeutral_Default(t *testing.T) {
	t.Parallel()

	answers := make(map[string]int)
	for _, src := range catalog.LoveLanguageSources() {
		for _, id := range src.QuestionIDs {
			answers[id] = 3
		}
	}

	if got := deriveLoveLanguage(answers); got != model.DefaultLoveLanguage {
		t.Errorf("expected tie to resolve to %s, got %s", model.DefaultLoveLanguage, got)
	}
}

func TestDeriveLoveLanguage_HighestSumWins(t *testing.T) {
	t.Parallel()

	answers := make(map[string]int)
	for _, src := range catalog.LoveLanguageSources() {
		value := 2
		if src.Language == model.LoveLanguageActsOfService {
			value = 5
		}
		for _, id := range src.QuestionIDs {
			answers[id] = value
		}
	}

	if got := deriveLoveLanguage(answers); got != model.LoveLanguageActsOfService {
		t.Errorf("expected %s, got %s", model.LoveLanguageActsOfService, got)
	}
}

func TestDeriveLoveLanguage_MissingAnswersDefaultNeutral(t *testing.T) {
	t.Parallel()

	// Only one language answered, slightly above neutral; the rest are
	// unanswered and assumed neutral, so the answered one wins.
	answers := make(map[string]int)
	for _, src := range catalog.LoveLanguageSources() {
		if src.Language != model.LoveLanguageReceivingGifts {
			continue
		}
		for _, id := range src.QuestionIDs {
			answers[id] = 4
		}
	}

	if got := deriveLoveLanguage(answers); got != model.LoveLanguageReceivingGifts {
		t.Errorf("expected %s, got %s", model.LoveLanguageReceivingGifts, got)
	}
}

func TestMissingMandatory(t *testing.T) {
	t.Parallel()

	answers := make(map[string]int)
	var skipped string
	for _, q := range catalog.Questions() {
		if q.Mandatory && skipped == "" {
			skipped = q.ID
			continue
		}
		answers[q.ID] = 3
	}

	missing := MissingMandatory(answers, catalog.Questions())
	if len(missing) != 1 || missing[0] != skipped {
		t.Errorf("expected missing [%s], got %v", skipped, missing)
	}

	answers[skipped] = 3
	if missing := MissingMandatory(answers, catalog.Questions()); len(missing) != 0 {
		t.Errorf("expected no missing mandatory questions, got %v", missing)
	}
}
