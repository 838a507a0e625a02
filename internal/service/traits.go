package service

import (
	"math"

	"github.com/duetmatch/duet/api/internal/catalog"
	"github.com/duetmatch/duet/api/internal/model"
)

// AggregateTraits converts a sparse answer map into a dense trait record.
//
// Every numeric trait starts at the neutral score and is only moved by
// trait-kind questions that were actually answered. A positive question
// weight means agreement raises the trait; a negative weight inverts the
// Likert scale so agreement lowers it. The per-trait score is the weighted
// mean of contributions, rescaled from [1,5] to [0,100] and rounded.
//
// An empty answer map is valid and yields an all-default record. Answers
// outside [1,5] are a caller contract violation; they are clamped here so
// the output range invariant holds regardless (the boundary validation in
// the profile service rejects them before they ever reach aggregation).
func AggregateTraits(answers map[string]int, questions []*model.Question) model.PersonalityTraits {
	traits := model.NewPersonalityTraits()

	sums := make(map[string]float64)
	weightTotals := make(map[string]float64)

	for _, q := range questions {
		if !q.IsTrait() {
			continue
		}
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		answer = clampAnswer(answer)

		weight := math.Abs(q.Weight)
		value := float64(answer)
		if q.Weight < 0 {
			// Invert the scale so agreeing still pushes the trait in the
			// intended direction.
			value = float64(6 - answer)
		}

		sums[q.Trait] += value * weight
		weightTotals[q.Trait] += weight
	}

	for trait, total := range weightTotals {
		if total <= 0 {
			continue
		}
		score := int(math.Round(sums[trait] / total / 5 * 100))
		traits.SetScore(trait, score)
	}

	traits.LoveLanguage = deriveLoveLanguage(answers)

	return traits
}

// deriveLoveLanguage sums raw answers per candidate using the declarative
// source table, defaulting missing answers to neutral. The strictly
// greatest sum wins; on ties the earlier table entry wins, so an
// all-neutral answer set resolves to the default love language.
func deriveLoveLanguage(answers map[string]int) string {
	best := model.DefaultLoveLanguage
	bestSum := -1

	for _, src := range catalog.LoveLanguageSources() {
		sum := 0
		for _, id := range src.QuestionIDs {
			answer, ok := answers[id]
			if !ok {
				answer = model.NeutralAnswerValue
			}
			sum += clampAnswer(answer)
		}
		if sum > bestSum {
			best = src.Language
			bestSum = sum
		}
	}

	return best
}

// MissingMandatory returns the IDs of mandatory questions absent from the
// answer map, in catalog order. A profile cannot be created while any
// remain.
func MissingMandatory(answers map[string]int, questions []*model.Question) []string {
	var missing []string
	for _, q := range questions {
		if !q.Mandatory {
			continue
		}
		if _, ok := answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

func clampAnswer(answer int) int {
	if answer < model.MinAnswerValue {
		return model.MinAnswerValue
	}
	if answer > model.MaxAnswerValue {
		return model.MaxAnswerValue
	}
	return answer
}
