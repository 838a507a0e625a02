// Package fixtures provides test data factories for acceptance testing.
//
// Answer builders produce complete questionnaire answer sets with known
// aggregation outcomes, and the profile factory stores fully derived
// profiles through a repository. Factories use sensible defaults with
// customization via option functions.
//
// Usage:
//
//	f := fixtures.New(repo)
//	p := f.CreateProfile(t, func(o *fixtures.ProfileOpts) {
//	    o.Answers = fixtures.WithTrait(fixtures.NeutralAnswers(), model.TraitExtraversion, 5)
//	})
package fixtures
