// Package catalog holds the static built-in question catalog for the Duet
// questionnaire.
//
// The catalog is fixed data compiled into the binary: roughly one hundred
// Likert-scored questions, each tagged with a category, a kind, a mandatory
// flag, and a signed contribution weight. It is loaded once and never
// mutated at runtime.
//
// # Question Kinds
//
// Trait questions feed the generic weighted aggregation in the service
// layer. Love-language questions are scored separately through the
// declarative source table in this package. MBTI and enneagram questions
// are sentinels excluded from aggregation (the MBTI type is derived from
// aggregated traits, not from its sentinel questions directly).
//
// # Integrity
//
// Validate is called at startup and fails fast on duplicate IDs, zero
// weights, unknown categories or trait keys, and love-language table
// entries that reference questions missing from the catalog.
package catalog
