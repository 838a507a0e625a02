package service

import "github.com/duetmatch/duet/api/internal/model"

// ClassifyMBTI derives a 4-letter MBTI code from four aggregated traits.
//
// Each letter uses a strict > 50 comparison, so an exactly-neutral trait
// resolves to the low branch (I, S, T, J). This boundary is part of the
// classification contract, not an off-by-one.
func ClassifyMBTI(traits model.PersonalityTraits) string {
	code := make([]byte, 4)

	if traits.Extraversion > 50 {
		code[0] = 'E'
	} else {
		code[0] = 'I'
	}
	if traits.Openness > 50 {
		code[1] = 'N'
	} else {
		code[1] = 'S'
	}
	if traits.Agreeableness > 50 {
		code[2] = 'F'
	} else {
		code[2] = 'T'
	}
	if traits.Conscientiousness > 50 {
		code[3] = 'P'
	} else {
		code[3] = 'J'
	}

	return string(code)
}

// archetypeNames maps each of the 16 MBTI codes to its display name.
var archetypeNames = map[string]string{
	"INTJ": "The Architect",
	"INTP": "The Thinker",
	"ENTJ": "The Commander",
	"ENTP": "The Debater",
	"INFJ": "The Advocate",
	"INFP": "The Mediator",
	"ENFJ": "The Protagonist",
	"ENFP": "The Campaigner",
	"ISTJ": "The Logistician",
	"ISFJ": "The Defender",
	"ESTJ": "The Executive",
	"ESFJ": "The Consul",
	"ISTP": "The Virtuoso",
	"ISFP": "The Adventurer",
	"ESTP": "The Entrepreneur",
	"ESFP": "The Entertainer",
}

// ArchetypeName returns the display name for an MBTI code. Unrecognized
// codes map to "Unknown" rather than failing.
func ArchetypeName(code string) string {
	if name, ok := archetypeNames[code]; ok {
		return name
	}
	return "Unknown"
}
