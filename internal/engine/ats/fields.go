package ats

import (
	"fmt"
	"sort"
	"strings"
)

// Field-match point weights: required skills count triple, preferred double,
// keyword phrases single.
const (
	requiredPoints  = 3
	preferredPoints = 2
	keywordPoints   = 1
)

// Confidence thresholds on the gap between the top two field scores.
const (
	highConfidenceGap   = 20
	mediumConfidenceGap = 10
)

// FieldRecommendation is the result of matching one resume against every
// known field.
type FieldRecommendation struct {
	RecommendedField     string             `json:"recommended_field"`
	RecommendedFieldName string             `json:"recommended_field_name"`
	Confidence           string             `json:"confidence"` // High, Medium, Low
	MatchScore           float64            `json:"match_score"`
	AllScores            map[string]float64 `json:"all_scores"` // display name → match %
	Reasoning            []string           `json:"reasoning"`
}

// fieldSignals drives the one canned per-field reasoning sentence: the
// sentence is added when any trigger term occurs in the resume text.
var fieldSignals = map[string]struct {
	triggers []string
	sentence string
}{
	"software_engineering": {
		triggers: []string{"programming", "development", "coding", "software"},
		sentence: "Clear indication of software development experience",
	},
	"data_analyst": {
		triggers: []string{"data", "analysis", "analytics", "statistics"},
		sentence: "Strong background in data analysis and statistics",
	},
	"consultant": {
		triggers: []string{"consulting", "strategy", "client", "advisory"},
		sentence: "Evidence of consulting and strategic advisory experience",
	},
}

// fieldMatchScore computes the match percentage of lower-cased resume text
// against one field profile. Skills and keywords are matched by direct
// substring containment, without the variant expansion the ATS scorer applies.
func fieldMatchScore(lowerText string, p FieldProfile) float64 {
	points, possible := 0, 0

	for _, skill := range p.Required {
		possible += requiredPoints
		if strings.Contains(lowerText, strings.ToLower(skill)) {
			points += requiredPoints
		}
	}
	for _, skill := range p.Preferred {
		possible += preferredPoints
		if strings.Contains(lowerText, strings.ToLower(skill)) {
			points += preferredPoints
		}
	}
	for _, kw := range p.Keywords {
		possible += keywordPoints
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			points += keywordPoints
		}
	}

	if possible == 0 {
		return 0
	}
	return float64(points) / float64(possible) * 100
}

// RecommendField scores the resume against every known field and returns the
// best match with a confidence label and supporting reasons.
func RecommendField(resumeText string) *FieldRecommendation {
	lower := strings.ToLower(resumeText)

	ids := FieldIDs()
	scores := make([]float64, len(ids))
	for i, id := range ids {
		scores[i] = fieldMatchScore(lower, catalog[id])
	}

	// Rank descending; SliceStable keeps catalog order on ties.
	order := make([]int, len(ids))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	best := order[0]
	allScores := make(map[string]float64, len(ids))
	for i, id := range ids {
		allScores[DisplayName(id)] = scores[i]
	}

	return &FieldRecommendation{
		RecommendedField:     ids[best],
		RecommendedFieldName: DisplayName(ids[best]),
		Confidence:           confidenceLabel(scores),
		MatchScore:           scores[best],
		AllScores:            allScores,
		Reasoning:            fieldReasoning(lower, ids[best]),
	}
}

// confidenceLabel derives the confidence from the gap between the top two
// scores. A single defined field defaults to Medium.
func confidenceLabel(scores []float64) string {
	if len(scores) < 2 {
		return "Medium"
	}
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	gap := sorted[0] - sorted[1]
	switch {
	case gap >= highConfidenceGap:
		return "High"
	case gap >= mediumConfidenceGap:
		return "Medium"
	default:
		return "Low"
	}
}

// fieldReasoning builds up to 3 human-readable reasons for the top field:
// found required skills, found keywords, and a per-field signal sentence.
func fieldReasoning(lowerText, fieldID string) []string {
	p := catalog[fieldID]
	var reasoning []string

	var foundSkills []string
	required := p.Required
	if len(required) > 10 {
		required = required[:10]
	}
	for _, skill := range required {
		if strings.Contains(lowerText, strings.ToLower(skill)) {
			foundSkills = append(foundSkills, skill)
		}
	}
	if len(foundSkills) > 0 {
		if len(foundSkills) > 5 {
			foundSkills = foundSkills[:5]
		}
		reasoning = append(reasoning, fmt.Sprintf("Strong match in key skills: %s", strings.Join(foundSkills, ", ")))
	}

	var foundKeywords []string
	keywords := p.Keywords
	if len(keywords) > 5 {
		keywords = keywords[:5]
	}
	for _, kw := range keywords {
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			foundKeywords = append(foundKeywords, kw)
		}
	}
	if len(foundKeywords) > 0 {
		reasoning = append(reasoning, fmt.Sprintf("Relevant experience in: %s", strings.Join(foundKeywords, ", ")))
	}

	if sig, ok := fieldSignals[fieldID]; ok {
		for _, term := range sig.triggers {
			if strings.Contains(lowerText, term) {
				reasoning = append(reasoning, sig.sentence)
				break
			}
		}
	}

	if len(reasoning) > 3 {
		reasoning = reasoning[:3]
	}
	return reasoning
}
