package ats

import "strings"

// Component weights for the overall score. Components are also reported
// pre-weighted, so skills reads out of 35, format and keywords out of 25,
// content out of 15.
const (
	skillsWeight  = 0.35
	formatWeight  = 0.25
	keywordWeight = 0.25
	contentWeight = 0.15
)

// Skills sub-score: required vs preferred share of the base percentage,
// plus a flat bonus for skill-rich resumes.
const (
	requiredShare    = 70
	preferredShare   = 30
	manySkillsCount  = 8
	manySkillsBonus  = 10
	someSkillsCount  = 5
	someSkillsBonus  = 5
	maxMissingSkills = 10
)

// Format sub-score points per flag.
const (
	contactPoints       = 20
	summaryPoints       = 15
	experiencePoints    = 25
	educationPoints     = 15
	skillsSectionPoints = 15
	properLengthPoints  = 10
	shortLengthPoints   = 5

	minProperWords  = 150
	maxProperWords  = 1200
	minPartialWords = 100
)

// Keyword sub-score: partial credit for compound phrases and a bonus for
// keyword-rich resumes.
const (
	partialPhraseShare  = 0.6 // fraction of phrase words needed for partial credit
	partialPhraseCredit = 0.7
	keywordRichShare    = 0.8
	keywordRichBonus    = 10
)

// Section keyword tables for format detection.
var (
	summaryKeywords       = []string{"summary", "objective", "profile", "about", "overview", "introduction"}
	experienceKeywords    = []string{"experience", "work", "employment", "career", "professional", "job", "position"}
	educationKeywords     = []string{"education", "degree", "university", "college", "school", "bachelor", "master", "phd"}
	skillsSectionKeywords = []string{"skills", "technical", "competencies", "technologies", "tools", "programming"}
)

// Content-quality term tables. Matched as substrings of the lower-cased text.
var (
	actionVerbs = []string{
		"developed", "created", "managed", "led", "implemented", "designed",
		"built", "improved", "increased", "reduced", "achieved", "delivered",
		"collaborated", "coordinated", "analyzed", "optimized", "streamlined",
	}
	professionalTerms = []string{
		"responsible", "leadership", "team", "project", "client", "customer",
		"business", "strategic", "innovative", "successful", "efficient",
	}
	certKeywords = []string{"certified", "certification", "award", "recognition", "achievement"}
)

// FormatDetails records the structural checks behind the format sub-score.
type FormatDetails struct {
	HasContact       bool `json:"has_contact"`
	HasSummary       bool `json:"has_summary"`
	HasExperience    bool `json:"has_experience"`
	HasEducation     bool `json:"has_education"`
	HasSkillsSection bool `json:"has_skills_section"`
	ProperLength     bool `json:"proper_length"`
	WordCount        int  `json:"word_count"`
}

// ScoreBreakdown is the result of scoring one resume against one field.
// Component scores are already weighted: skills out of 35, format out of 25,
// keywords out of 25, content out of 15.
type ScoreBreakdown struct {
	OverallScore        int                  `json:"overall_score"`
	SkillsScore         int                  `json:"skills_score"`
	FormatScore         int                  `json:"format_score"`
	KeywordScore        int                  `json:"keyword_score"`
	ContentScore        int                  `json:"content_score"`
	FoundSkills         []string             `json:"found_skills"`
	MissingSkills       []string             `json:"missing_skills"`
	FormatDetails       FormatDetails        `json:"format_details"`
	Recommendations     []string             `json:"recommendations"`
	FieldRecommendation *FieldRecommendation `json:"field_recommendation"`
}

// Scorer scores resumes against one target field. It holds an immutable
// snapshot of that field's catalog lists and is safe for concurrent use.
type Scorer struct {
	field     string
	required  []string
	preferred []string
	keywords  []string
}

// NewScorer builds a scorer for the given field identifier. Unknown fields
// yield an empty profile and score zero on skills and keywords.
func NewScorer(fieldID string) *Scorer {
	p := ProfileFor(fieldID)
	return &Scorer{
		field:     fieldID,
		required:  p.Required,
		preferred: p.Preferred,
		keywords:  p.Keywords,
	}
}

// Field returns the scorer's target field identifier.
func (s *Scorer) Field() string {
	return s.field
}

// Score computes the full ATS breakdown for one resume text: four weighted
// sub-scores, a bonus pass, a field recommendation, and capped improvement
// recommendations. Identical input yields an identical result.
func (s *Scorer) Score(resumeText string) *ScoreBreakdown {
	lower := strings.ToLower(resumeText)

	fieldRec := RecommendField(resumeText)

	skillsRaw, found, missing := s.skillsScore(lower)
	formatRaw, details := formatScore(resumeText)
	keywordRaw := s.keywordScore(lower)
	contentRaw := contentScore(resumeText)

	overall := int(skillsRaw*skillsWeight + formatRaw*formatWeight + keywordRaw*keywordWeight + contentRaw*contentWeight)
	overall += bonusPoints(len(found), details)
	if overall > 100 {
		overall = 100
	}

	bd := &ScoreBreakdown{
		OverallScore:        overall,
		SkillsScore:         int(skillsRaw * skillsWeight),
		FormatScore:         int(formatRaw * formatWeight),
		KeywordScore:        int(keywordRaw * keywordWeight),
		ContentScore:        int(contentRaw * contentWeight),
		FoundSkills:         found,
		MissingSkills:       missing,
		FormatDetails:       details,
		FieldRecommendation: fieldRec,
	}
	bd.Recommendations = s.recommendations(found, missing, details, overall, fieldRec)
	return bd
}

// skillsScore matches required and preferred skills through variant
// expansion. Found skills keep first-seen order without duplicates; missing
// collects absent required skills, capped for display.
func (s *Scorer) skillsScore(lowerText string) (score float64, found, missing []string) {
	foundSet := make(map[string]bool)
	requiredSet := make(map[string]bool, len(s.required))
	for _, skill := range s.required {
		requiredSet[skill] = true
	}

	all := make([]string, 0, len(s.required)+len(s.preferred))
	all = append(all, s.required...)
	all = append(all, s.preferred...)

	for _, skill := range all {
		if SkillPresent(skill, lowerText) {
			if !foundSet[skill] {
				foundSet[skill] = true
				found = append(found, skill)
			}
			continue
		}
		if requiredSet[skill] {
			missing = append(missing, skill)
		}
	}

	requiredFound, preferredFound := 0, 0
	for _, skill := range s.required {
		if foundSet[skill] {
			requiredFound++
		}
	}
	for _, skill := range s.preferred {
		if foundSet[skill] {
			preferredFound++
		}
	}

	base := 0.0
	if len(s.required) > 0 {
		base += float64(requiredFound) / float64(len(s.required)) * requiredShare
	}
	if len(s.preferred) > 0 {
		base += float64(preferredFound) / float64(len(s.preferred)) * preferredShare
	}

	switch {
	case len(found) >= manySkillsCount:
		base += manySkillsBonus
	case len(found) >= someSkillsCount:
		base += someSkillsBonus
	}

	if len(missing) > maxMissingSkills {
		missing = missing[:maxMissingSkills]
	}
	return min100(base), found, missing
}

// formatScore runs the structural flag checks against the raw resume text.
// Flags are independent and additive. Word count uses whitespace tokens of
// the uncleaned text.
func formatScore(resumeText string) (float64, FormatDetails) {
	lower := strings.ToLower(resumeText)
	score := 0.0
	var d FormatDetails

	hasEmail := strings.Contains(resumeText, "@") && strings.Contains(resumeText, ".")
	hasPhone := containsDigit(resumeText) && (strings.Contains(resumeText, "(") ||
		strings.Contains(resumeText, "-") || strings.Contains(resumeText, ".") ||
		strings.Contains(lower, "phone") || strings.Contains(lower, "tel"))
	d.HasContact = hasEmail || hasPhone
	if d.HasContact {
		score += contactPoints
	}

	d.HasSummary = containsAny(lower, summaryKeywords)
	if d.HasSummary {
		score += summaryPoints
	}

	d.HasExperience = containsAny(lower, experienceKeywords)
	if d.HasExperience {
		score += experiencePoints
	}

	d.HasEducation = containsAny(lower, educationKeywords)
	if d.HasEducation {
		score += educationPoints
	}

	d.HasSkillsSection = containsAny(lower, skillsSectionKeywords)
	if d.HasSkillsSection {
		score += skillsSectionPoints
	}

	d.WordCount = len(strings.Fields(resumeText))
	d.ProperLength = d.WordCount >= minProperWords && d.WordCount <= maxProperWords
	if d.ProperLength {
		score += properLengthPoints
	} else if d.WordCount >= minPartialWords {
		score += shortLengthPoints
	}

	return min100(score), d
}

// keywordScore awards one credit per keyword phrase found whole, and partial
// credit for compound phrases whose constituent words mostly appear.
func (s *Scorer) keywordScore(lowerText string) float64 {
	if len(s.keywords) == 0 {
		return 0
	}

	credits := 0.0
	for _, kw := range s.keywords {
		kwLower := strings.ToLower(kw)
		if strings.Contains(lowerText, kwLower) {
			credits++
			continue
		}
		parts := strings.Fields(kwLower)
		if len(parts) < 2 {
			continue
		}
		partsFound := 0
		for _, part := range parts {
			if strings.Contains(lowerText, part) {
				partsFound++
			}
		}
		if float64(partsFound) >= float64(len(parts))*partialPhraseShare {
			credits += partialPhraseCredit
		}
	}

	total := float64(len(s.keywords))
	score := credits / total * 100
	if credits >= total*keywordRichShare {
		score += keywordRichBonus
	}
	return min100(score)
}

// contentScore rewards action verbs, quantified achievements, professional
// vocabulary, and certifications. Tiers are additive, not exclusive.
func contentScore(resumeText string) float64 {
	lower := strings.ToLower(resumeText)
	score := 0.0

	verbCount := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			verbCount++
		}
	}
	switch {
	case verbCount >= 5:
		score += 30
	case verbCount >= 3:
		score += 20
	case verbCount >= 1:
		score += 10
	}

	hasNumbers := containsDigit(resumeText)
	hasPercentages := strings.Contains(resumeText, "%")
	switch {
	case hasNumbers && hasPercentages:
		score += 25
	case hasNumbers:
		score += 15
	}

	termCount := 0
	for _, term := range professionalTerms {
		if strings.Contains(lower, term) {
			termCount++
		}
	}
	switch {
	case termCount >= 3:
		score += 20
	case termCount >= 1:
		score += 10
	}

	if containsAny(lower, certKeywords) {
		score += 15
	}

	return min100(score)
}

// bonusPoints is the post-weighting bonus pass for well-structured resumes.
func bonusPoints(foundCount int, d FormatDetails) int {
	bonus := 0

	switch {
	case foundCount >= 10:
		bonus += 5
	case foundCount >= 7:
		bonus += 3
	}

	sections := 0
	for _, flag := range []bool{d.HasContact, d.HasSummary, d.HasExperience, d.HasEducation, d.HasSkillsSection} {
		if flag {
			sections++
		}
	}
	switch {
	case sections == 5:
		bonus += 8
	case sections >= 4:
		bonus += 5
	case sections >= 3:
		bonus += 3
	}

	if d.ProperLength {
		bonus += 3
	}
	return bonus
}

func containsAny(lowerText string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lowerText, term) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func min100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
