package ats

import (
	"fmt"
	"strings"
)

const maxRecommendations = 6

// Overall-score bands for the closing recommendation message.
var scoreBandMessages = []struct {
	min     int
	message string
}{
	{80, "Excellent resume! Consider minor tweaks for specific job applications"},
	{70, "Strong resume foundation - focus on role-specific keywords"},
	{60, "Good structure - enhance with more relevant skills and keywords"},
	{0, "Focus on adding relevant skills and improving content structure"},
}

// recommendations builds the capped improvement list in fixed priority
// order: cross-field suggestion, missing skills, format gaps, length, then
// one closing message keyed by the overall score band.
func (s *Scorer) recommendations(found, missing []string, d FormatDetails, overall int, fieldRec *FieldRecommendation) []string {
	var recs []string

	currentFieldName := DisplayName(s.field)
	if fieldRec.RecommendedFieldName != currentFieldName &&
		(fieldRec.Confidence == "High" || fieldRec.Confidence == "Medium") {
		recs = append(recs, fmt.Sprintf(
			"Consider applying for %s roles - your profile shows a %.0f%% match",
			fieldRec.RecommendedFieldName, fieldRec.MatchScore))
	}

	if len(missing) > 0 {
		top := missing
		if len(top) > 3 {
			top = top[:3]
		}
		recs = append(recs, fmt.Sprintf("Consider adding these in-demand skills: %s", strings.Join(top, ", ")))
	}

	if !d.HasContact {
		recs = append(recs, "Add contact information to improve recruiter accessibility")
	}
	if !d.HasSummary {
		recs = append(recs, "Include a professional summary to highlight your value proposition")
	}
	if !d.HasExperience {
		recs = append(recs, "Add work experience section with quantifiable achievements")
	}
	if !d.HasEducation {
		recs = append(recs, "Include education background to meet ATS requirements")
	}
	if !d.HasSkillsSection {
		recs = append(recs, "Create a dedicated technical skills section")
	}

	if d.WordCount < minProperWords {
		recs = append(recs, "Expand content with more details about your experience and achievements")
	} else if d.WordCount > maxProperWords {
		recs = append(recs, "Consider condensing to 1-2 pages for better readability")
	}

	for _, band := range scoreBandMessages {
		if overall >= band.min {
			recs = append(recs, band.message)
			break
		}
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
