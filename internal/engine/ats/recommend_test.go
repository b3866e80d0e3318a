package ats

import (
	"strings"
	"testing"
)

func TestRecommendationsCrossField(t *testing.T) {
	s := NewScorer("software_engineering")
	fieldRec := &FieldRecommendation{
		RecommendedField:     "data_analyst",
		RecommendedFieldName: "Data Analyst",
		Confidence:           "High",
		MatchScore:           72,
	}
	d := FormatDetails{
		HasContact: true, HasSummary: true, HasExperience: true,
		HasEducation: true, HasSkillsSection: true, WordCount: 500, ProperLength: true,
	}

	recs := s.recommendations(nil, nil, d, 85, fieldRec)
	if len(recs) == 0 {
		t.Fatal("no recommendations")
	}
	if !strings.Contains(recs[0], "Data Analyst") || !strings.Contains(recs[0], "72% match") {
		t.Errorf("first recommendation %q, want cross-field suggestion", recs[0])
	}
}

func TestRecommendationsNoCrossFieldOnLowConfidence(t *testing.T) {
	s := NewScorer("software_engineering")
	fieldRec := &FieldRecommendation{
		RecommendedField:     "data_analyst",
		RecommendedFieldName: "Data Analyst",
		Confidence:           "Low",
		MatchScore:           40,
	}
	d := FormatDetails{
		HasContact: true, HasSummary: true, HasExperience: true,
		HasEducation: true, HasSkillsSection: true, WordCount: 500, ProperLength: true,
	}

	recs := s.recommendations(nil, nil, d, 85, fieldRec)
	for _, r := range recs {
		if strings.Contains(r, "Data Analyst") {
			t.Errorf("low-confidence cross-field suggestion leaked: %q", r)
		}
	}
}

func TestRecommendationsMissingSkillsTopThree(t *testing.T) {
	s := NewScorer("software_engineering")
	fieldRec := &FieldRecommendation{RecommendedFieldName: "Software Engineering", Confidence: "Low"}
	d := FormatDetails{
		HasContact: true, HasSummary: true, HasExperience: true,
		HasEducation: true, HasSkillsSection: true, WordCount: 500, ProperLength: true,
	}
	missing := []string{"Python", "Java", "SQL", "Git", "React"}

	recs := s.recommendations(nil, missing, d, 75, fieldRec)
	if len(recs) == 0 {
		t.Fatal("no recommendations")
	}
	want := "Consider adding these in-demand skills: Python, Java, SQL"
	if recs[0] != want {
		t.Errorf("first recommendation %q, want %q", recs[0], want)
	}
	if strings.Contains(recs[0], "Git") {
		t.Errorf("more than three missing skills listed: %q", recs[0])
	}
}

func TestRecommendationsCap(t *testing.T) {
	s := NewScorer("software_engineering")
	fieldRec := &FieldRecommendation{
		RecommendedField:     "data_analyst",
		RecommendedFieldName: "Data Analyst",
		Confidence:           "High",
		MatchScore:           60,
	}
	// Everything wrong at once: cross-field, missing skills, all five
	// format gaps, too short, plus the band message.
	recs := s.recommendations(nil, []string{"Python"}, FormatDetails{WordCount: 20}, 30, fieldRec)
	if len(recs) != maxRecommendations {
		t.Errorf("got %d recommendations, want capped at %d: %v", len(recs), maxRecommendations, recs)
	}
}

func TestRecommendationsBandMessages(t *testing.T) {
	s := NewScorer("software_engineering")
	fieldRec := &FieldRecommendation{RecommendedFieldName: "Software Engineering", Confidence: "Low"}
	d := FormatDetails{
		HasContact: true, HasSummary: true, HasExperience: true,
		HasEducation: true, HasSkillsSection: true, WordCount: 500, ProperLength: true,
	}

	tests := []struct {
		overall int
		want    string
	}{
		{95, "Excellent resume! Consider minor tweaks for specific job applications"},
		{80, "Excellent resume! Consider minor tweaks for specific job applications"},
		{75, "Strong resume foundation - focus on role-specific keywords"},
		{65, "Good structure - enhance with more relevant skills and keywords"},
		{30, "Focus on adding relevant skills and improving content structure"},
		{0, "Focus on adding relevant skills and improving content structure"},
	}
	for _, tt := range tests {
		recs := s.recommendations(nil, nil, d, tt.overall, fieldRec)
		if len(recs) != 1 || recs[0] != tt.want {
			t.Errorf("overall %d: recommendations %v, want only %q", tt.overall, recs, tt.want)
		}
	}
}

func TestRecommendationsLength(t *testing.T) {
	s := NewScorer("software_engineering")
	fieldRec := &FieldRecommendation{RecommendedFieldName: "Software Engineering", Confidence: "Low"}
	full := FormatDetails{
		HasContact: true, HasSummary: true, HasExperience: true,
		HasEducation: true, HasSkillsSection: true,
	}

	short := full
	short.WordCount = 80
	recs := s.recommendations(nil, nil, short, 75, fieldRec)
	if len(recs) < 2 || !strings.Contains(recs[0], "Expand content") {
		t.Errorf("short resume recommendations %v, want expand suggestion first", recs)
	}

	long := full
	long.WordCount = 2000
	recs = s.recommendations(nil, nil, long, 75, fieldRec)
	if len(recs) < 2 || !strings.Contains(recs[0], "condensing") {
		t.Errorf("long resume recommendations %v, want condense suggestion first", recs)
	}
}
