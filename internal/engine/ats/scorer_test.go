package ats

import (
	"reflect"
	"testing"
)

const goodResume = `John Smith
john.smith@email.com | (555) 123-4567 | San Francisco, CA

PROFESSIONAL SUMMARY
Results-driven software engineer with 6 years of experience building scalable
web applications. Developed and delivered full-stack products serving millions
of users, improved system performance by 40%, and led cross-functional teams
of 5 engineers.

TECHNICAL SKILLS
Programming: Python, Java, JavaScript, TypeScript, SQL
Web: HTML, CSS, React, Node.js, Django, REST API design
Infrastructure: Docker, Kubernetes, AWS, PostgreSQL, Redis, Git, CI/CD, Linux

WORK EXPERIENCE
Senior Software Engineer, Acme Corp (2021 - Present)
- Designed and implemented microservices handling 2 million requests per day
- Reduced deployment time by 60% through automated CI/CD pipelines in an agile team
- Led the code review process and mentored junior engineers on testing and debugging
- Collaborated with product managers to deliver customer-facing features

Software Engineer, Beta Labs (2018 - 2021)
- Built responsive frontend components in React and improved page load times by 35%
- Created backend services in Python and optimized database queries
- Achieved 90% unit test coverage across core modules

EDUCATION
Bachelor of Science in Computer Science, State University (2018)
Certified AWS Solutions Architect`

const basicResume = `Jane Doe
Looked after shop inventory and helped customers at the register.
Worked part time while studying for school exams.`

func TestScoreGoodResume(t *testing.T) {
	bd := NewScorer("software_engineering").Score(goodResume)

	if bd.OverallScore < 0 || bd.OverallScore > 100 {
		t.Fatalf("overall score %d out of [0,100]", bd.OverallScore)
	}
	if bd.OverallScore < 60 {
		t.Errorf("overall score %d, expected at least 60 for a strong resume", bd.OverallScore)
	}

	if len(bd.FoundSkills) < 8 {
		t.Errorf("found %d skills, expected at least 8: %v", len(bd.FoundSkills), bd.FoundSkills)
	}

	d := bd.FormatDetails
	if !d.HasContact || !d.HasSummary || !d.HasExperience || !d.HasEducation || !d.HasSkillsSection {
		t.Errorf("expected all section flags true, got %+v", d)
	}
	if d.WordCount == 0 {
		t.Error("word count is 0")
	}

	if bd.SkillsScore < 0 || bd.SkillsScore > 35 {
		t.Errorf("skills score %d out of [0,35]", bd.SkillsScore)
	}
	if bd.FormatScore < 0 || bd.FormatScore > 25 {
		t.Errorf("format score %d out of [0,25]", bd.FormatScore)
	}
	if bd.KeywordScore < 0 || bd.KeywordScore > 25 {
		t.Errorf("keyword score %d out of [0,25]", bd.KeywordScore)
	}
	if bd.ContentScore < 0 || bd.ContentScore > 15 {
		t.Errorf("content score %d out of [0,15]", bd.ContentScore)
	}

	if bd.FieldRecommendation == nil {
		t.Fatal("field recommendation missing")
	}
	if len(bd.Recommendations) == 0 || len(bd.Recommendations) > maxRecommendations {
		t.Errorf("got %d recommendations, want 1..%d", len(bd.Recommendations), maxRecommendations)
	}
}

func TestScoreMissingSkills(t *testing.T) {
	bd := NewScorer("software_engineering").Score(goodResume)

	if len(bd.MissingSkills) > maxMissingSkills {
		t.Errorf("missing skills %d exceeds cap %d", len(bd.MissingSkills), maxMissingSkills)
	}

	required := make(map[string]bool)
	for _, skill := range ProfileFor("software_engineering").Required {
		required[skill] = true
	}
	found := make(map[string]bool)
	for _, skill := range bd.FoundSkills {
		found[skill] = true
	}
	for _, skill := range bd.MissingSkills {
		if !required[skill] {
			t.Errorf("missing skill %q is not a required skill", skill)
		}
		if found[skill] {
			t.Errorf("skill %q reported both found and missing", skill)
		}
	}
}

func TestScoreOrdering(t *testing.T) {
	scorer := NewScorer("software_engineering")
	good := scorer.Score(goodResume)
	basic := scorer.Score(basicResume)
	if good.OverallScore <= basic.OverallScore {
		t.Errorf("good resume scored %d, basic scored %d; expected good > basic",
			good.OverallScore, basic.OverallScore)
	}
}

func TestScoreEmptyText(t *testing.T) {
	bd := NewScorer("software_engineering").Score("")

	if bd.OverallScore != 0 {
		t.Errorf("overall score %d for empty text, want 0", bd.OverallScore)
	}
	if bd.SkillsScore != 0 || bd.FormatScore != 0 || bd.KeywordScore != 0 || bd.ContentScore != 0 {
		t.Errorf("component scores nonzero for empty text: %+v", bd)
	}
	if len(bd.FoundSkills) != 0 {
		t.Errorf("found skills %v for empty text", bd.FoundSkills)
	}
	if len(bd.MissingSkills) != maxMissingSkills {
		t.Errorf("missing skills %d, want %d (capped)", len(bd.MissingSkills), maxMissingSkills)
	}
	if bd.FormatDetails.WordCount != 0 {
		t.Errorf("word count %d for empty text", bd.FormatDetails.WordCount)
	}
}

func TestScoreUnknownField(t *testing.T) {
	s := NewScorer("astronaut")
	if s.Field() != "astronaut" {
		t.Errorf("Field() = %q", s.Field())
	}
	bd := s.Score(goodResume)
	if bd.SkillsScore != 0 {
		t.Errorf("skills score %d for unknown field, want 0", bd.SkillsScore)
	}
	if bd.KeywordScore != 0 {
		t.Errorf("keyword score %d for unknown field, want 0", bd.KeywordScore)
	}
	if len(bd.FoundSkills) != 0 || len(bd.MissingSkills) != 0 {
		t.Errorf("skills lists nonempty for unknown field: found=%v missing=%v",
			bd.FoundSkills, bd.MissingSkills)
	}
}

func TestScoreIdempotent(t *testing.T) {
	scorer := NewScorer("software_engineering")
	a := scorer.Score(goodResume)
	b := scorer.Score(goodResume)
	if !reflect.DeepEqual(a, b) {
		t.Error("scoring the same text twice produced different results")
	}
}

func TestKeywordScorePartialCredit(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		text     string
		want     float64
	}{
		{
			name:     "whole phrase plus rich bonus capped",
			keywords: []string{"data analysis"},
			text:     "performed data analysis daily",
			want:     100,
		},
		{
			name:     "half of two-word phrase gets nothing",
			keywords: []string{"data analysis"},
			text:     "statistical analysis only",
			want:     0,
		},
		{
			name:     "two of three words gets partial credit",
			keywords: []string{"object oriented design"},
			text:     "oriented towards clean design",
			want:     70,
		},
		{
			name:     "single-word keyword absent",
			keywords: []string{"programming"},
			text:     "program manager",
			want:     0,
		},
		{
			name:     "no keywords",
			keywords: nil,
			text:     "anything",
			want:     0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scorer{keywords: tt.keywords}
			if got := s.keywordScore(tt.text); got != tt.want {
				t.Errorf("keywordScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatScoreFlags(t *testing.T) {
	tests := []struct {
		name string
		text string
		flag func(FormatDetails) bool
	}{
		{"email contact", "reach me at jane@example.com", func(d FormatDetails) bool { return d.HasContact }},
		{"phone contact", "call 555-1234", func(d FormatDetails) bool { return d.HasContact }},
		{"summary", "professional summary of my career", func(d FormatDetails) bool { return d.HasSummary }},
		{"experience", "work experience listed below", func(d FormatDetails) bool { return d.HasExperience }},
		{"education", "bachelor of science", func(d FormatDetails) bool { return d.HasEducation }},
		{"skills section", "technical skills include", func(d FormatDetails) bool { return d.HasSkillsSection }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, d := formatScore(tt.text)
			if !tt.flag(d) {
				t.Errorf("flag not set for %q: %+v", tt.text, d)
			}
		})
	}

	_, d := formatScore("plain words with no markers here")
	if d.HasContact || d.HasSummary || d.HasExperience || d.HasEducation || d.HasSkillsSection {
		t.Errorf("unexpected flags on neutral text: %+v", d)
	}
}

func TestContentScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0},
		{"five verbs only", "developed created managed led implemented", 30},
		{
			name: "verbs numbers percent and terms",
			// 1 verb tier (+10), numbers with percent (+25), 1 term tier (+10)
			text: "developed 50 features and grew revenue 20% with the team",
			want: 45,
		},
		{"certification only", "certified kubernetes administrator", 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contentScore(tt.text); got != tt.want {
				t.Errorf("contentScore(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestBonusPoints(t *testing.T) {
	allFlags := FormatDetails{
		HasContact: true, HasSummary: true, HasExperience: true,
		HasEducation: true, HasSkillsSection: true, ProperLength: true,
	}
	tests := []struct {
		name  string
		found int
		d     FormatDetails
		want  int
	}{
		{"everything", 10, allFlags, 16},
		{"seven skills four sections", 7, FormatDetails{HasContact: true, HasSummary: true, HasExperience: true, HasEducation: true}, 8},
		{"three sections only", 0, FormatDetails{HasContact: true, HasSummary: true, HasExperience: true}, 3},
		{"nothing", 0, FormatDetails{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bonusPoints(tt.found, tt.d); got != tt.want {
				t.Errorf("bonusPoints(%d, %+v) = %d, want %d", tt.found, tt.d, got, tt.want)
			}
		})
	}
}
