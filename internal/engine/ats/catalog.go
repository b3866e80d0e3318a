// Package ats scores resume text for Applicant Tracking System compatibility
// and recommends the best-matching job field.
//
// Everything here is pure computation over in-memory text and static
// catalogs: no I/O, no hidden state. Unknown field identifiers degrade to
// empty profiles and zero scores instead of errors, so every operation is
// total over all inputs, including the empty string.
package ats

// FieldProfile is the static skill catalog entry for one job field.
// Profiles are read-only after process start and safe for concurrent use.
type FieldProfile struct {
	Required  []string // required skills, catalog order
	Preferred []string // preferred skills, catalog order
	Keywords  []string // keyword phrases, matched as whole substrings
	Industry  []string // extra industry phrases, informational only
}

// fieldIDs fixes catalog iteration order. Ranking ties between fields are
// broken by this order, not by content.
var fieldIDs = []string{"software_engineering", "data_analyst", "consultant"}

var fieldNames = map[string]string{
	"software_engineering": "Software Engineering",
	"data_analyst":         "Data Analyst",
	"consultant":           "Consultant",
}

var catalog = map[string]FieldProfile{
	"software_engineering": {
		Required: []string{
			"Python", "Java", "JavaScript", "C++", "Git", "SQL", "HTML", "CSS",
			"React", "Node.js", "API", "Database", "Agile", "Testing", "Debugging",
		},
		Preferred: []string{
			"Docker", "Kubernetes", "AWS", "Azure", "MongoDB", "PostgreSQL",
			"Redis", "GraphQL", "TypeScript", "Vue.js", "Angular", "Spring Boot",
			"Django", "Flask", "Microservices", "CI/CD", "Jenkins", "Linux",
		},
		Keywords: []string{
			"software development", "programming", "coding", "algorithms",
			"data structures", "object-oriented", "full-stack", "backend",
			"frontend", "web development", "mobile development", "DevOps",
		},
		Industry: []string{
			"SDLC", "version control", "code review", "unit testing",
			"integration testing", "performance optimization", "scalability",
		},
	},
	"data_analyst": {
		Required: []string{
			"Python", "R", "SQL", "Excel", "Statistics", "Data Visualization",
			"Pandas", "NumPy", "Matplotlib", "Seaborn", "Tableau", "Power BI",
		},
		Preferred: []string{
			"Machine Learning", "Scikit-learn", "TensorFlow", "PyTorch",
			"Jupyter", "Apache Spark", "Hadoop", "ETL", "Data Mining",
			"A/B Testing", "Regression Analysis", "Time Series", "SAS", "SPSS",
		},
		Keywords: []string{
			"data analysis", "business intelligence", "reporting", "dashboard",
			"metrics", "KPI", "insights", "trends", "forecasting",
			"statistical analysis", "data cleaning", "data modeling",
		},
		Industry: []string{
			"data warehouse", "business metrics", "predictive analytics",
			"data governance", "data quality", "statistical modeling",
		},
	},
	"consultant": {
		Required: []string{
			"Problem Solving", "Communication", "Presentation", "Analysis",
			"Strategy", "Project Management", "Client Management", "Research",
		},
		Preferred: []string{
			"PowerPoint", "Excel", "Stakeholder Management", "Change Management",
			"Process Improvement", "Business Analysis", "Financial Modeling",
			"Market Research", "Risk Assessment", "Agile", "Scrum",
		},
		Keywords: []string{
			"consulting", "advisory", "strategic planning", "business transformation",
			"operational excellence", "client engagement", "solution design",
			"implementation", "best practices", "industry expertise",
		},
		Industry: []string{
			"client relations", "proposal writing", "workshop facilitation",
			"change leadership", "digital transformation", "cost optimization",
		},
	},
}

// FieldIDs returns the known field identifiers in catalog order.
func FieldIDs() []string {
	out := make([]string, len(fieldIDs))
	copy(out, fieldIDs)
	return out
}

// DisplayName returns the human-readable name for a field identifier.
// Unknown identifiers are returned as-is.
func DisplayName(fieldID string) string {
	if name, ok := fieldNames[fieldID]; ok {
		return name
	}
	return fieldID
}

// ProfileFor returns the catalog profile for a field identifier.
// Unknown identifiers yield an empty profile, never an error.
func ProfileFor(fieldID string) FieldProfile {
	return catalog[fieldID]
}

// AllSkills returns required followed by preferred skills for a field.
func AllSkills(fieldID string) []string {
	p := catalog[fieldID]
	out := make([]string, 0, len(p.Required)+len(p.Preferred))
	out = append(out, p.Required...)
	out = append(out, p.Preferred...)
	return out
}
