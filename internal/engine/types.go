package engine

// --- ATS scoring tool types ---

// ATSScoreInput is the input for the ats_score tool.
type ATSScoreInput struct {
	ResumeText string `json:"resume_text" jsonschema:"Plain resume text, already extracted from PDF/DOCX"`
	Field      string `json:"field,omitempty" jsonschema:"Target job field: software_engineering, data_analyst, consultant (default: software_engineering)"`
}

// FieldMatchInput is the input for the field_match tool.
type FieldMatchInput struct {
	ResumeText string `json:"resume_text" jsonschema:"Plain resume text to match against all known job fields"`
}

// CachedResult is the envelope stored in the report cache.
type CachedResult struct {
	Query  string `json:"query"`
	Answer string `json:"answer"`
}
