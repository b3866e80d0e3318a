package ats

// Report is the complete scoring response for one resume against one target
// field: the ATS breakdown plus the independent field recommendation, shaped
// for a single caller-facing record.
type Report struct {
	Field     string `json:"field"`
	FieldName string `json:"field_name"`
	ScoreBreakdown
}

// BuildReport scores resumeText against fieldID and assembles the final
// record. Unknown fields and empty text yield a valid zero-score report.
func BuildReport(resumeText, fieldID string) *Report {
	bd := NewScorer(fieldID).Score(resumeText)
	return &Report{
		Field:          fieldID,
		FieldName:      DisplayName(fieldID),
		ScoreBreakdown: *bd,
	}
}
