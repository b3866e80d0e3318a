package ats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ScoreRecord is one persisted scoring run.
type ScoreRecord struct {
	ID               int64  `json:"id"`
	Field            string `json:"field"`
	OverallScore     int    `json:"overall_score"`
	SkillsScore      int    `json:"skills_score"`
	FormatScore      int    `json:"format_score"`
	KeywordScore     int    `json:"keyword_score"`
	ContentScore     int    `json:"content_score"`
	FoundSkills      int    `json:"found_skills"`
	MissingSkills    int    `json:"missing_skills"`
	WordCount        int    `json:"word_count"`
	RecommendedField string `json:"recommended_field,omitempty"`
	CreatedAt        string `json:"created_at"`
}

// ScoreHistoryListInput is the input for score_history.
type ScoreHistoryListInput struct {
	Field string `json:"field,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// ScoreHistoryResult is the output for score_history.
type ScoreHistoryResult struct {
	Records []ScoreRecord `json:"records"`
	Total   int           `json:"total"`
}

var (
	historyPath string
	historyDB   *sql.DB
	historyOnce sync.Once
	historyErr  error
)

// SetHistoryPath overrides the history database location. Must be called
// before the first scoring run; later calls have no effect.
func SetHistoryPath(path string) {
	historyPath = path
}

// openHistoryDB opens (or creates) the SQLite score history database.
func openHistoryDB() (*sql.DB, error) {
	historyOnce.Do(func() {
		dbPath := historyPath
		if dbPath == "" {
			dir := filepath.Join(os.Getenv("HOME"), ".go_ats")
			if err := os.MkdirAll(dir, 0750); err != nil {
				historyErr = fmt.Errorf("history: mkdir %s: %w", dir, err)
				return
			}
			dbPath = filepath.Join(dir, "history.db")
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			historyErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initHistorySchema(db); err != nil {
			historyErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		historyDB = db
	})
	return historyDB, historyErr
}

// initHistorySchema creates the scores table if it doesn't exist.
func initHistorySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS scores (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		field             TEXT NOT NULL,
		overall_score     INTEGER NOT NULL,
		skills_score      INTEGER NOT NULL,
		format_score      INTEGER NOT NULL,
		keyword_score     INTEGER NOT NULL,
		content_score     INTEGER NOT NULL,
		found_skills      INTEGER NOT NULL,
		missing_skills    INTEGER NOT NULL,
		word_count        INTEGER NOT NULL,
		recommended_field TEXT,
		created_at        TEXT NOT NULL
	)`)
	return err
}

// RecordScore persists one scoring run. The resume text itself is never
// stored, only the numbers.
func RecordScore(_ context.Context, report *Report) (int64, error) {
	if report == nil {
		return 0, errors.New("history: nil report")
	}

	db, err := openHistoryDB()
	if err != nil {
		return 0, err
	}

	recommended := ""
	if report.FieldRecommendation != nil {
		recommended = report.FieldRecommendation.RecommendedField
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO scores (field, overall_score, skills_score, format_score, keyword_score,
		 content_score, found_skills, missing_skills, word_count, recommended_field, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.Field, report.OverallScore, report.SkillsScore, report.FormatScore,
		report.KeywordScore, report.ContentScore, len(report.FoundSkills),
		len(report.MissingSkills), report.FormatDetails.WordCount, recommended, now,
	)
	if err != nil {
		return 0, fmt.Errorf("history: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	return id, nil
}

// ListScoreHistory returns past scoring runs, newest first, optionally
// filtered by field.
func ListScoreHistory(_ context.Context, input ScoreHistoryListInput) (*ScoreHistoryResult, error) {
	db, err := openHistoryDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var rows *sql.Rows
	if input.Field != "" {
		rows, err = db.Query(
			`SELECT id, field, overall_score, skills_score, format_score, keyword_score,
			 content_score, found_skills, missing_skills, word_count, recommended_field, created_at
			 FROM scores WHERE field = ? ORDER BY id DESC LIMIT ?`,
			input.Field, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT id, field, overall_score, skills_score, format_score, keyword_score,
			 content_score, found_skills, missing_skills, word_count, recommended_field, created_at
			 FROM scores ORDER BY id DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var r ScoreRecord
		var recommended sql.NullString
		if err := rows.Scan(&r.ID, &r.Field, &r.OverallScore, &r.SkillsScore, &r.FormatScore,
			&r.KeywordScore, &r.ContentScore, &r.FoundSkills, &r.MissingSkills,
			&r.WordCount, &recommended, &r.CreatedAt); err != nil {
			continue
		}
		r.RecommendedField = recommended.String
		records = append(records, r)
	}

	var total int
	if input.Field != "" {
		db.QueryRow(`SELECT COUNT(*) FROM scores WHERE field = ?`, input.Field).Scan(&total) //nolint:errcheck
	} else {
		db.QueryRow(`SELECT COUNT(*) FROM scores`).Scan(&total) //nolint:errcheck
	}

	if records == nil {
		records = []ScoreRecord{}
	}
	return &ScoreHistoryResult{Records: records, Total: total}, nil
}
