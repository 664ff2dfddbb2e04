// Package models defines the domain types for PromptReflex.
package models

import "time"

// DateFormat is the wire format for record dates and the date part of IDs.
const DateFormat = "2006-01-02"

// Record represents one logged prompt/response interaction.
// This corresponds to the <id>.json files in the prompts directory,
// which are the single source of truth; in-memory instances are
// transient projections within one command invocation.
type Record struct {
	ID                 string   `json:"id"`   // YYYY-MM-DD-NNN
	Date               string   `json:"date"` // YYYY-MM-DD
	Prompt             string   `json:"prompt"`
	Response           string   `json:"response"`
	Tags               []string `json:"tags"`
	Notes              string   `json:"notes"`
	EvaluationPrompt   string   `json:"evaluation_prompt,omitempty"`
	EvaluationResponse string   `json:"evaluation_response,omitempty"`
	Score              *int     `json:"score,omitempty"` // 1-5 when set
}

// NewRecord creates a record with the evaluation fields unset.
func NewRecord(id, date, prompt, response string, tags []string, notes string) (*Record, error) {
	r := &Record{
		ID:       id,
		Date:     date,
		Prompt:   prompt,
		Response: response,
		Tags:     tags,
		Notes:    notes,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the record invariants. Load paths call this on data
// read from disk, so stored files violating an invariant surface the
// same errors as bad construction arguments.
func (r *Record) Validate() error {
	if r.Score != nil && (*r.Score < 1 || *r.Score > 5) {
		return &ValidationError{Field: "score", Message: "Score must be between 1 and 5"}
	}
	if r.Date != "" {
		if _, err := time.Parse(DateFormat, r.Date); err != nil {
			return &ValidationError{Field: "date", Message: "Date must be in format YYYY-MM-DD"}
		}
	}
	return nil
}

// IsEvaluated returns true if a score has been attached.
func (r *Record) IsEvaluated() bool {
	return r.Score != nil
}

// UpdateEvaluation sets all three evaluation fields at once. The record
// is left unchanged if the score is out of range.
func (r *Record) UpdateEvaluation(evaluationPrompt, evaluationResponse string, score int) error {
	if score < 1 || score > 5 {
		return &ValidationError{Field: "score", Message: "Score must be between 1 and 5"}
	}
	r.EvaluationPrompt = evaluationPrompt
	r.EvaluationResponse = evaluationResponse
	r.Score = &score
	return nil
}
