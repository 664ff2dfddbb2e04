// Package evaluate orchestrates the evaluation workflow: load a record,
// render its evaluation template, resolve a score, and persist the
// result.
package evaluate

import (
	"errors"
	"fmt"

	"github.com/promptreflex-io/promptreflex/internal/models"
	"github.com/promptreflex-io/promptreflex/internal/store"
	"github.com/promptreflex-io/promptreflex/internal/templates"
)

// ErrCancelled is returned when the user declines to overwrite an
// existing evaluation. It is a clean termination, not a failure.
var ErrCancelled = errors.New("evaluation cancelled")

// ConfirmFunc asks whether an already-evaluated record may be
// overwritten. The CLI supplies an interactive implementation; tests
// supply a stub.
type ConfirmFunc func(rec *models.Record) (bool, error)

// Evaluator runs one evaluation workflow invocation.
type Evaluator struct {
	Store     *store.Store
	Templates *templates.Loader
	Confirm   ConfirmFunc
}

// Options describes one invocation.
type Options struct {
	ID           string
	Response     string // Raw evaluation text; required unless TemplateOnly
	Score        *int   // Explicit score; required unless AutoExtract
	TemplateOnly bool   // Render the template and stop, no mutation
	Template     string // Template name; empty means the default
	AutoExtract  bool   // Extract the score from Response
}

// Result reports a completed workflow.
type Result struct {
	Record   *models.Record
	Rendered string // Rendered template text
	Score    int    // Final score; zero in template-only mode
}

// Run executes the workflow. Terminal states: a Result on success,
// ErrCancelled when the user declines an overwrite, or a typed error
// from the store/templates/record layers passed through unchanged.
func (e *Evaluator) Run(opts Options) (*Result, error) {
	rec, err := e.Store.Load(opts.ID)
	if err != nil {
		return nil, err
	}

	if opts.TemplateOnly {
		rendered, err := e.render(opts.Template, rec)
		if err != nil {
			return nil, err
		}
		return &Result{Record: rec, Rendered: rendered}, nil
	}

	if opts.Response == "" {
		return nil, fmt.Errorf("response is required unless --generate-template is used")
	}

	score, err := resolveScore(opts)
	if err != nil {
		return nil, err
	}

	if rec.IsEvaluated() {
		ok, err := e.Confirm(rec)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCancelled
		}
	}

	// The rendered template is kept on the record so the evaluation
	// request is reproducible later.
	rendered, err := e.render(opts.Template, rec)
	if err != nil {
		return nil, err
	}
	if err := rec.UpdateEvaluation(rendered, opts.Response, score); err != nil {
		return nil, err
	}
	if _, err := e.Store.Update(rec); err != nil {
		return nil, err
	}

	return &Result{Record: rec, Rendered: rendered, Score: score}, nil
}

func (e *Evaluator) render(name string, rec *models.Record) (string, error) {
	tmpl, err := e.Templates.Get(name)
	if err != nil {
		return "", err
	}
	return templates.Render(tmpl, rec), nil
}

func resolveScore(opts Options) (int, error) {
	if opts.AutoExtract {
		score, ok := ExtractScore(opts.Response)
		if !ok {
			return 0, fmt.Errorf("could not automatically extract score from response; please specify the score manually with --score")
		}
		return score, nil
	}
	if opts.Score == nil {
		return 0, fmt.Errorf("score is required unless --auto-extract-score is used")
	}
	if *opts.Score < 1 || *opts.Score > 5 {
		return 0, &models.ValidationError{Field: "score", Message: "Score must be between 1 and 5"}
	}
	return *opts.Score, nil
}
