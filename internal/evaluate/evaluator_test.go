package evaluate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptreflex-io/promptreflex/internal/models"
	"github.com/promptreflex-io/promptreflex/internal/store"
	"github.com/promptreflex-io/promptreflex/internal/templates"
)

const testTemplate = "Evaluate this:\n\nPROMPT:\n{{prompt}}\n\nRESPONSE:\n{{response}}\n"

type fixture struct {
	store     *store.Store
	evaluator *Evaluator
	confirmed bool // recorded by the confirm stub
}

// newFixture builds an evaluator over temp dirs with a pinned clock and
// a stubbed confirmation port.
func newFixture(t *testing.T, confirm bool) *fixture {
	t.Helper()

	day, err := time.Parse(models.DateFormat, "2025-05-17")
	require.NoError(t, err)
	s, err := store.New(t.TempDir(), store.WithClock(func() time.Time { return day }))
	require.NoError(t, err)

	tmplDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmplDir, templates.DefaultTemplateName), []byte(testTemplate), 0644))
	loader, err := templates.NewLoader(tmplDir)
	require.NoError(t, err)

	f := &fixture{store: s}
	f.evaluator = &Evaluator{
		Store:     s,
		Templates: loader,
		Confirm: func(rec *models.Record) (bool, error) {
			f.confirmed = true
			return confirm, nil
		},
	}
	return f
}

func (f *fixture) log(t *testing.T, prompt, response string) *models.Record {
	t.Helper()
	rec, err := models.NewRecord(f.store.GenerateID(), f.store.Today(), prompt, response, []string{"test"}, "")
	require.NoError(t, err)
	_, err = f.store.Save(rec)
	require.NoError(t, err)
	return rec
}

func intPtr(n int) *int { return &n }

func TestRunTemplateOnly(t *testing.T) {
	f := newFixture(t, true)
	rec := f.log(t, "Hello", "World")

	result, err := f.evaluator.Run(Options{ID: rec.ID, TemplateOnly: true})
	require.NoError(t, err)
	assert.Contains(t, result.Rendered, "PROMPT:\nHello")
	assert.Contains(t, result.Rendered, "RESPONSE:\nWorld")

	// No mutation: the stored record still has no score.
	got, err := f.store.Load(rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Score)
}

func TestRunExplicitScore(t *testing.T) {
	f := newFixture(t, true)
	rec := f.log(t, "Hello", "World")

	result, err := f.evaluator.Run(Options{
		ID:       rec.ID,
		Response: "Good response overall.",
		Score:    intPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Score)

	got, err := f.store.Load(rec.ID)
	require.NoError(t, err)
	require.True(t, got.IsEvaluated())
	assert.Equal(t, 4, *got.Score)
	assert.Equal(t, "Good response overall.", got.EvaluationResponse)
	assert.Contains(t, got.EvaluationPrompt, "PROMPT:\nHello")
	assert.False(t, f.confirmed, "confirmation asked for an unevaluated record")
}

func TestRunAutoExtract(t *testing.T) {
	f := newFixture(t, true)
	rec := f.log(t, "Hello", "World")

	result, err := f.evaluator.Run(Options{
		ID:          rec.ID,
		Response:    "Solid work.\nScore: 5",
		AutoExtract: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Score)

	got, err := f.store.Load(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, *got.Score)
}

func TestRunAutoExtractFailure(t *testing.T) {
	f := newFixture(t, true)
	rec := f.log(t, "Hello", "World")

	_, err := f.evaluator.Run(Options{
		ID:          rec.ID,
		Response:    "No score here",
		AutoExtract: true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not automatically extract score")

	got, _ := f.store.Load(rec.ID)
	assert.Nil(t, got.Score)
}

func TestRunMissingRecord(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.evaluator.Run(Options{ID: "2025-05-17-099", Response: "x", Score: intPtr(3)})
	var nfe *models.NotFoundError
	assert.True(t, errors.As(err, &nfe))
}

func TestRunMissingResponse(t *testing.T) {
	f := newFixture(t, true)
	rec := f.log(t, "Hello", "World")

	_, err := f.evaluator.Run(Options{ID: rec.ID, Score: intPtr(3)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response is required")
}

func TestRunMissingScore(t *testing.T) {
	f := newFixture(t, true)
	rec := f.log(t, "Hello", "World")

	_, err := f.evaluator.Run(Options{ID: rec.ID, Response: "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "score is required")
}

func TestRunScoreOutOfRange(t *testing.T) {
	f := newFixture(t, true)
	rec := f.log(t, "Hello", "World")

	_, err := f.evaluator.Run(Options{ID: rec.ID, Response: "text", Score: intPtr(6)})
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Score must be between 1 and 5", err.Error())
}

func TestRunOverwriteConfirmed(t *testing.T) {
	f := newFixture(t, true)
	rec := f.log(t, "Hello", "World")
	require.NoError(t, rec.UpdateEvaluation("old prompt", "Score: 3", 3))
	_, err := f.store.Update(rec)
	require.NoError(t, err)

	result, err := f.evaluator.Run(Options{ID: rec.ID, Response: "Score: 5\nNew evaluation.", Score: intPtr(5)})
	require.NoError(t, err)
	assert.True(t, f.confirmed)
	assert.Equal(t, 5, result.Score)

	got, err := f.store.Load(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, *got.Score)
	assert.Equal(t, "Score: 5\nNew evaluation.", got.EvaluationResponse)
}

func TestRunOverwriteDeclined(t *testing.T) {
	f := newFixture(t, false)
	rec := f.log(t, "Hello", "World")
	require.NoError(t, rec.UpdateEvaluation("old prompt", "Score: 3\nReasoning: Average", 3))
	_, err := f.store.Update(rec)
	require.NoError(t, err)

	_, err = f.evaluator.Run(Options{ID: rec.ID, Response: "Score: 5\nNew evaluation.", Score: intPtr(5)})
	require.ErrorIs(t, err, ErrCancelled)
	assert.True(t, f.confirmed)

	// Decline leaves the file untouched.
	got, err := f.store.Load(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, *got.Score)
	assert.Equal(t, "Score: 3\nReasoning: Average", got.EvaluationResponse)
}

func TestRunCustomTemplate(t *testing.T) {
	f := newFixture(t, true)
	rec := f.log(t, "Hello", "World")

	custom := "Custom template. PROMPT: {{prompt}}, RESPONSE: {{response}}"
	require.NoError(t, os.WriteFile(filepath.Join(f.evaluator.Templates.Dir(), "custom_template.txt"), []byte(custom), 0644))

	result, err := f.evaluator.Run(Options{ID: rec.ID, TemplateOnly: true, Template: "custom_template.txt"})
	require.NoError(t, err)
	assert.Equal(t, "Custom template. PROMPT: Hello, RESPONSE: World", result.Rendered)
}

func TestRunMissingTemplate(t *testing.T) {
	f := newFixture(t, true)
	rec := f.log(t, "Hello", "World")

	_, err := f.evaluator.Run(Options{ID: rec.ID, TemplateOnly: true, Template: "nope.txt"})
	var nfe *models.NotFoundError
	assert.True(t, errors.As(err, &nfe))
}
