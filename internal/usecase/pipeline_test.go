package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SignalScanner/internal/domain"
)

type fakeSource struct {
	results []domain.SearchResult
	err     error
	block   bool
	queries []string
}

func (f *fakeSource) Fetch(ctx context.Context, queries []string) ([]domain.SearchResult, error) {
	f.queries = queries
	if f.block {
		<-ctx.Done()
		return f.results, fmt.Errorf("pause: %w", ctx.Err())
	}
	return f.results, f.err
}

var fixedNow = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func newTestPipeline(src *fakeSource, deadline time.Duration) *Pipeline {
	return NewPipeline(PipelineDeps{
		Source:   src,
		Deadline: deadline,
		Clock:    func() time.Time { return fixedNow },
	})
}

func TestPipelineRunEndToEnd(t *testing.T) {
	t.Parallel()

	src := &fakeSource{results: []domain.SearchResult{
		{Title: "Acme Corp raises $50 million in Series B funding", Snippet: "...investment round led by...", Backend: "duckduckgo"},
		{Title: "Unrelated Globex story about weather", Backend: "bing"},
	}}

	report, err := newTestPipeline(src, time.Second).Run(context.Background(), "  Acme Corp ")
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", report.Company)
	assert.Equal(t, PlanQueries("Acme Corp"), src.queries)
	assert.Equal(t, 2, report.ArticleCount)
	require.Len(t, report.Signals, 1)
	assert.Equal(t, "💰 Funding & Investment", report.Signals[0].Category.Name)
	assert.Equal(t, domain.ConfidenceHigh, report.Signals[0].Confidence)
	assert.Equal(t, 100, report.ReadinessScore)
	assert.Equal(t, fixedNow, report.GeneratedAt)
	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.Partial)
}

func TestPipelineRunNoMatches(t *testing.T) {
	t.Parallel()

	report, err := newTestPipeline(&fakeSource{}, time.Second).Run(context.Background(), "Zyxwvq123")
	require.NoError(t, err)

	assert.Empty(t, report.Signals)
	assert.Equal(t, 0, report.ReadinessScore)
	assert.Equal(t, 0, report.ArticleCount)
}

func TestPipelineRunRejectsEmptyCompany(t *testing.T) {
	t.Parallel()

	_, err := newTestPipeline(&fakeSource{}, time.Second).Run(context.Background(), "   ")
	assert.True(t, errors.Is(err, ErrEmptyCompany))
}

func TestPipelineRunWithoutSource(t *testing.T) {
	t.Parallel()

	_, err := NewPipeline(PipelineDeps{}).Run(context.Background(), "Acme")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyCompany))
}

func TestPipelineRunSurfacesSourceErrors(t *testing.T) {
	t.Parallel()

	_, err := newTestPipeline(&fakeSource{err: errors.New("no search backends configured")}, time.Second).
		Run(context.Background(), "Acme")
	assert.ErrorContains(t, err, "no search backends configured")
}

func TestPipelineRunDeadlineYieldsPartialReport(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		block: true,
		results: []domain.SearchResult{
			{Title: "Acme Corp appoints new CEO and CFO", Backend: "bing"},
		},
	}

	report, err := newTestPipeline(src, 20*time.Millisecond).Run(context.Background(), "Acme Corp")
	require.NoError(t, err)

	assert.True(t, report.Partial)
	assert.Equal(t, 1, report.ArticleCount)
	require.Len(t, report.Signals, 1)
	assert.Equal(t, "👤 Leadership Change", report.Signals[0].Category.Name)
	assert.GreaterOrEqual(t, report.ReadinessScore, 0)
	assert.LessOrEqual(t, report.ReadinessScore, 100)
}
