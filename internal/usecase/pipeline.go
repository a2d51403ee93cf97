package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"SignalScanner/internal/domain"
	"SignalScanner/internal/infrastructure/metrics"
	"SignalScanner/internal/ports"
)

// DefaultDeadline bounds one pipeline run when none is configured.
const DefaultDeadline = 60 * time.Second

// ErrEmptyCompany is returned when Run receives a blank company name.
var ErrEmptyCompany = errors.New("company name required")

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source     ports.ResultSource
	Classifier *Classifier
	Logger     *slog.Logger
	Deadline   time.Duration
	Clock      func() time.Time
}

// Pipeline implements the signal discovery workflow.
type Pipeline struct {
	source     ports.ResultSource
	classifier *Classifier
	logger     *slog.Logger
	deadline   time.Duration
	clock      func() time.Time
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	p := &Pipeline{
		source:     deps.Source,
		classifier: deps.Classifier,
		logger:     deps.Logger,
		deadline:   deps.Deadline,
		clock:      deps.Clock,
	}
	if p.classifier == nil {
		p.classifier = NewClassifier(nil)
	}
	if p.deadline <= 0 {
		p.deadline = DefaultDeadline
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	return p
}

// Run plans queries, fetches results, classifies them and scores the company.
// A run cut short by its deadline still yields a report, flagged Partial.
func (p *Pipeline) Run(ctx context.Context, company string) (domain.Report, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return domain.Report{}, ErrEmptyCompany
	}
	if p.source == nil {
		metrics.RecordRun("error", 0)
		return domain.Report{}, fmt.Errorf("pipeline misconfigured: no result source")
	}

	runID := uuid.NewString()
	runCtx, cancel := context.WithTimeout(ctx, p.deadline)
	defer cancel()

	queries := PlanQueries(company)
	p.info("scan started", "run_id", runID, "company", company, "queries", len(queries))

	results, err := p.source.Fetch(runCtx, queries)
	partial := false
	if err != nil {
		if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			metrics.RecordRun("error", 0)
			return domain.Report{}, fmt.Errorf("fetch results: %w", err)
		}
		partial = true
		p.warn("scan cut short, reporting partial results", "run_id", runID, "error", err, "results", len(results))
	}

	signals := p.classifier.Classify(results, company)
	report := domain.Report{
		RunID:          runID,
		Company:        company,
		Signals:        signals,
		ArticleCount:   len(results),
		ReadinessScore: ReadinessScore(signals),
		GeneratedAt:    p.clock(),
		Partial:        partial,
	}

	status := "ok"
	if partial {
		status = "partial"
	}
	metrics.RecordRun(status, len(signals))
	p.info("scan finished", "run_id", runID, "articles", report.ArticleCount,
		"signals", len(signals), "readiness", report.ReadinessScore, "partial", partial)

	return report, nil
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
