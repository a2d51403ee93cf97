package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SignalScanner/internal/domain"
)

type stubAnalyzer struct {
	report  domain.Report
	err     error
	company string
}

func (s *stubAnalyzer) Run(_ context.Context, company string) (domain.Report, error) {
	s.company = company
	return s.report, s.err
}

func sampleReport() domain.Report {
	cats := domain.Taxonomy()
	signal := func(title string, score int) domain.SignalEvent {
		return domain.SignalEvent{
			Category:   &cats[1],
			Confidence: domain.ConfidenceFor(score),
			Keywords:   []string{"funding"},
			Score:      score,
			Snippet:    "snippet",
			Source:     domain.SearchResult{Title: title, Link: "https://news.example", Published: "1d ago", Backend: "bing"},
		}
	}

	return domain.Report{
		RunID:          "run-1",
		Company:        "Acme Corp",
		Signals:        []domain.SignalEvent{signal("first", 20), signal("second", 8), signal("third", 4)},
		ArticleCount:   12,
		ReadinessScore: 100,
		GeneratedAt:    time.Date(2026, time.October, 19, 9, 5, 0, 0, time.UTC),
	}
}

func doAnalyze(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	NewServer(h).ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeReturnsReport(t *testing.T) {
	t.Parallel()

	analyzer := &stubAnalyzer{report: sampleReport()}
	rec := doAnalyze(t, NewHandler(analyzer, 2, nil), `{"company": " Acme Corp "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Acme Corp", analyzer.company)

	var resp ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Acme Corp", resp.Company)
	assert.Equal(t, 100, resp.ReadinessScore)
	assert.Equal(t, 12, resp.TotalArticles)
	assert.Equal(t, "19 Oct 2026, 09:05", resp.Timestamp)
	require.Len(t, resp.Signals, 2, "signals are truncated at the boundary")
	assert.Equal(t, "💰 Funding & Investment", resp.Signals[0].Category)
	assert.Equal(t, "#ffcc00", resp.Signals[0].Color)
	assert.Equal(t, "High", resp.Signals[0].Confidence)
	assert.Equal(t, "#00ff88", resp.Signals[0].ConfidenceColor)
	assert.Equal(t, "bing", resp.Signals[0].Source)
	assert.Equal(t, "1d ago", resp.Signals[0].Date)
}

func TestAnalyzeRejectsMissingCompany(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{}`, `{"company": "   "}`, `{"company":`, ``} {
		analyzer := &stubAnalyzer{}
		rec := doAnalyze(t, NewHandler(analyzer, 0, nil), body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"Company name required"}`, rec.Body.String())
		assert.Empty(t, analyzer.company, "pipeline must not run")
	}
}

func TestAnalyzeHidesInternalErrors(t *testing.T) {
	t.Parallel()

	analyzer := &stubAnalyzer{err: errors.New("pipeline misconfigured: no result source")}
	rec := doAnalyze(t, NewHandler(analyzer, 0, nil), `{"company":"Acme"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "misconfigured")
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestHealthAndMetrics(t *testing.T) {
	t.Parallel()

	server := NewServer(NewHandler(&stubAnalyzer{}, 0, nil))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNewReportResponseKeepsAllWhenUnlimited(t *testing.T) {
	t.Parallel()

	resp := NewReportResponse(sampleReport(), 0)
	assert.Len(t, resp.Signals, 3)
	assert.Equal(t, "run-1", resp.RunID)
}

type panickingAnalyzer struct{}

func (panickingAnalyzer) Run(context.Context, string) (domain.Report, error) {
	panic("classifier exploded")
}

func TestAnalyzeRecoversPanicAsErrorResponse(t *testing.T) {
	t.Parallel()

	rec := doAnalyze(t, NewHandler(panickingAnalyzer{}, 0, nil), `{"company":"Acme"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"analysis failed, please retry later"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "exploded")
}

func TestRoutingErrorsUseErrorResponse(t *testing.T) {
	t.Parallel()

	server := NewServer(NewHandler(&stubAnalyzer{}, 0, nil))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
}
