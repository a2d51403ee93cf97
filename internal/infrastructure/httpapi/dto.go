package httpapi

import (
	"time"

	"SignalScanner/internal/domain"
)

// TimestampLayout is the human-readable report time format.
const TimestampLayout = "02 Jan 2006, 15:04"

// AnalyzeRequest is the POST /analyze body.
type AnalyzeRequest struct {
	Company string `json:"company"`
}

// SignalResponse is the wire form of a classified signal.
type SignalResponse struct {
	Category        string   `json:"category"`
	Color           string   `json:"color"`
	Confidence      string   `json:"confidence"`
	ConfidenceColor string   `json:"confidence_color"`
	Title           string   `json:"title"`
	Snippet         string   `json:"snippet"`
	Link            string   `json:"link"`
	Date            string   `json:"date"`
	Source          string   `json:"source"`
	Keywords        []string `json:"keywords"`
	Score           int      `json:"score"`
}

// ReportResponse is the wire form of a Report.
type ReportResponse struct {
	RunID          string           `json:"run_id"`
	Company        string           `json:"company"`
	Signals        []SignalResponse `json:"signals"`
	TotalArticles  int              `json:"total_articles"`
	ReadinessScore int              `json:"readiness_score"`
	GeneratedAt    time.Time        `json:"generated_at"`
	Timestamp      string           `json:"timestamp"`
	Partial        bool             `json:"partial"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewReportResponse converts report, keeping at most limit signals (0 keeps all).
func NewReportResponse(report domain.Report, limit int) ReportResponse {
	top := report.TopSignals(limit)
	signals := make([]SignalResponse, 0, len(top))
	for _, ev := range top {
		signals = append(signals, newSignalResponse(ev))
	}

	return ReportResponse{
		RunID:          report.RunID,
		Company:        report.Company,
		Signals:        signals,
		TotalArticles:  report.ArticleCount,
		ReadinessScore: report.ReadinessScore,
		GeneratedAt:    report.GeneratedAt,
		Timestamp:      report.GeneratedAt.Format(TimestampLayout),
		Partial:        report.Partial,
	}
}

func newSignalResponse(ev domain.SignalEvent) SignalResponse {
	resp := SignalResponse{
		Confidence:      string(ev.Confidence),
		ConfidenceColor: ev.Confidence.Color(),
		Title:           ev.Source.Title,
		Snippet:         ev.Snippet,
		Link:            ev.Source.Link,
		Date:            ev.Source.Published,
		Source:          ev.Source.Backend,
		Keywords:        ev.Keywords,
		Score:           ev.Score,
	}
	if ev.Category != nil {
		resp.Category = ev.Category.Name
		resp.Color = ev.Category.Color
	}
	return resp
}
