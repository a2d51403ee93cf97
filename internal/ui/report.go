package ui

import (
	"fmt"
	"io"
	"strings"

	"SignalScanner/internal/domain"
)

// RenderReport writes a terminal summary with at most limit signals.
func RenderReport(w io.Writer, report domain.Report, limit int) error {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Buying signals for %s", report.Company)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Readiness score: %s   Articles scanned: %d   Signals: %d\n",
		ScoreStyle.Render(fmt.Sprintf("%d/100", report.ReadinessScore)),
		report.ArticleCount,
		len(report.Signals))
	b.WriteString(DimStyle.Render(report.GeneratedAt.Format("02 Jan 2006, 15:04")))
	b.WriteString("\n")

	if report.Partial {
		b.WriteString(WarningStyle.Render("Scan deadline reached; results are partial."))
		b.WriteString("\n")
	}

	if len(report.Signals) == 0 {
		b.WriteString(DimStyle.Render("No buying signals found."))
		b.WriteString("\n")
	}

	for _, ev := range report.TopSignals(limit) {
		b.WriteString("\n")
		category := "Uncategorized"
		color := string(dimColor)
		if ev.Category != nil {
			category, color = ev.Category.Name, ev.Category.Color
		}
		fmt.Fprintf(&b, "[%s] %s  %s\n",
			Colored(ev.Confidence.Color(), string(ev.Confidence)),
			Colored(color, category),
			DimStyle.Render(fmt.Sprintf("score %d", ev.Score)))
		fmt.Fprintf(&b, "  %s\n", TitleStyle.Render(ev.Source.Title))
		if ev.Snippet != "" {
			fmt.Fprintf(&b, "  %s\n", ev.Snippet)
		}
		fmt.Fprintf(&b, "  %s\n", DimStyle.Render("Keywords: "+strings.Join(ev.Keywords, ", ")))
		if ev.Source.Link != "" {
			fmt.Fprintf(&b, "  %s\n", LinkStyle.Render(ev.Source.Link))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
