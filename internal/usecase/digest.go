package usecase

import (
	"fmt"
	"html"
	"strings"

	"SignalScanner/internal/domain"
)

// BuildDigest formats the top signals of report as a Telegram HTML message.
// Scraped text is escaped, so titles and links may carry any characters.
func BuildDigest(report domain.Report, limit int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>Buying signals: %s</b>\n", html.EscapeString(report.Company))
	fmt.Fprintf(&b, "Readiness: %d/100 (%d articles, %d signals)\n", report.ReadinessScore, report.ArticleCount, len(report.Signals))
	if report.Partial {
		b.WriteString("<i>partial scan</i>\n")
	}

	for _, ev := range report.TopSignals(limit) {
		category := ""
		if ev.Category != nil {
			category = ev.Category.Name
		}
		fmt.Fprintf(&b, "\n- [%s] %s\n", ev.Confidence, html.EscapeString(category))

		title := html.EscapeString(ev.Source.Title)
		if ev.Source.Link != "" {
			fmt.Fprintf(&b, "<a href=\"%s\">%s</a>\n", html.EscapeString(ev.Source.Link), title)
		} else {
			b.WriteString(title)
			b.WriteString("\n")
		}
	}

	return b.String()
}
