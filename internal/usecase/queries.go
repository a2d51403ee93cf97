package usecase

import (
	"fmt"
	"strings"
)

// DefaultQuerySuffixes are the topic variants probed for every company.
var DefaultQuerySuffixes = []string{
	"news",
	"funding investment",
	"expansion launch",
	"partnership acquisition",
	"hiring growth",
}

// PlanQueries builds one quoted search query per suffix.
func PlanQueries(company string) []string {
	return planQueries(company, DefaultQuerySuffixes)
}

func planQueries(company string, suffixes []string) []string {
	queries := make([]string, 0, len(suffixes))
	for _, suffix := range suffixes {
		queries = append(queries, strings.TrimSpace(fmt.Sprintf(`"%s" %s`, company, suffix)))
	}
	return queries
}
