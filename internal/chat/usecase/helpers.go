package usecase

import (
	"fmt"
	"sort"
	"strings"

	"customer-service-chatbot/internal/chat/repository"
)

// maxRowsInContext caps how many result rows are serialized into the
// prompt so a broad query cannot blow up the context window.
const maxRowsInContext = 20

// formatSnippet renders one guide snippet as a labeled context block.
func formatSnippet(index int, s repository.Snippet) string {
	source := s.Source
	if source == "" {
		source = "user guide"
	}
	return fmt.Sprintf("[Source %d: %s]\n%s", index, source, s.Text)
}

// formatRows serializes query results as one "column: value" line per
// column, one block per row. Columns are sorted so the output is stable.
func formatRows(rows []repository.Row) []string {
	if len(rows) == 0 {
		return []string{"No matching records found."}
	}
	if len(rows) > maxRowsInContext {
		rows = rows[:maxRowsInContext]
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		columns := make([]string, 0, len(row))
		for col := range row {
			columns = append(columns, col)
		}
		sort.Strings(columns)

		lines := make([]string, 0, len(columns))
		for _, col := range columns {
			lines = append(lines, fmt.Sprintf("%s: %v", col, row[col]))
		}
		out = append(out, strings.Join(lines, "\n"))
	}
	return out
}
