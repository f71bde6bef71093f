package renderer

import "github.com/etnz/cashbook"

// Summary renders the totals of a summary as markdown.
func Summary(s cashbook.Summary) string {
	partials := map[string]string{
		"summary_totals": "summary_totals.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
