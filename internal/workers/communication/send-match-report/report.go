// internal/workers/communication/send-match-report/report.go
package sendmatchreport

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"franchise-fit/internal/results"
)

var htmlReport = template.Must(template.New("report").Parse(`<html><body>
<h2>Your top {{len .}} franchise matches</h2>
<table>
<tr><th>#</th><th>Franchise</th><th>Category</th><th>Investment</th><th>Score</th></tr>
{{range .}}<tr><td>{{.Rank}}</td><td>{{.Name}}</td><td>{{.Category}}</td><td>{{.Investment}}</td><td>{{.Score}} ({{.Tier}})</td></tr>
{{end}}</table>
</body></html>`))

func renderText(lines []results.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your top %d franchise matches\n\n", len(lines))
	for _, l := range lines {
		fmt.Fprintf(&b, "%2d. %s (%s) %s: %d, %s\n", l.Rank, l.Name, l.Category, l.Investment, l.Score, l.Tier)
	}
	return b.String()
}

// renderSummary is the one-line topic message: the top match and how many
// more are in the emailed report.
func renderSummary(lines []results.Summary) string {
	if len(lines) == 0 {
		return "No franchise matches found"
	}
	top := lines[0]
	msg := fmt.Sprintf("Top match: %s (%d/100, %s)", top.Name, top.Score, top.Tier)
	if more := len(lines) - 1; more > 0 {
		msg += fmt.Sprintf(" and %d more", more)
	}
	return msg
}

func renderHTML(lines []results.Summary) (string, error) {
	var buf bytes.Buffer
	if err := htmlReport.Execute(&buf, lines); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".") && !strings.ContainsAny(email, " \t\r\n")
}
