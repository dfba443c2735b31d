// internal/results/render.go
package results

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"franchise-fit/internal/models"
)

const barWidth = 20

type styles struct {
	header lipgloss.Style
	high   lipgloss.Style
	mid    lipgloss.Style
	low    lipgloss.Style
	dim    lipgloss.Style
}

func newStyles() styles {
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		high:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		mid:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		low:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// scoreStyle follows the bar colours of the results page: green from 80,
// amber from 60, red below.
func (s styles) scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return s.high
	case score >= 60:
		return s.mid
	default:
		return s.low
	}
}

func (s styles) bar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * barWidth / 100
	return s.scoreStyle(score).Render(strings.Repeat("█", filled)) +
		s.dim.Render(strings.Repeat("░", barWidth-filled))
}

// RenderRanking prints one line per scored franchise, best first.
func RenderRanking(w io.Writer, scored []models.ScoredFranchise) {
	st := newStyles()
	fmt.Fprintln(w, st.header.Render(fmt.Sprintf("%-4s %-30s %-22s %-14s %5s", "#", "FRANCHISE", "CATEGORY", "INVESTMENT", "SCORE")))
	for _, line := range Summarize(scored) {
		fmt.Fprintf(w, "%-4d %-30s %-22s %-14s %s %s\n",
			line.Rank,
			truncate(line.Name, 30),
			truncate(line.Category, 22),
			line.Investment,
			st.scoreStyle(line.Score).Render(fmt.Sprintf("%5d", line.Score)),
			st.bar(line.Score),
		)
	}
	if len(scored) == 0 {
		fmt.Fprintln(w, st.dim.Render("no franchises in catalog"))
	}
}

type dimension struct {
	name  string
	score int
}

// RenderBreakdown prints the per-dimension scores. The classic model only
// scores four dimensions.
func RenderBreakdown(w io.Writer, sf models.ScoredFranchise) {
	st := newStyles()
	b := sf.ScoreBreakdown
	dims := []dimension{
		{"Financial", b.Financial},
		{"Category", b.Category},
		{"Style", b.Style},
		{"Risk", b.Risk},
	}
	if sf.Model != "classic" {
		dims = append(dims, dimension{"Experience", b.Experience}, dimension{"Growth", b.Growth})
	}

	fmt.Fprintf(w, "%s %s (%s model)\n",
		st.header.Render(fmt.Sprintf("FIT SCORE %d", sf.Score)), TierFor(sf.Score), sf.Model)
	for _, d := range dims {
		fmt.Fprintf(w, "  %-11s %3d %s\n", d.name, d.score, st.bar(d.score))
	}
}

// RenderDetail prints a franchise detail card.
func RenderDetail(w io.Writer, f models.Franchise, currentYear int) {
	st := newStyles()
	d := Describe(f)

	fmt.Fprintln(w, st.header.Render(f.Name))
	fmt.Fprintln(w, st.dim.Render(f.Category+" · "+f.Slug))
	if f.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, f.Description)
	}
	fmt.Fprintln(w)

	rows := [][2]string{
		{"Investment", d.Investment},
		{"Franchise fee", d.FranchiseFee},
		{"Royalty", d.Royalty},
		{"Ad fund", d.AdFund},
		{"Avg revenue", d.AvgRevenue},
		{"Units", fmt.Sprintf("%d (%s last year)", f.UnitCount, d.Growth)},
	}
	if age := AgeYears(f, currentYear); age > 0 {
		rows = append(rows, [2]string{"Founded", fmt.Sprintf("%d (%d years)", f.YearFounded, age)})
	}
	if f.Headquarters != "" {
		rows = append(rows, [2]string{"Headquarters", f.Headquarters})
	}
	if f.Website != "" {
		rows = append(rows, [2]string{"Website", f.Website})
	}
	if len(f.Tags) > 0 {
		rows = append(rows, [2]string{"Tags", strings.Join(f.Tags, ", ")})
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-14s %s\n", r[0], r[1])
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
