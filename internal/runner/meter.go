package runner

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/projectdiscovery/guessx"
)

var (
	scoreLabels = []string{"too guessable", "very guessable", "somewhat guessable", "safely unguessable", "very unguessable"}
	scoreColors = []lipgloss.Color{"#d7263d", "#f46036", "#e3b505", "#8fc93a", "#1b998b"}

	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	passStyle    = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f46036"))
	hintStyle    = lipgloss.NewStyle().Faint(true).PaddingLeft(2)
)

const meterCell = 4

// RenderMeter draws a colored strength bar with crack times and feedback
func RenderMeter(res *guessx.Result) string {
	score := res.Score
	if score < 0 {
		score = 0
	}
	if score >= len(scoreLabels) {
		score = len(scoreLabels) - 1
	}
	filled := (score + 1) * meterCell
	color := lipgloss.NewStyle().Foreground(scoreColors[score])
	bar := color.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", len(scoreLabels)*meterCell-filled))

	lines := []string{
		passStyle.Render(res.Password),
		bar + " " + color.Render(scoreLabels[score]) + " " + emptyStyle.Render("("+res.Patterns()+")"),
	}
	for _, ct := range res.CrackTimes {
		lines = append(lines, hintStyle.Render(ct.Scenario+": "+ct.Display))
	}
	if res.Feedback != nil {
		if res.Feedback.Warning != "" {
			lines = append(lines, warningStyle.Render(res.Feedback.Warning))
		}
		for _, s := range res.Feedback.Suggestions {
			lines = append(lines, hintStyle.Render("- "+s))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// FormatResult renders one result in the selected output format, without
// a trailing newline
func (o *Options) FormatResult(res *guessx.Result) (string, error) {
	switch {
	case o.JSON:
		bin, err := res.JSON()
		if err != nil {
			return "", err
		}
		return string(bin), nil
	case o.Meter:
		return RenderMeter(res), nil
	}
	return res.String(), nil
}
