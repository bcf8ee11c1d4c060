package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pyhub-apps/pdfstructure/pkg/batch"
	"github.com/pyhub-apps/pdfstructure/pkg/classify"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for labels and metadata
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// boxStyle for the run summary
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatSummary renders the outcome of a batch run
func FormatSummary(w io.Writer, s *batch.Summary) {
	failedStyle := successStyle
	if s.Failed > 0 || s.WriteErrors > 0 {
		failedStyle = errorStyle
	}

	content := fmt.Sprintf("%s\n%s %d of %d\n%s %s\n%s %s\n%s %s",
		titleStyle.Render("PDF processing completed"),
		dimStyle.Render("Processed:"), s.Processed, s.Total,
		dimStyle.Render("Failed:"), failedStyle.Render(fmt.Sprint(s.Failed)),
		dimStyle.Render("Write errors:"), failedStyle.Render(fmt.Sprint(s.WriteErrors)),
		dimStyle.Render("Duration:"), s.Duration.Round(time.Millisecond).String(),
	)
	if s.Skipped > 0 {
		content += fmt.Sprintf("\n%s %s", dimStyle.Render("Skipped:"), warnStyle.Render(fmt.Sprint(s.Skipped)))
	}
	for _, result := range s.Failures() {
		err := result.Err
		if err == nil {
			err = result.WriteErr
		}
		content += fmt.Sprintf("\n%s %s", errorStyle.Render("✗ "+filepath.Base(result.Input)), dimStyle.Render(err.Error()))
	}

	fmt.Fprintln(w, boxStyle.Render(content))
}

func roleStyle(role classify.Role) lipgloss.Style {
	switch role {
	case classify.RoleTitle, classify.RoleHeading:
		return titleStyle
	case classify.RoleSubheading:
		return successStyle
	case classify.RoleFootnote, classify.RoleReference:
		return warnStyle
	}
	return dimStyle
}
