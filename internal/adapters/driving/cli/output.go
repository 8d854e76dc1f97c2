package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
)

// reportDurationUnit is the granularity durations are rounded to in
// plain output.
const reportDurationUnit = time.Millisecond

// styles holds the lipgloss styles used by report output.
type styles struct {
	Title     lipgloss.Style
	Module    lipgloss.Style
	Layer     lipgloss.Style
	Violation lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style
}

// newStyles builds the output styles. When colour is off every style
// is a bare passthrough, so the same rendering path serves pipes and
// terminals alike.
func newStyles(colour bool) *styles {
	if !colour {
		plain := lipgloss.NewStyle()
		return &styles{
			Title:     plain,
			Module:    plain,
			Layer:     plain,
			Violation: plain,
			Success:   plain,
			Muted:     plain,
		}
	}

	return &styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Module:    lipgloss.NewStyle().Bold(true),
		Layer:     lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		Violation: lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// useColour decides whether to emit styled output: only when stdout is
// a terminal and the user has not opted out.
func useColour(noColour bool) bool {
	if noColour {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// printReport renders a check report in plain text form.
func printReport(cmd *cobra.Command, s *styles, report *domain.Report) {
	cmd.Println(s.Muted.Render(fmt.Sprintf(
		"Checked %d modules, %d references in %s (%s)",
		report.ModuleCount, report.EdgeCount, report.Duration.Round(reportDurationUnit), report.Language,
	)))
	cmd.Println()

	if report.Clean() {
		cmd.Println(s.Success.Render("No violations found."))
		return
	}

	for _, v := range report.Violations {
		cmd.Printf("  %s %s %s %s\n",
			s.Module.Render(v.FromModule),
			s.Layer.Render("("+v.FromLayer.String()+")"),
			s.Violation.Render("->"),
			s.Module.Render(v.ToModule)+" "+s.Layer.Render("("+v.ToLayer.String()+")"),
		)
	}
	cmd.Println()

	word := "violations"
	if len(report.Violations) == 1 {
		word = "violation"
	}
	cmd.Println(s.Violation.Render(fmt.Sprintf("%d %s found.", len(report.Violations), word)))
}

// printReportJSON renders a check report as indented JSON.
func printReportJSON(cmd *cobra.Command, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
