package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"union-engine/internal/diagnostic"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
)

func severityColor(s diagnostic.DiagnosticSeverity) *color.Color {
	switch s {
	case diagnostic.DiagnosticError:
		return errorColor
	case diagnostic.DiagnosticWarning:
		return warningColor
	default:
		return infoColor
	}
}

// PrintDiagnostic prints one finding prefixed by its severity.
func PrintDiagnostic(w io.Writer, d diagnostic.Diagnostic) {
	_, _ = severityColor(d.Severity).Fprintf(w, "%s: ", d.Severity)
	_, _ = fmt.Fprintln(w, d.String())
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

// PrintSummary prints the finding counts of a run.
func PrintSummary(w io.Writer, d *diagnostic.Diagnostics) {
	if d.Len() == 0 {
		PrintSuccess(w, "no union findings")
		return
	}

	clr := warningColor
	if d.HasErrors() {
		clr = errorColor
	}

	_, _ = clr.Fprintf(w, "%s, %s\n",
		PrintCount(len(d.Errors), "error", "errors"),
		PrintCount(len(d.Warnings), "warning", "warnings"))
}

// PrintTable prints rows under headers with padded columns.
func PrintTable(w io.Writer, headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	printRow := func(clr *color.Color, cells []string) {
		parts := make([]string, 0, len(colWidths))
		for i, width := range colWidths {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}

			parts = append(parts, fmt.Sprintf("%-*s", width, cell))
		}

		_, _ = clr.Fprintln(w, strings.TrimRight("  "+strings.Join(parts, "  "), " "))
	}

	printRow(headerColor, headers)

	separators := make([]string, len(colWidths))
	for i, width := range colWidths {
		separators[i] = strings.Repeat("-", width)
	}

	_, _ = fmt.Fprintln(w, "  "+strings.Join(separators, "  "))

	for _, row := range rows {
		printRow(valueColor, row)
	}
}

// PrintCount formats a count with its singular or plural noun.
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}

	return fmt.Sprintf("%d %s", count, plural)
}
