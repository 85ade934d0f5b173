// Package observability provides logging setup and formatted output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/company-scraper/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the scrape command
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// PrintProfile outputs a human-readable summary of a scraped company profile.
func (p *Printer) PrintProfile(profile *types.CompanyProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.CompanyName))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", profile.Industry))
	sb.WriteString(fmt.Sprintf("Size:     %s\n", profile.IndustrySize))
	sb.WriteString(fmt.Sprintf("Tagline:  %s\n", profile.Tagline))
	sb.WriteString("\n")

	if len(profile.Locations) > 0 {
		sb.WriteString("Locations:\n")
		count := min(len(profile.Locations), maxItemsToShow)
		for i := 0; i < count; i++ {
			loc := profile.Locations[i]
			if loc.City != nil {
				sb.WriteString(fmt.Sprintf("  • %s, %s\n", *loc.City, loc.Country))
			} else {
				sb.WriteString(fmt.Sprintf("  • %s\n", loc.Country))
			}
		}
		if len(profile.Locations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Locations)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "Emails", profile.ContactInfo.Emails)
	writeList(&sb, "Phones", profile.ContactInfo.Phones)

	p.printBox("COMPANY PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDiagnostics outputs the industry scores and page signals behind a profile.
func (p *Printer) PrintDiagnostics(diag *types.Diagnostics) {
	if diag == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("HTTP status: %d", diag.StatusCode))
	if diag.Rendered {
		sb.WriteString(" (rendered)")
	}
	sb.WriteString("\n")
	if diag.Language != "" {
		sb.WriteString(fmt.Sprintf("Language:    %s\n", diag.Language))
	}
	if diag.SiteName != "" {
		sb.WriteString(fmt.Sprintf("Site name:   %s\n", diag.SiteName))
	}
	sb.WriteString(fmt.Sprintf("Entities:    %d\n", len(diag.Entities)))

	if len(diag.IndustryScores) > 0 {
		sb.WriteString("\nIndustry scores:\n")
		count := min(len(diag.IndustryScores), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := diag.IndustryScores[i]
			sb.WriteString(fmt.Sprintf("  %-20s %3d\n", s.Industry, s.Score))
		}
		if len(diag.IndustryScores) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(diag.IndustryScores)-maxItemsToShow))
		}
	}

	p.printBox("DIAGNOSTICS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
