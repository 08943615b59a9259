package presentation

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/dNmmer/SortFiles/internal/domain"
)

const (
	FailureWarning = "Некоторые файлы не удалось скопировать. Проверьте доступ и повторите."
	NothingFound   = "Файлы не найдены"
)

type Printer struct {
	Writer  io.Writer
	Verbose bool
	Color   bool
}

func ScanStatus(typeCount int) string {
	if typeCount == 0 {
		return NothingFound
	}
	return fmt.Sprintf("Найдено типов: %d", typeCount)
}

func CopyStatus(copied int) string {
	return fmt.Sprintf("Скопировано файлов: %d", copied)
}

func (p Printer) PrintScan(types []domain.FileType) {
	header := p.paint(color.Bold)
	header.Fprintln(p.Writer, "Типы файлов:")
	fmt.Fprintln(p.Writer)

	for _, line := range formatTypeLines(types) {
		fmt.Fprintln(p.Writer, line)
	}
	if len(types) > 0 {
		fmt.Fprintln(p.Writer)
	}
	p.paint(color.FgCyan).Fprintln(p.Writer, ScanStatus(len(types)))
}

func (p Printer) PrintCopy(outcome domain.CopyOutcome) {
	if outcome.HasFailures() {
		p.paint(color.FgYellow).Fprintln(p.Writer, FailureWarning)
		if p.Verbose {
			for _, failure := range outcome.Failures {
				fmt.Fprintf(p.Writer, "- %s: %s\n", failure.Path, failure.Message)
			}
		}
		fmt.Fprintln(p.Writer)
	}
	p.paint(color.FgGreen).Fprintln(p.Writer, CopyStatus(outcome.Succeeded))
}

func (p Printer) PrintError(message string) {
	p.paint(color.FgRed, color.Bold).Fprintln(p.Writer, message)
}

func (p Printer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// formatTypeLines renders "label  count" rows with the counts aligned.
func formatTypeLines(types []domain.FileType) []string {
	width := 0
	for _, t := range types {
		if n := utf8.RuneCountInString(t.Label); n > width {
			width = n
		}
	}

	lines := make([]string, 0, len(types))
	for _, t := range types {
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(t.Label))
		lines = append(lines, fmt.Sprintf("  %s%s  %d", t.Label, pad, t.Count))
	}
	return lines
}
