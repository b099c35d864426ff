// Package export renders a journaled walk as a printable poem.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jung-kurt/gofpdf"

	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/storage"
)

// Page layout in millimetres.
const (
	marginLeft = 25.0
	marginTop  = 30.0
	lineHeight = 8.0
)

// Options tweak the document.
type Options struct {
	VariantTitle string // shown in the footer, falls back to the variant ID
	Compress     bool
}

// Lines returns the poem lines of a run in the order they were found.
// Indices outside the poem are skipped.
func Lines(run storage.Run, poem config.PoemConfig) []string {
	lines := make([]string, 0, len(run.Lines))
	for _, idx := range run.Lines {
		if idx < 0 || idx >= len(poem.Lines) {
			continue
		}
		lines = append(lines, poem.Lines[idx])
	}
	return lines
}

// WritePDF renders the run's poem to w.
func WritePDF(w io.Writer, run storage.Run, poem config.PoemConfig, opts Options) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(opts.Compress)
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetTitle(poem.Title, true)
	pdf.SetAuthor(poem.Author, true)
	pdf.SetCreator("poemwalk", false)
	if !run.CreatedAt.IsZero() {
		pdf.SetCreationDate(run.CreatedAt)
	}

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	variant := opts.VariantTitle
	if variant == "" {
		variant = run.Variant
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(140, 140, 140)
		pdf.CellFormat(0, 5, tr(footer(run, variant)), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Times", "B", 22)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(0, 12, tr(poem.Title), "", 1, "L", false, 0, "")

	if poem.Author != "" {
		pdf.SetFont("Times", "I", 13)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 8, tr(poem.Author), "", 1, "L", false, 0, "")
	}
	pdf.Ln(lineHeight)

	pdf.SetFont("Times", "", 13)
	pdf.SetTextColor(20, 20, 20)
	for _, line := range Lines(run, poem) {
		pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
	}

	if !run.Completed {
		pdf.Ln(lineHeight)
		pdf.SetFont("Times", "I", 11)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%d of %d lines found", run.Found, run.Total)), "", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: cannot render pdf: %w", err)
	}
	return nil
}

// WriteFile renders the run's poem to path, creating parent directories.
func WriteFile(path string, run storage.Run, poem config.PoemConfig, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: cannot create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: cannot create %s: %w", path, err)
	}

	if err := WritePDF(f, run, poem, opts); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// DefaultFileName is the suggested output name for a run.
func DefaultFileName(run storage.Run) string {
	return fmt.Sprintf("poemwalk_%s_%s.pdf", run.Variant, run.ShortID())
}

func footer(run storage.Run, variant string) string {
	s := fmt.Sprintf("walked in %s", variant)
	if run.Duration > 0 {
		s += " in " + strings.TrimSpace(humanize.RelTime(run.CreatedAt.Add(-run.Duration), run.CreatedAt, "", ""))
	}
	if !run.CreatedAt.IsZero() {
		s += ", " + run.CreatedAt.Format("2 January 2006")
	}
	return s
}
