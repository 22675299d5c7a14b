package pdf

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"github.com/gompdf/pagelinks/internal/pagination"
	"github.com/gompdf/pagelinks/internal/render"
)

// Renderer handles rendering a page of items to PDF
type Renderer struct {
	FontFamily string
	FontSize   float64
	// Debug enables verbose logging
	Debug bool
}

// RenderOptions contains options for rendering
type RenderOptions struct {
	Title       string
	Author      string
	Subject     string
	Creator     string
	Producer    string
	Orientation string // "P" for portrait, "L" for landscape
}

// Page is the content of a rendered page: the visible item labels and the control
type Page struct {
	Heading string
	Info    pagination.Info
	Items   []string
	Entries []render.Entry
}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{
		FontFamily: "Helvetica",
		FontSize:   11,
	}
}

// Render writes page as a single-page PDF to w
func (r *Renderer) Render(w io.Writer, page Page, options RenderOptions) error {
	pdf := r.build(page, options)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// RenderFile writes page as a PDF file, creating the output directory if needed
func (r *Renderer) RenderFile(outputPath string, page Page, options RenderOptions) error {
	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	pdf := r.build(page, options)
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (r *Renderer) build(page Page, options RenderOptions) *fpdf.Fpdf {
	orient := options.Orientation
	if orient == "" {
		orient = "P"
	}

	pdf := fpdf.New(orient, "pt", "A4", "")
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetProducer(options.Producer, true)
	pdf.SetMargins(36, 36, 36)
	pdf.SetAutoPageBreak(false, 36)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	family := r.FontFamily
	if family == "" {
		family = "Helvetica"
	}
	size := r.FontSize
	if size <= 0 {
		size = 11
	}
	lineHeight := size * 1.5

	if page.Heading != "" {
		pdf.SetFont(family, "B", size*1.6)
		pdf.CellFormat(0, size*2.4, tr(page.Heading), "", 1, "L", false, 0, "")
	}

	pdf.SetFont(family, "", size*0.9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, lineHeight, tr(summary(page.Info)), "", 1, "L", false, 0, "")
	pdf.Ln(size * 0.5)

	pdf.SetFont(family, "", size)
	pdf.SetTextColor(0, 0, 0)
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	controlHeight := lineHeight * 2
	for i, item := range page.Items {
		if pdf.GetY()+lineHeight > pageHeight-bottom-controlHeight {
			if r.Debug {
				slog.Debug("pdf: items truncated", "shown", i, "total", len(page.Items))
			}
			break
		}
		pdf.MultiCell(0, lineHeight, tr(item), "B", "L", false)
	}

	pdf.SetY(pageHeight - bottom - controlHeight)
	r.drawControl(pdf, tr, page.Entries, family, size)

	return pdf
}

// drawControl draws the control entries on one line
func (r *Renderer) drawControl(pdf *fpdf.Fpdf, tr func(string) string, entries []render.Entry, family string, size float64) {
	height := size * 1.8
	for _, e := range entries {
		style := ""
		border := "1"
		fill := false
		switch {
		case e.Active:
			style = "B"
			fill = true
			pdf.SetFillColor(230, 230, 230)
			pdf.SetTextColor(0, 0, 0)
		case e.Disabled:
			pdf.SetTextColor(170, 170, 170)
		case e.Kind == render.EntryDivider:
			border = ""
			pdf.SetTextColor(110, 110, 110)
		default:
			pdf.SetTextColor(0, 0, 238)
		}
		pdf.SetFont(family, style, size)
		label := tr(e.Label)
		width := pdf.GetStringWidth(label) + size
		pdf.CellFormat(width, height, label, border, 0, "C", fill, 0, "")
		if r.Debug {
			slog.Debug("pdf: control entry", "label", e.Label, "page", e.Page, "active", e.Active)
		}
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(height)
}

// summary describes the item range shown on the page
func summary(info pagination.Info) string {
	if info.TotalItemCount == 0 {
		return fmt.Sprintf("No items, page %d of %d", info.CurrentPage+1, info.TotalPages)
	}
	return fmt.Sprintf("Items %d-%d of %d, page %d of %d",
		info.FirstItemIndex+1, info.LastItemIndex+1, info.TotalItemCount,
		info.CurrentPage+1, info.TotalPages)
}
