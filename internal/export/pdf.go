package export

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jung-kurt/gofpdf"
)

// PDFMeta is the report title block.
type PDFMeta struct {
	Title       string
	GeneratedAt time.Time
	Total       int
	// FilterNote summarizes the active filters, empty when unfiltered.
	FilterNote string
}

const (
	pdfStartX    = 8.0
	pdfRowHeight = 6.0
	pdfBreakY    = 280.0 // A3 landscape is 297mm tall
)

// WritePDF writes a landscape multi-page table. The header row is redrawn on
// every page; body rows alternate shading; overlong cells are truncated with
// a trailing ellipsis.
func WritePDF(w io.Writer, records [][]string, meta PDFMeta) error {
	pdf := gofpdf.New("L", "mm", "A3", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 18)
	pdf.Text(14, 15, meta.Title)
	pdf.SetFontSize(10)
	pdf.Text(14, 25, "Generated on: "+meta.GeneratedAt.Format("02-01-2006 15:04:05"))
	pdf.Text(14, 32, "Total Assets: "+humanize.Comma(int64(meta.Total)))
	y := 39.0
	if meta.FilterNote != "" {
		pdf.Text(14, 38, "Filters: "+meta.FilterNote)
		y = 45.0
	}

	y = drawPDFHeader(pdf, y)
	pdf.SetFont("Helvetica", "", 5)
	pdf.SetTextColor(0, 0, 0)

	for rowIdx, rec := range records {
		if y+pdfRowHeight > pdfBreakY {
			pdf.AddPage()
			y = drawPDFHeader(pdf, 20)
			pdf.SetFont("Helvetica", "", 5)
			pdf.SetTextColor(0, 0, 0)
		}

		shaded := rowIdx%2 == 0
		if shaded {
			pdf.SetFillColor(249, 250, 251)
		}
		x := pdfStartX
		for colIdx, col := range AssetColumns {
			var cell string
			if colIdx < len(rec) {
				cell = truncateToWidth(pdf, rec[colIdx], col.PDFWidth-1)
			}
			pdf.SetXY(x, y)
			pdf.CellFormat(col.PDFWidth, pdfRowHeight, cell, "1", 0, "L", shaded, 0, "")
			x += col.PDFWidth
		}
		y += pdfRowHeight
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf generation: %w", err)
	}
	return pdf.Output(w)
}

func drawPDFHeader(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFillColor(55, 65, 81)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 6)
	x := pdfStartX
	for _, col := range AssetColumns {
		pdf.SetXY(x, y)
		pdf.CellFormat(col.PDFWidth, pdfRowHeight, col.Label, "1", 0, "C", true, 0, "")
		x += col.PDFWidth
	}
	return y + pdfRowHeight
}

// truncateToWidth cuts text that would overflow its column and appends an
// ellipsis.
func truncateToWidth(pdf *gofpdf.Fpdf, text string, maxWidth float64) string {
	if pdf.GetStringWidth(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if pdf.GetStringWidth(candidate) <= maxWidth {
			return candidate
		}
	}
	return "..."
}
