package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jung-kurt/gofpdf"
)

func TestWritePDF(t *testing.T) {
	records := make([][]string, 0, 60)
	for i := 0; i < 60; i++ {
		a := sampleAsset()
		a.ID = uint(i + 1)
		records = append(records, AssetRecord(a))
	}

	var buf bytes.Buffer
	err := WritePDF(&buf, records, PDFMeta{
		Title:       "Asset Inventory Report",
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Total:       len(records),
		FilterNote:  "department: IT",
	})
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header")
	}
	if buf.Len() < 1000 {
		t.Fatalf("suspiciously small PDF: %d bytes", buf.Len())
	}
}

func TestTruncateToWidth(t *testing.T) {
	pdf := gofpdf.New("L", "mm", "A3", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 5)

	const width = 23.0

	short := "laptop-alice"
	if got := truncateToWidth(pdf, short, width); got != short {
		t.Fatalf("short cell must pass through unchanged, got %q", got)
	}

	long := strings.Repeat("very-long-hostname-", 8)
	got := truncateToWidth(pdf, long, width)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("overflowing cell has no ellipsis: %q", got)
	}
	if len(got) >= len(long) {
		t.Fatalf("overflowing cell was not shortened: %q", got)
	}
	if w := pdf.GetStringWidth(got); w > width {
		t.Fatalf("truncated cell still overflows: %.2fmm > %.2fmm", w, width)
	}
}

// pdfPageCount counts page objects in the raw output. gofpdf writes object
// dictionaries uncompressed, so "/Type /Page" appears once per page plus
// once for the "/Type /Pages" tree node.
func pdfPageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestWritePDFMultiPageRepeatsHeader(t *testing.T) {
	records := make([][]string, 0, 120)
	for i := 0; i < 120; i++ {
		a := sampleAsset()
		a.ID = uint(i + 1)
		a.Hostname = strings.Repeat("very-long-hostname-", 8)
		records = append(records, AssetRecord(a))
	}

	var buf bytes.Buffer
	err := WritePDF(&buf, records, PDFMeta{
		Title:       "Asset Inventory Report",
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Total:       len(records),
	})
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}

	pages := pdfPageCount(buf.Bytes())
	if pages < 2 {
		t.Fatalf("120 rows must span multiple pages, got %d", pages)
	}

	// One row fits on one page; the extra pages carry their own header rows,
	// so the per-page overhead shows up as more than a row's worth of bytes.
	var single bytes.Buffer
	if err := WritePDF(&single, records[:1], PDFMeta{Title: "Asset Inventory Report", GeneratedAt: time.Now(), Total: 1}); err != nil {
		t.Fatalf("WritePDF single row: %v", err)
	}
	if pdfPageCount(single.Bytes()) != 1 {
		t.Fatalf("single row must fit on one page")
	}
	if buf.Len() <= single.Len() {
		t.Fatalf("multi-page output (%d bytes) not larger than single-page (%d bytes)", buf.Len(), single.Len())
	}
}

func TestWritePDFEmptySet(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, nil, PDFMeta{
		Title:       "Asset Inventory Report",
		GeneratedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("WritePDF with no records: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header")
	}
}
