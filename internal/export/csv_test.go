package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"itam/internal/models"
)

func sampleAsset() models.Asset {
	po := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return models.Asset{
		ID:                 7,
		AssetID:            "AST-007",
		SerialNumber:       "SN-12345",
		HardwareType:       "Laptop",
		ModelNumber:        "ThinkPad T14",
		OwnerFullname:      "Alice Mburu",
		Hostname:           "laptop-alice",
		PNumber:            "P-998",
		Cadre:              "Engineer",
		Department:         "IT",
		Section:            "Infrastructure",
		Building:           "HQ",
		Vendor:             "Lenovo",
		PONumber:           "PO-2024-01",
		PODate:             &po,
		OperationalStatus:  "Active",
		DispositionStatus:  "In Use",
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	a := sampleAsset()
	var buf bytes.Buffer
	if err := WriteCSV(&buf, [][]string{AssetRecord(a)}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output does not parse as CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 record, got %d rows", len(rows))
	}
	for i, row := range rows {
		if len(row) != len(AssetColumns) {
			t.Fatalf("row %d has %d columns, want %d", i, len(row), len(AssetColumns))
		}
	}
	if rows[0][0] != "ID" || rows[0][len(rows[0])-1] != "Disposition Status" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][2] != "SN-12345" {
		t.Fatalf("serial column = %q", rows[1][2])
	}
	if rows[1][14] != "15-01-2024" {
		t.Fatalf("po date column = %q, want DD-MM-YYYY", rows[1][14])
	}
}

func TestWriteCSVForceQuotesEveryField(t *testing.T) {
	a := sampleAsset()
	a.OwnerFullname = `Bob "Bobby" Kamau`

	var buf bytes.Buffer
	if err := WriteCSV(&buf, [][]string{AssetRecord(a)}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
			t.Fatalf("line %d is not fully quoted: %q", i, line)
		}
	}
	if !strings.Contains(lines[1], `"Bob ""Bobby"" Kamau"`) {
		t.Fatalf("embedded quotes not doubled: %q", lines[1])
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("quoted output does not parse: %v", err)
	}
	if rows[1][5] != `Bob "Bobby" Kamau` {
		t.Fatalf("owner round-trip = %q", rows[1][5])
	}
}

func TestWriteCSVEmptySet(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("header-only output does not parse: %v", err)
	}
	if len(rows) != 1 || len(rows[0]) != len(AssetColumns) {
		t.Fatalf("expected a single %d-column header row, got %v", len(AssetColumns), rows)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != "" {
		t.Fatalf("nil date = %q, want empty", got)
	}
	d := time.Date(2023, 12, 1, 10, 30, 0, 0, time.UTC)
	if got := FormatDate(&d); got != "01-12-2023" {
		t.Fatalf("FormatDate = %q", got)
	}
}
