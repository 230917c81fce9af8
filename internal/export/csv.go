package export

import (
	"bufio"
	"io"
	"strings"
)

// WriteCSV writes the header row plus one row per record. Every field is
// wrapped in double quotes with internal quotes doubled, so the output parses
// with any RFC 4180 reader. Zero records still yields a valid header-only
// file.
func WriteCSV(w io.Writer, records [][]string) error {
	bw := bufio.NewWriter(w)

	if err := writeCSVLine(bw, headerLabels()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writeCSVLine(bw, rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeCSVLine(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(f, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
