// Package export serializes a filtered asset set into downloadable report
// files. All formats share one fixed column order; export always operates on
// the full filtered set, never a single page.
package export

import (
	"strconv"
	"time"

	"itam/internal/models"
)

type Column struct {
	Key       string
	Label     string
	PDFWidth  float64 // mm
	XLSXWidth float64 // characters
}

// AssetColumns is the fixed 22-column report layout.
var AssetColumns = []Column{
	{"id", "ID", 8, 8},
	{"asset_id", "Asset ID", 16, 12},
	{"serial_number", "Serial Number", 20, 15},
	{"hardware_type", "Hardware Type", 16, 15},
	{"model_number", "Model Number", 18, 15},
	{"owner_fullname", "Owner Name", 20, 15},
	{"hostname", "Hostname", 24, 20},
	{"p_number", "P Number", 16, 12},
	{"cadre", "Cadre", 16, 15},
	{"department", "Department", 16, 15},
	{"section", "Section", 14, 15},
	{"building", "Building", 16, 15},
	{"vendor", "Vendor", 20, 20},
	{"po_number", "PO Number", 16, 15},
	{"po_date", "PO Date", 14, 12},
	{"dc_number", "DC Number", 16, 15},
	{"dc_date", "DC Date", 14, 12},
	{"assigned_date", "Assigned Date", 14, 12},
	{"replacement_due_period", "Replacement Due Period", 20, 20},
	{"replacement_due_date", "Replacement Due Date", 16, 18},
	{"operational_status", "Operational Status", 18, 15},
	{"disposition_status", "Disposition Status", 18, 15},
}

// FormatDate renders report dates as DD-MM-YYYY. Missing dates render empty.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("02-01-2006")
}

// AssetRecord flattens an asset into the fixed column order.
func AssetRecord(a models.Asset) []string {
	return []string{
		strconv.FormatUint(uint64(a.ID), 10),
		a.AssetID,
		a.SerialNumber,
		a.HardwareType,
		a.ModelNumber,
		a.OwnerFullname,
		a.Hostname,
		a.PNumber,
		a.Cadre,
		a.Department,
		a.Section,
		a.Building,
		a.Vendor,
		a.PONumber,
		FormatDate(a.PODate),
		a.DCNumber,
		FormatDate(a.DCDate),
		FormatDate(a.AssignedDate),
		a.ReplacementDuePeriod,
		FormatDate(a.ReplacementDueDate),
		a.OperationalStatus,
		a.DispositionStatus,
	}
}

func headerLabels() []string {
	labels := make([]string, len(AssetColumns))
	for i, col := range AssetColumns {
		labels[i] = col.Label
	}
	return labels
}
