package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"itam/internal/listview"
	"itam/internal/models"
)

// assetRow adapts an asset to the list pipeline.
type assetRow struct {
	models.Asset
}

func (r assetRow) Field(key string) (listview.Value, bool) {
	switch key {
	case "id":
		return listview.Number(int64(r.ID)), true
	case "asset_id":
		return listview.Text(r.AssetID), true
	case "serial_number":
		return listview.Text(r.SerialNumber), true
	case "hardware_type":
		return listview.Text(r.HardwareType), true
	case "model_number":
		return listview.Text(r.ModelNumber), true
	case "owner_fullname":
		return listview.Text(r.OwnerFullname), true
	case "hostname":
		return listview.Text(r.Hostname), true
	case "p_number":
		return listview.Text(r.PNumber), true
	case "cadre":
		return listview.Text(r.Cadre), true
	case "department":
		return listview.Text(r.Department), true
	case "section":
		return listview.Text(r.Section), true
	case "building":
		return listview.Text(r.Building), true
	case "vendor":
		return listview.Text(r.Vendor), true
	case "po_number":
		return listview.Text(r.PONumber), true
	case "po_date":
		return listview.Date(r.PODate), true
	case "dc_number":
		return listview.Text(r.DCNumber), true
	case "dc_date":
		return listview.Date(r.DCDate), true
	case "assigned_date":
		return listview.Date(r.AssignedDate), true
	case "replacement_due_period":
		return listview.Text(r.ReplacementDuePeriod), true
	case "replacement_due_date":
		return listview.Date(r.ReplacementDueDate), true
	case "operational_status":
		return listview.Text(r.OperationalStatus), true
	case "disposition_status":
		return listview.Text(r.DispositionStatus), true
	}
	return listview.Value{}, false
}

func (r assetRow) SearchText() []string {
	return []string{
		r.AssetID,
		r.SerialNumber,
		r.HardwareType,
		r.OwnerFullname,
		r.Department,
		r.ModelNumber,
	}
}

func assetRows(assets []models.Asset) []assetRow {
	rows := make([]assetRow, len(assets))
	for i, a := range assets {
		rows[i] = assetRow{a}
	}
	return rows
}

// transferRow adapts a transfer record to the list pipeline.
type transferRow struct {
	models.AssetTransfer
}

func (r transferRow) Field(key string) (listview.Value, bool) {
	switch key {
	case "id":
		return listview.Number(int64(r.ID)), true
	case "transfer_date":
		d := r.TransferDate
		return listview.Date(&d), true
	case "asset_serial_number":
		return listview.Text(r.AssetSerialNumber), true
	case "hardware_type":
		return listview.Text(r.HardwareType), true
	case "previous_owner_fullname":
		return listview.Text(r.PreviousOwnerFullname), true
	case "new_owner_fullname":
		return listview.Text(r.NewOwnerFullname), true
	case "previous_department":
		return listview.Text(r.PreviousDepartment), true
	case "new_department":
		return listview.Text(r.NewDepartment), true
	case "previous_section":
		return listview.Text(r.PreviousSection), true
	case "new_section":
		return listview.Text(r.NewSection), true
	case "previous_p_number":
		return listview.Text(r.PreviousPNumber), true
	case "new_p_number":
		return listview.Text(r.NewPNumber), true
	case "transfer_reason":
		return listview.Text(r.TransferReason), true
	case "transferred_by_user_email":
		return listview.Text(r.TransferredByUserEmail), true
	}
	return listview.Value{}, false
}

func (r transferRow) SearchText() []string {
	return []string{
		r.AssetSerialNumber,
		r.PreviousOwnerFullname,
		r.NewOwnerFullname,
		r.PreviousDepartment,
		r.NewDepartment,
		r.TransferredByUserEmail,
		r.TransferReason,
	}
}

func transferRows(transfers []models.AssetTransfer) []transferRow {
	rows := make([]transferRow, len(transfers))
	for i, t := range transfers {
		rows[i] = transferRow{t}
	}
	return rows
}

// assetQuery builds the list query from the request parameters.
func assetQuery(c *gin.Context) listview.Query {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	direction := listview.Descending
	if strings.EqualFold(c.Query("sort_direction"), "asc") {
		direction = listview.Ascending
	}

	return listview.Query{
		Filters: map[string]string{
			"department":         c.Query("department"),
			"hardware_type":      c.Query("hardware_type"),
			"cadre":              c.Query("cadre"),
			"building":           c.Query("building"),
			"section":            c.Query("section"),
			"operational_status": c.Query("operational_status"),
			"disposition_status": c.Query("disposition_status"),
		},
		Ranges: map[string]listview.Range{
			"po_date":       dateRange(c, "po_date_from", "po_date_to"),
			"dc_date":       dateRange(c, "dc_date_from", "dc_date_to"),
			"assigned_date": dateRange(c, "assigned_date_from", "assigned_date_to"),
		},
		Search: c.Query("search"),
		Sort: listview.Sort{
			Key:       c.DefaultQuery("sort_key", "id"),
			Direction: direction,
		},
		Page:  page,
		Limit: limit,
	}
}

func transferQuery(c *gin.Context) listview.Query {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	direction := listview.Descending
	if strings.EqualFold(c.Query("sort_direction"), "asc") {
		direction = listview.Ascending
	}

	return listview.Query{
		Search: c.Query("search"),
		Sort: listview.Sort{
			Key:       c.DefaultQuery("sort_key", "transfer_date"),
			Direction: direction,
		},
		Page:  page,
		Limit: limit,
	}
}

func dateRange(c *gin.Context, fromParam, toParam string) listview.Range {
	r := listview.Range{}
	if t, ok := parseDateParam(c.Query(fromParam)); ok {
		r.From = t
	}
	if t, ok := parseDateParam(c.Query(toParam)); ok {
		// bound is inclusive of the whole day
		r.To = t.Add(24*time.Hour - time.Second)
	}
	return r
}

func parseDateParam(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
