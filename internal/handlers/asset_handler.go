package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"itam/internal/database"
	"itam/internal/listview"
	"itam/internal/models"
)

// assetPayload is the wire shape for create/update. Dates arrive as
// YYYY-MM-DD strings from the form layer.
type assetPayload struct {
	AssetID              string `json:"asset_id"`
	SerialNumber         string `json:"serial_number"`
	HardwareType         string `json:"hardware_type"`
	ModelNumber          string `json:"model_number"`
	OwnerFullname        string `json:"owner_fullname"`
	Hostname             string `json:"hostname"`
	PNumber              string `json:"p_number"`
	Cadre                string `json:"cadre"`
	Department           string `json:"department"`
	Section              string `json:"section"`
	Building             string `json:"building"`
	Vendor               string `json:"vendor"`
	PONumber             string `json:"po_number"`
	PODate               string `json:"po_date"`
	DCNumber             string `json:"dc_number"`
	DCDate               string `json:"dc_date"`
	AssignedDate         string `json:"assigned_date"`
	ReplacementDuePeriod string `json:"replacement_due_period"`
	ReplacementDueDate   string `json:"replacement_due_date"`
	OperationalStatus    string `json:"operational_status"`
	DispositionStatus    string `json:"disposition_status"`
	// IsCommon marks shared equipment that has no individual owner; the
	// owner fields are then optional.
	IsCommon bool `json:"is_common"`
}

func (p assetPayload) validate() error {
	required := []struct {
		value string
		label string
	}{
		{p.SerialNumber, "Serial Number"},
		{p.HardwareType, "Hardware Type"},
		{p.Cadre, "Cadre"},
		{p.Department, "Department"},
		{p.OperationalStatus, "Operational Status"},
		{p.DispositionStatus, "Disposition Status"},
	}
	if !p.IsCommon {
		required = append(required,
			struct{ value, label string }{p.OwnerFullname, "Owner Fullname"},
			struct{ value, label string }{p.Hostname, "Hostname"},
			struct{ value, label string }{p.PNumber, "P Number"},
		)
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.label)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("The following fields are required: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (p assetPayload) apply(a *models.Asset) {
	a.AssetID = strings.TrimSpace(p.AssetID)
	a.SerialNumber = strings.TrimSpace(p.SerialNumber)
	a.HardwareType = p.HardwareType
	a.ModelNumber = p.ModelNumber
	a.OwnerFullname = strings.TrimSpace(p.OwnerFullname)
	a.Hostname = strings.TrimSpace(p.Hostname)
	a.PNumber = strings.TrimSpace(p.PNumber)
	a.Cadre = p.Cadre
	a.Department = p.Department
	a.Section = p.Section
	a.Building = p.Building
	a.Vendor = p.Vendor
	a.PONumber = p.PONumber
	a.PODate = parsePayloadDate(p.PODate)
	a.DCNumber = p.DCNumber
	a.DCDate = parsePayloadDate(p.DCDate)
	a.AssignedDate = parsePayloadDate(p.AssignedDate)
	a.ReplacementDuePeriod = p.ReplacementDuePeriod
	a.ReplacementDueDate = parsePayloadDate(p.ReplacementDueDate)
	a.OperationalStatus = p.OperationalStatus
	a.DispositionStatus = p.DispositionStatus
}

func parsePayloadDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func CreateAsset(c *gin.Context) {
	var payload assetPayload
	if err := c.BindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := payload.validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.Asset
	if err := database.DB.Where("serial_number = ?", strings.TrimSpace(payload.SerialNumber)).First(&existing).Error; err == nil {
		respondError(c, http.StatusConflict, "Serial number already exists")
		return
	}

	var asset models.Asset
	payload.apply(&asset)

	if err := database.DB.Create(&asset).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Asset created successfully",
		"asset":   asset,
	})
}

func GetAllAssets(c *gin.Context) {
	query := assetQuery(c)

	var assets []models.Asset
	if err := database.DB.Order("id").Find(&assets).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch assets")
		return
	}

	result := listview.Apply(assetRows(assets), query)
	out := make([]models.Asset, len(result.Rows))
	for i, row := range result.Rows {
		out[i] = row.Asset
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"assets":  out,
		"total":   result.Total,
		"fetched": result.Total,
		"pagination": gin.H{
			"currentPage": result.Page,
			"totalPages":  result.TotalPages,
			"limit":       result.Limit,
			"total":       result.Total,
		},
	})
}

func UpdateAsset(c *gin.Context) {
	var asset models.Asset
	if err := database.DB.Where("id = ?", c.Param("id")).First(&asset).Error; err != nil {
		respondError(c, http.StatusNotFound, "Asset not found")
		return
	}

	var payload assetPayload
	if err := c.BindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := payload.validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	payload.apply(&asset)
	if err := database.DB.Save(&asset).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Asset updated successfully",
		"asset":   asset,
	})
}

func DeleteAsset(c *gin.Context) {
	var asset models.Asset
	if err := database.DB.Where("id = ?", c.Param("id")).First(&asset).Error; err != nil {
		respondError(c, http.StatusNotFound, "Asset not found")
		return
	}

	if err := database.DB.Delete(&asset).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Asset deleted successfully",
		"asset":   asset,
	})
}

func MarkSurplus(c *gin.Context) {
	var asset models.Asset
	if err := database.DB.Where("id = ?", c.Param("id")).First(&asset).Error; err != nil {
		respondError(c, http.StatusNotFound, "Asset not found")
		return
	}

	asset.DispositionStatus = models.DispositionStatusSurplus
	asset.OwnerFullname = ""
	asset.Hostname = ""
	asset.PNumber = ""

	if err := database.DB.Save(&asset).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Asset marked as surplus",
		"asset":   asset,
	})
}

// CheckExpiring moves every asset whose replacement is due within the next
// 30 days, or already overdue, to the nearing-replacement status and mails
// the admins a digest.
func CheckExpiring(c *gin.Context) {
	horizon := time.Now().AddDate(0, 0, 30)

	var total int64
	if err := database.DB.Model(&models.Asset{}).Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to check expiring assets")
		return
	}

	res := database.DB.Model(&models.Asset{}).
		Where("replacement_due_date IS NOT NULL").
		Where("replacement_due_date <= ?", horizon).
		Where("operational_status <> ?", models.OperationalStatusExpiring).
		Update("operational_status", models.OperationalStatusExpiring)
	if res.Error != nil {
		respondError(c, http.StatusInternalServerError, "Failed to check expiring assets")
		return
	}
	updated := int(res.RowsAffected)

	if updated > 0 {
		go notifyAdminsExpiring(updated, int(total))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"updated": updated,
		"message": fmt.Sprintf("Expiry check completed! %d assets updated to %q", updated, models.OperationalStatusExpiring),
	})
}

func notifyAdminsExpiring(updated, total int) {
	var admins []models.User
	if err := database.DB.Where("role = ? AND status = ?", models.RoleAdmin, models.StatusActive).Find(&admins).Error; err != nil {
		return
	}
	to := make([]string, 0, len(admins))
	for _, u := range admins {
		to = append(to, u.Email)
	}
	mailer.SendExpiringDigest(to, updated, total)
}
