package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"itam/internal/database"
	"itam/internal/listview"
	"itam/internal/middleware"
	"itam/internal/models"
)

// TransferRequest is the create-transfer payload. The acting user comes
// from the token, not the body.
type TransferRequest struct {
	AssetID          uint   `json:"asset_id"`
	NewOwnerFullname string `json:"new_owner_fullname"`
	NewHostname      string `json:"new_hostname"`
	NewPNumber       string `json:"new_p_number"`
	NewCadre         string `json:"new_cadre"`
	NewDepartment    string `json:"new_department"`
	NewSection       string `json:"new_section"`
	NewBuilding      string `json:"new_building"`
	TransferReason   string `json:"transfer_reason"`
}

// ValidateTransferRequest checks the seven required ownership fields plus
// the reason, and reports every missing field in a single message.
func ValidateTransferRequest(req TransferRequest) error {
	required := []struct {
		value string
		label string
	}{
		{req.NewOwnerFullname, "Owner Fullname"},
		{req.NewHostname, "Hostname"},
		{req.NewPNumber, "P Number"},
		{req.NewCadre, "Cadre"},
		{req.NewDepartment, "Department"},
		{req.NewSection, "Section"},
		{req.NewBuilding, "Building"},
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
	if strings.TrimSpace(req.TransferReason) == "" {
		return fmt.Errorf("Transfer reason is required")
	}
	return nil
}

// CreateTransfer snapshots the asset's current ownership, appends the
// transfer record, and moves the asset to its new owner in one transaction.
func CreateTransfer(c *gin.Context) {
	var req TransferRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateTransferRequest(req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var asset models.Asset
	if err := database.DB.Where("id = ?", req.AssetID).First(&asset).Error; err != nil {
		respondError(c, http.StatusNotFound, "Asset not found")
		return
	}

	transfer := models.AssetTransfer{
		AssetID:           asset.ID,
		AssetSerialNumber: asset.SerialNumber,
		HardwareType:      asset.HardwareType,

		PreviousOwnerFullname: asset.OwnerFullname,
		PreviousHostname:      asset.Hostname,
		PreviousPNumber:       asset.PNumber,
		PreviousCadre:         asset.Cadre,
		PreviousDepartment:    asset.Department,
		PreviousSection:       asset.Section,
		PreviousBuilding:      asset.Building,

		NewOwnerFullname: strings.TrimSpace(req.NewOwnerFullname),
		NewHostname:      strings.TrimSpace(req.NewHostname),
		NewPNumber:       strings.TrimSpace(req.NewPNumber),
		NewCadre:         strings.TrimSpace(req.NewCadre),
		NewDepartment:    strings.TrimSpace(req.NewDepartment),
		NewSection:       strings.TrimSpace(req.NewSection),
		NewBuilding:      strings.TrimSpace(req.NewBuilding),

		TransferReason: strings.TrimSpace(req.TransferReason),
		TransferDate:   time.Now(),

		TransferredByUserEmail: c.GetString(middleware.ContextUserEmail),
		TransferredByUserName:  c.GetString(middleware.ContextUserName),
		TransferredByUserRole:  c.GetString(middleware.ContextUserRole),
	}

	tx := database.DB.Begin()
	if err := tx.Create(&transfer).Error; err != nil {
		tx.Rollback()
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	asset.OwnerFullname = transfer.NewOwnerFullname
	asset.Hostname = transfer.NewHostname
	asset.PNumber = transfer.NewPNumber
	asset.Cadre = transfer.NewCadre
	asset.Department = transfer.NewDepartment
	asset.Section = transfer.NewSection
	asset.Building = transfer.NewBuilding

	if err := tx.Save(&asset).Error; err != nil {
		tx.Rollback()
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := tx.Commit().Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if actor := transfer.TransferredByUserEmail; actor != "" {
		go mailer.SendTransferNotice([]string{actor}, transfer.AssetSerialNumber, transfer.NewOwnerFullname, transfer.TransferReason)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Asset transfer created successfully",
		"data":    transfer,
	})
}

func GetAllTransfers(c *gin.Context) {
	query := transferQuery(c)

	var transfers []models.AssetTransfer
	if err := database.DB.Order("id").Find(&transfers).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch transfers")
		return
	}

	result := listview.Apply(transferRows(transfers), query)
	out := make([]models.AssetTransfer, len(result.Rows))
	for i, row := range result.Rows {
		out[i] = row.AssetTransfer
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    out,
		"total":   result.Total,
		"pagination": gin.H{
			"currentPage": result.Page,
			"totalPages":  result.TotalPages,
			"limit":       result.Limit,
			"total":       result.Total,
		},
	})
}

func GetAssetHistory(c *gin.Context) {
	var asset models.Asset
	if err := database.DB.Where("id = ?", c.Param("id")).First(&asset).Error; err != nil {
		respondError(c, http.StatusNotFound, "Asset not found")
		return
	}

	var transfers []models.AssetTransfer
	if err := database.DB.
		Where("asset_id = ?", asset.ID).
		Order("transfer_date DESC").
		Find(&transfers).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch asset history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    transfers,
	})
}

// DeleteTransfer is an admin-only correction path; normal flows never
// mutate transfer history.
func DeleteTransfer(c *gin.Context) {
	var transfer models.AssetTransfer
	if err := database.DB.Where("id = ?", c.Param("id")).First(&transfer).Error; err != nil {
		respondError(c, http.StatusNotFound, "Transfer not found")
		return
	}

	if err := database.DB.Delete(&transfer).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Transfer deleted successfully",
	})
}
