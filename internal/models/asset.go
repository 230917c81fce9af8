package models

import "time"

// Asset is a tracked piece of IT hardware with ownership and lifecycle
// metadata. Only ID is guaranteed non-empty; every other field may be blank
// and is rendered as an empty string downstream.
type Asset struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	AssetID      string `gorm:"size:100" json:"asset_id"`
	SerialNumber string `gorm:"size:100;index" json:"serial_number"`
	HardwareType string `gorm:"size:100" json:"hardware_type"`
	ModelNumber  string `gorm:"size:150" json:"model_number"`

	OwnerFullname string `gorm:"size:150" json:"owner_fullname"`
	Hostname      string `gorm:"size:100" json:"hostname"`
	PNumber       string `gorm:"size:50;column:p_number" json:"p_number"`
	Cadre         string `gorm:"size:100" json:"cadre"`
	Department    string `gorm:"size:100;index" json:"department"`
	Section       string `gorm:"size:100" json:"section"`
	Building      string `gorm:"size:100" json:"building"`

	Vendor       string     `gorm:"size:150" json:"vendor"`
	PONumber     string     `gorm:"size:100;column:po_number" json:"po_number"`
	PODate       *time.Time `gorm:"column:po_date" json:"po_date"`
	DCNumber     string     `gorm:"size:100;column:dc_number" json:"dc_number"`
	DCDate       *time.Time `gorm:"column:dc_date" json:"dc_date"`
	AssignedDate *time.Time `json:"assigned_date"`

	ReplacementDuePeriod string     `gorm:"size:50" json:"replacement_due_period"`
	ReplacementDueDate   *time.Time `json:"replacement_due_date"`
	OperationalStatus    string     `gorm:"size:50" json:"operational_status"`
	DispositionStatus    string     `gorm:"size:50" json:"disposition_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OperationalStatusExpiring marks assets whose replacement window opens
// within the check-expiring horizon.
const OperationalStatusExpiring = "Nearing Replacement"

// DispositionStatusSurplus is set when an asset is pulled out of use.
const DispositionStatusSurplus = "Surplus"
