package models

import "time"

// AssetTransfer records a single change of ownership for an asset. Rows are
// append-only: they are created when a transfer is submitted and never
// updated afterwards.
type AssetTransfer struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	AssetID uint `gorm:"index;not null" json:"asset_id"`

	AssetSerialNumber string `gorm:"size:100" json:"asset_serial_number"`
	HardwareType      string `gorm:"size:100" json:"hardware_type"`

	PreviousOwnerFullname string `gorm:"size:150" json:"previous_owner_fullname"`
	PreviousHostname      string `gorm:"size:100" json:"previous_hostname"`
	PreviousPNumber       string `gorm:"size:50;column:previous_p_number" json:"previous_p_number"`
	PreviousCadre         string `gorm:"size:100" json:"previous_cadre"`
	PreviousDepartment    string `gorm:"size:100" json:"previous_department"`
	PreviousSection       string `gorm:"size:100" json:"previous_section"`
	PreviousBuilding      string `gorm:"size:100" json:"previous_building"`

	NewOwnerFullname string `gorm:"size:150" json:"new_owner_fullname"`
	NewHostname      string `gorm:"size:100" json:"new_hostname"`
	NewPNumber       string `gorm:"size:50;column:new_p_number" json:"new_p_number"`
	NewCadre         string `gorm:"size:100" json:"new_cadre"`
	NewDepartment    string `gorm:"size:100" json:"new_department"`
	NewSection       string `gorm:"size:100" json:"new_section"`
	NewBuilding      string `gorm:"size:100" json:"new_building"`

	TransferReason string    `gorm:"type:text" json:"transfer_reason"`
	TransferDate   time.Time `gorm:"index" json:"transfer_date"`

	TransferredByUserEmail string `gorm:"size:150" json:"transferred_by_user_email"`
	TransferredByUserName  string `gorm:"size:150" json:"transferred_by_user_name"`
	TransferredByUserRole  string `gorm:"size:50" json:"transferred_by_user_role"`

	CreatedAt time.Time `json:"created_at"`
}
