package models

import "time"

// Category is an enumerated option value scoped to a category type
// (department, hardware_type, ...). Value is unique within its type.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"size:50;uniqueIndex:idx_category_type_value" json:"type"`
	Value     string    `gorm:"size:150;uniqueIndex:idx_category_type_value" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryTypes lists the option groups the API serves. Requests for any
// other type are rejected.
var CategoryTypes = []string{
	"hardware_type",
	"model",
	"cadre",
	"department",
	"section",
	"building",
	"vendor",
	"operational_status",
	"disposition_status",
}

func ValidCategoryType(t string) bool {
	for _, known := range CategoryTypes {
		if t == known {
			return true
		}
	}
	return false
}
