package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itam/internal/database"
	"itam/internal/models"
)

// GetDropdownOptions returns every category list in one response, keyed by
// type, for the add/edit forms.
func GetDropdownOptions(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Order("type, value").Find(&categories).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch dropdown options")
		return
	}

	grouped := make(map[string][]models.Category, len(models.CategoryTypes))
	for _, t := range models.CategoryTypes {
		grouped[t] = []models.Category{}
	}
	for _, cat := range categories {
		grouped[cat.Type] = append(grouped[cat.Type], cat)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    grouped,
	})
}

// GetFilterOptions returns the distinct values actually present on assets,
// so the filter bar only offers values that can match something.
func GetFilterOptions(c *gin.Context) {
	fields := map[string]string{
		"departments":          "department",
		"hardware_types":       "hardware_type",
		"cadres":               "cadre",
		"buildings":            "building",
		"sections":             "section",
		"operational_statuses": "operational_status",
		"disposition_statuses": "disposition_status",
	}

	filters := make(map[string][]string, len(fields))
	for name, column := range fields {
		var values []string
		if err := database.DB.Model(&models.Asset{}).
			Distinct(column).
			Where(column+" <> ''").
			Order(column).
			Pluck(column, &values).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch filter options")
			return
		}
		filters[name] = values
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"filters": filters,
	})
}
