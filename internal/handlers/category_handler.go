package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"itam/internal/database"
	"itam/internal/models"
)

func GetCategories(c *gin.Context) {
	catType := c.Param("category")
	if !models.ValidCategoryType(catType) {
		respondError(c, http.StatusBadRequest, "Invalid category type")
		return
	}

	var categories []models.Category
	if err := database.DB.Where("type = ?", catType).Order("value").Find(&categories).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}

func AddCategory(c *gin.Context) {
	catType := c.Param("category")
	if !models.ValidCategoryType(catType) {
		respondError(c, http.StatusBadRequest, "Invalid category type")
		return
	}

	var body struct {
		Value string `json:"value"`
	}
	if err := c.BindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	value := strings.TrimSpace(body.Value)
	if value == "" {
		respondError(c, http.StatusBadRequest, "Category value is required")
		return
	}

	var existing models.Category
	if err := database.DB.Where("type = ? AND value = ?", catType, value).First(&existing).Error; err == nil {
		respondError(c, http.StatusConflict, "Category already exists")
		return
	}

	category := models.Category{Type: catType, Value: value}
	if err := database.DB.Create(&category).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Category added successfully",
		"data":    category,
	})
}

func DeleteCategory(c *gin.Context) {
	catType := c.Param("category")
	if !models.ValidCategoryType(catType) {
		respondError(c, http.StatusBadRequest, "Invalid category type")
		return
	}

	var category models.Category
	if err := database.DB.Where("type = ? AND id = ?", catType, c.Param("id")).First(&category).Error; err != nil {
		respondError(c, http.StatusNotFound, "Category not found")
		return
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category deleted successfully",
	})
}
