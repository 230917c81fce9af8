package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"itam/internal/database"
	"itam/internal/middleware"
	"itam/internal/models"
)

func SignUp(c *gin.Context) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	if body.Name == "" || body.Email == "" || body.Password == "" {
		respondError(c, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
		respondError(c, http.StatusConflict, "Email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to process password")
		return
	}

	user := models.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: string(hash),
		Role:     models.RoleUser,
		Status:   models.StatusActive,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    user,
	})
}

func SignIn(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", strings.TrimSpace(strings.ToLower(body.Email))).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if user.Status == models.StatusBlocked {
		respondError(c, http.StatusForbidden, "Account is blocked")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	claims := middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "itam",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signatureKey))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to sign token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

func GetUser(c *gin.Context) {
	id := c.GetUint(middleware.ContextUserID)

	var user models.User
	if err := database.DB.Where("id = ?", id).First(&user).Error; err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("id").Find(&users).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

func ChangePassword(c *gin.Context) {
	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.NewPassword == "" {
		respondError(c, http.StatusBadRequest, "New password is required")
		return
	}

	id := c.GetUint(middleware.ContextUserID)
	var user models.User
	if err := database.DB.Where("id = ?", id).First(&user).Error; err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.CurrentPassword)); err != nil {
		respondError(c, http.StatusBadRequest, "Incorrect password")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to process password")
		return
	}
	user.Password = string(hash)

	if err := database.DB.Save(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password changed successfully",
	})
}

// ToggleUserStatus flips a user between active and blocked. Blocked users
// cannot sign in.
func ToggleUserStatus(c *gin.Context) {
	var user models.User
	if err := database.DB.Where("id = ?", c.Param("id")).First(&user).Error; err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	if user.Status == models.StatusActive {
		user.Status = models.StatusBlocked
	} else {
		user.Status = models.StatusActive
	}

	if err := database.DB.Save(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	message := "User activated successfully"
	if user.Status == models.StatusBlocked {
		message = "User blocked successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"user":    user,
	})
}
