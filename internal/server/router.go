package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"itam/internal/config"
	"itam/internal/handlers"
	"itam/internal/middleware"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/healthCheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK"})
	})

	r.POST("/user/signup", handlers.SignUp)
	r.POST("/user/signin", handlers.SignIn)

	auth := r.Group("/", middleware.RequireAuth(cfg.SignatureKey))

	asset := auth.Group("/asset")
	{
		asset.POST("/createAsset", handlers.CreateAsset)
		asset.GET("/getAllAssets", handlers.GetAllAssets)
		asset.PUT("/assets/:id", handlers.UpdateAsset)
		asset.PUT("/assets/:id/surplus", handlers.MarkSurplus)
		asset.DELETE("/deleteAsset/:id", middleware.RequireAdmin(), handlers.DeleteAsset)
		asset.GET("/dropdown-options", handlers.GetDropdownOptions)
		asset.GET("/filter-options", handlers.GetFilterOptions)
		asset.GET("/export", handlers.ExportAssets)
		asset.POST("/check-expiring", handlers.CheckExpiring)
	}

	transfers := auth.Group("/asset-transfers")
	{
		transfers.POST("/create-transfer-asset", handlers.CreateTransfer)
		transfers.GET("/get-all-transfer-assets", handlers.GetAllTransfers)
		transfers.GET("/asset-history/:id", handlers.GetAssetHistory)
		transfers.DELETE("/asset-transfers/:id", middleware.RequireAdmin(), handlers.DeleteTransfer)
	}

	categories := auth.Group("/categories")
	{
		categories.GET("/:category", handlers.GetCategories)
		categories.POST("/:category", handlers.AddCategory)
		categories.DELETE("/:category/:id", middleware.RequireAdmin(), handlers.DeleteCategory)
	}

	user := auth.Group("/user")
	{
		user.GET("/getuser", handlers.GetUser)
		user.GET("/all", middleware.RequireAdmin(), handlers.GetAllUsers)
		user.PUT("/change-password", handlers.ChangePassword)
		user.PATCH("/toggle-status/:id", middleware.RequireAdmin(), handlers.ToggleUserStatus)
	}

	return r
}
