package handlers

import (
	"github.com/gin-gonic/gin"

	"itam/internal/archive"
	"itam/internal/config"
	"itam/internal/notification"
)

var (
	signatureKey string
	mailer       *notification.Mailer
	uploader     *archive.Uploader
)

// Init wires the package-level dependencies from config.
func Init(cfg *config.Config) {
	signatureKey = cfg.SignatureKey
	mailer = notification.NewMailer(cfg)
	uploader = archive.NewUploader(cfg)
}

func respondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"error":   message,
	})
}
