package server

import (
	"log/slog"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/linksound/wavekit/internal/config"
)

// setupSecurityMiddleware configures and applies security middleware to the
// router.
func setupSecurityMiddleware(router *gin.Engine, cfg *config.Config, logger *slog.Logger) {
	// HSTS for production only
	stsSeconds := int64(0)
	if cfg.Env == config.EnvProduction {
		stsSeconds = 31536000
	}

	secureMiddleware := secure.New(secure.Config{
		STSSeconds:           stsSeconds,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
	})
	router.Use(secureMiddleware)

	logger.Debug("Configured security middleware",
		"hsts_enabled", cfg.Env == config.EnvProduction,
	)
}
