package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripplanner/internal/app/middleware"
	"github.com/FACorreiaa/go-tripplanner/internal/pkg/config"
	"github.com/FACorreiaa/go-tripplanner/internal/routes"
)

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.OTELGinMiddleware("go-tripplanner"))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityMiddleware())

	if err := routes.Setup(r, cfg, logger); err != nil {
		return nil, err
	}

	return r, nil
}
