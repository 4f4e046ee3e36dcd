package main // Same as main.go

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed assets/static/*
var Assets embed.FS

func SetupAssets(r *gin.Engine) error {
	staticFiles, err := fs.Sub(Assets, "assets")
	if err != nil {
		return err
	}
	r.StaticFS("/assets", http.FS(staticFiles))
	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("static/index.html", http.FS(staticFiles))
	})
	return nil
}
