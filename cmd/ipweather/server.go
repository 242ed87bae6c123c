package main

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// newRouter builds the gin engine with the huma API mounted on it
func (app *App) newRouter() *gin.Engine {
	// Set Gin mode from configuration
	gin.SetMode(app.cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  app.allowOrigins(),
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	config := huma.DefaultConfig("ipweather API", "1.0.0")
	config.Info.Description = "7Timer! civil forecasts aligned to the caller's clock"
	api := humagin.New(router, config)

	app.registerRoutes(api)

	// Swagger documentation
	registerSwaggerDoc(api)
	router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})

	return router
}

func (app *App) allowOrigins() []string {
	if len(app.cfg.Server.AllowOrigins) == 0 {
		return []string{"*"}
	}
	return app.cfg.Server.AllowOrigins
}

// Serve starts the HTTP server
func (app *App) Serve(addr string) error {
	return app.newRouter().Run(addr)
}
