package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pulseops/pulse/config"
	"github.com/pulseops/pulse/internal/logx"
	"github.com/pulseops/pulse/internal/metrics"
	"github.com/pulseops/pulse/server"
)

func main() {
	// secrets (JWT_SECRET) come from the environment, .env is a local
	// convenience and may be absent
	godotenv.Load()
	logx.Init()
	defer logx.Sync()

	cfg, err := config.New("config/config.json")
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.Sandbox {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(server.Observability())

	// Ping test
	r.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	srv, err := server.New(cfg, r)
	if err != nil {
		log.Fatal(err)
	}
	defer srv.Close()

	logx.L().Infow("listening", "host", cfg.Host, "port", cfg.Port)
	if err = srv.Run(); err != nil {
		// panic rather than fatal so the deferred close still runs
		log.Panicf("Failed to listen: %v", err)
	}
}
