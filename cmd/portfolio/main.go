package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/folio/config"
	"github.com/zucenko/folio/cv"
	"github.com/zucenko/folio/engine"
)

func newRouter(doc cv.CV, scores engine.ScoreStore, timeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLog())
	r.SetHTMLTemplate(cv.Document)

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "cv", doc)
	})

	api := r.Group("/api")
	api.GET("/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, doc.Profile)
	})
	api.GET("/experience", func(c *gin.Context) {
		c.JSON(http.StatusOK, doc.Experience)
	})
	api.GET("/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, doc.Projects)
	})
	api.GET("/education", func(c *gin.Context) {
		c.JSON(http.StatusOK, doc.Education)
	})
	api.GET("/highscore", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		score, _, err := scores.Get(ctx, engine.HighScoreKey)
		if err != nil {
			log.WithError(err).Warn("portfolio: high score not read")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "high score unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"highScore": score})
	})

	r.GET("/cv/export", func(c *gin.Context) {
		c.Header("Content-Disposition", `attachment; filename="cv.html"`)
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := cv.Render(c.Writer, doc); err != nil {
			log.WithError(err).Error("portfolio: cv export failed")
		}
	})
	return r
}

// requestLog sends gin's access lines through logrus.
func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Debug("request")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}
	if err := cfg.SetupLogging(); err != nil {
		log.Fatalln(err)
	}
	store, err := cfg.OpenStore()
	if err != nil {
		log.Fatalln(err)
	}
	defer store.Close()

	r := newRouter(cv.Default(), store, cfg.WriteTimeout)
	addr := ":" + cfg.Port
	log.Infof("portfolio listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Errorln(err)
	}
}
