package server

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"tradelens/internal/analysis"
	v1 "tradelens/internal/api/v1"
	"tradelens/internal/config"
	"tradelens/internal/dataset"
	"tradelens/internal/geo"
	"tradelens/internal/metrics"
	"tradelens/internal/store"
)

// Server is the HTTP server around the dashboard data layer.
type Server struct {
	router  *gin.Engine
	store   *store.Store
	data    *dataset.Service
	v1      *v1.Handler
	metrics *metrics.Registry
}

// NewServer wires the data service, trend builder and API handler.
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, cfg.Data.SnapshotDB)

	snapshots, err := store.New(dbPath)
	if err != nil {
		// Snapshots are a fallback layer, not a hard dependency.
		log.Printf("snapshot store unavailable, continuing without it: %v", err)
		snapshots = nil
	}

	reg := metrics.NewRegistry()
	data := dataset.NewService(cfg, dataset.NewCache(), snapshots, reg, geo.NewResolver())
	trends := analysis.NewTrendBuilder(data, data, reg)

	s := &Server{
		router:  gin.Default(),
		store:   snapshots,
		data:    data,
		v1:      v1.NewHandler(data, trends, cfg),
		metrics: reg,
	}

	s.setupRoutes(devMode)

	return s
}

func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	if devMode {
		// Proxy unknown paths to the frontend dev server.
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	}
}

// Run starts the HTTP server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore exposes the snapshot store, mainly for tests.
func (s *Server) GetStore() *store.Store {
	return s.store
}
