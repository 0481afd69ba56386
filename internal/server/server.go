package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crylonblue/blitzrechnung/internal/artifact"
	"github.com/crylonblue/blitzrechnung/internal/compliance"
	"github.com/crylonblue/blitzrechnung/internal/logger"
	"github.com/crylonblue/blitzrechnung/internal/model"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
	log    zerolog.Logger
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())

	s := &Server{
		config: config,
		router: router,
		log:    logger.WithComponent("server"),
	}

	if config.Debug {
		router.Use(s.requestLogger())
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/invoices/render", s.handleRender)
		v1.POST("/company/completeness", s.handleCompleteness)
		v1.POST("/artifacts/info", s.handleArtifactInfo)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestID attaches a unique id to every request
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleRender(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := model.NewValidationError("body", nil, "json", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": verr.Error()})
		return
	}

	if req.Invoice == nil {
		verr := model.NewValidationError("invoice", nil, "required", "invoice is required")
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}

	mapper := compliance.NewMapper(req.Company)
	renderable := mapper.MapToRenderable(req.Invoice, req.SellerSnapshot, req.BuyerSnapshot, req.LogoURL)

	c.JSON(http.StatusOK, RenderResponse{Invoice: renderable})
}

func (s *Server) handleCompleteness(c *gin.Context) {
	var req CompletenessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := model.NewValidationError("body", nil, "json", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": verr.Error()})
		return
	}

	// A nil company is a valid query and reports itself incomplete
	result := compliance.CheckCompleteness(req.Company)

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleArtifactInfo(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request body"})
		return
	}

	info := artifact.Inspect(body)

	c.JSON(http.StatusOK, info)
}
