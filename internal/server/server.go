// Package server exposes invoice generation over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/ebinvoice/internal/ebinterface"
	"github.com/rezonia/ebinvoice/internal/input"
	"github.com/rezonia/ebinvoice/internal/inspect"
	"github.com/rezonia/ebinvoice/pkg/logger"
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
	log    *logger.Logger
}

// NewServer creates a new API server
func NewServer(config *Config, log *logger.Logger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		config: config,
		router: router,
		log:    log,
	}

	router.Use(s.requestLogger())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/generate", s.handleGenerate)
		v1.POST("/validate", s.handleValidate)
	}
}

// requestLogger logs one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
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

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req input.Invoice
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body", Details: err.Error()})
		return
	}

	inv, err := req.Build()
	if err != nil {
		s.respondError(c, err)
		return
	}

	xml, err := inv.XMLString()
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}

// respondError maps validation failures to 422 and everything else to 500.
func (s *Server) respondError(c *gin.Context, err error) {
	if ve, ok := err.(*ebinterface.ValidationError); ok {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ve.Error()})
		return
	}
	s.log.Error().Err(err).Msg("generation failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "generation failed"})
}

func (s *Server) handleValidate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	result := inspect.Validate(body)
	c.JSON(http.StatusOK, ValidationResponse{Valid: result.Valid, Errors: result.Errors})
}
