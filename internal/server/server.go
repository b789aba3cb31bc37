// Package server exposes the lecture pipeline over HTTP: generation,
// artifact download, and a health probe.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"lecturecast/internal/app"
)

// Generator runs one lecture generation request end to end.
type Generator interface {
	Generate(ctx context.Context, req app.GenerateRequest) (*app.GenerateResult, error)
}

type Server struct {
	pipeline Generator
	baseDir  string
}

func New(pipeline Generator, baseDir string) *Server {
	return &Server{pipeline: pipeline, baseDir: baseDir}
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), cors())

	router.POST("/generate", s.handleGenerate)
	router.GET("/download/*filepath", s.handleDownload)
	router.GET("/health", s.handleHealth)

	return router
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req app.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	result, err := s.pipeline.Generate(c.Request.Context(), req)
	if err != nil {
		slog.Error("Lecture generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleDownload serves a generated artifact by its base-relative path.
// Paths resolving outside the output base are rejected.
func (s *Server) handleDownload(c *gin.Context) {
	requested := strings.TrimPrefix(c.Param("filepath"), "/")

	full := filepath.Join(s.baseDir, filepath.FromSlash(requested))
	rel, err := filepath.Rel(s.baseDir, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.FileAttachment(full, filepath.Base(full))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
