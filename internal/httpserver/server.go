package httpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/tinytelemetry/slides/internal/export"
	"github.com/tinytelemetry/slides/internal/generation"
	"github.com/tinytelemetry/slides/internal/model"
	"github.com/tinytelemetry/slides/internal/session"
	"github.com/tinytelemetry/slides/internal/templategen"
)

const (
	defaultAddr              = "127.0.0.1:8000"
	defaultArtifactCacheSize = 64

	fallbackMessage = "AI generation unavailable; presentation built from the document template"
)

// SessionSource is the narrow session lookup the generation API needs.
type SessionSource interface {
	Get(id string) (*session.FileSession, bool)
	Len() int
}

// Options configures the generation service.
type Options struct {
	ArtifactCacheSize int
	Logger            zerolog.Logger
}

type artifact struct {
	name    string
	content []byte
}

// Server is a local generation service. It answers every request through
// the template path and keeps recent markdown artifacts in memory.
type Server struct {
	addr      string
	sessions  SessionSource
	artifacts *lru.Cache[string, artifact]
	logger    zerolog.Logger
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new generation service.
func NewServer(addr string, sessions SessionSource, opts Options) (*Server, error) {
	if addr == "" {
		addr = defaultAddr
	}
	size := opts.ArtifactCacheSize
	if size <= 0 {
		size = defaultArtifactCacheSize
	}
	cache, err := lru.New[string, artifact](size)
	if err != nil {
		return nil, fmt.Errorf("httpserver: artifact cache: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:      addr,
		sessions:  sessions,
		artifacts: cache,
		logger:    opts.Logger.With().Str("component", "httpserver").Logger(),
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}, nil
}

// Handler builds the gin engine with all routes.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/sessions/:id", s.handleSession)
	r.POST(generation.GeneratePath, s.handleGenerate)
	r.GET("/api/presentations/:id/:name", s.handleArtifact)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.addr = listener.Addr().String()
	s.startTime = time.Now()

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("serve failed")
		}
	}()
	return nil
}

// Addr returns the listen address; after Start it is the bound address.
func (s *Server) Addr() string { return s.addr }

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"uptime":   time.Since(s.startTime).String(),
		"sessions": s.sessions.Len(),
	})
}

func (s *Server) handleSession(c *gin.Context) {
	doc, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "session not found"})
		return
	}
	info := doc.Info()
	c.JSON(http.StatusOK, session.StatusResponse{
		SessionID: info.SessionID,
		Active:    doc.Active(),
		FileName:  info.FileName,
		WordCount: info.WordCount,
		PageCount: info.PageCount,
	})
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generation.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.SessionID == "" {
		c.JSON(http.StatusBadRequest, errorBody("session_id is required"))
		return
	}
	if req.MaxSlides < model.MinSlides || req.MaxSlides > model.MaxSlides {
		c.JSON(http.StatusBadRequest, errorBody(fmt.Sprintf("max_slides must be between %d and %d", model.MinSlides, model.MaxSlides)))
		return
	}

	doc, ok := s.sessions.Get(req.SessionID)
	if !ok || !doc.Active() {
		c.JSON(http.StatusNotFound, errorBody("Session not found or no document loaded"))
		return
	}

	topic := ""
	if req.Topic != nil {
		topic = *req.Topic
	}
	info := doc.Info()
	deck := templategen.Generate(templategen.Source{
		FileName:  info.FileName,
		Text:      doc.Text(),
		WordCount: info.WordCount,
		PageCount: info.PageCount,
	}, topic, req.MaxSlides)

	id := uuid.NewString()
	name := export.SafeFileName(deck.Title)
	s.artifacts.Add(id, artifact{name: name, content: []byte(export.ToMarkdown(deck))})
	artifactURL := "/api/presentations/" + id + "/" + url.PathEscape(name)

	slides := make([]generation.WireSlide, 0, len(deck.Slides))
	for _, sl := range deck.Slides {
		slides = append(slides, generation.WireSlide{Title: sl.Title, Content: sl.Content})
	}
	count := deck.SlideCount
	title := deck.Title

	s.logger.Info().
		Str("session_id", req.SessionID).
		Int("max_slides", req.MaxSlides).
		Int("slides", count).
		Str("artifact", id).
		Msg("presentation generated from template")

	c.JSON(http.StatusOK, generation.Response{
		Status:          generation.StatusSuccess,
		Message:         fallbackMessage,
		PresentationURL: &artifactURL,
		Slides:          slides,
		SlideCount:      &count,
		APIUsed:         false,
		FallbackUsed:    true,
		Title:           &title,
	})
}

func (s *Server) handleArtifact(c *gin.Context) {
	a, ok := s.artifacts.Get(c.Param("id"))
	if !ok || a.name != c.Param("name") {
		c.JSON(http.StatusNotFound, gin.H{"detail": "presentation not found"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.name))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", a.content)
}

func errorBody(message string) generation.Response {
	return generation.Response{Status: "error", Message: message}
}

// requestLogger logs one line per request.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
