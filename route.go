package main // import "github.com/tonobo/safesnake"

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type InfoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author"`
	Color      string `json:"color"`
	Head       string `json:"head"`
	Tail       string `json:"tail"`
	Version    string `json:"version"`
}

type MoveResponse struct {
	Move Direction `json:"move"`
}

// Server holds what the handlers share. Nothing in it changes per request.
type Server struct {
	Info    InfoResponse
	LogsDir string
	Log     zerolog.Logger

	// NewRand returns the random source for one move request.
	NewRand func() *rand.Rand
}

func NewServer(info InfoResponse, logsDir string, log zerolog.Logger) *Server {
	return &Server{
		Info:    info,
		LogsDir: logsDir,
		Log:     log,
		NewRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(s.Log), gin.CustomRecovery(s.recoverPanic))

	r.GET("/", s.handleInfo)
	r.POST("/start", s.handleStart)
	r.POST("/move", s.handleMove)
	r.POST("/end", s.handleEnd)
	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	return r
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// recoverPanic keeps the engine's 200 contract when a handler panics.
func (s *Server) recoverPanic(c *gin.Context, recovered any) {
	s.Log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered handler panic")
	if c.Request.URL.Path == "/move" {
		c.AbortWithStatusJSON(http.StatusOK, MoveResponse{Move: Down})
		return
	}
	c.AbortWithStatusJSON(http.StatusOK, gin.H{})
}

// decode reads the raw body so it can be logged as sent, then validates it.
func (s *Server) decode(c *gin.Context) (*Request, []byte, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, nil, fmt.Errorf("read body: %w", err)
	}
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, body, fmt.Errorf("decode game state: %w", err)
	}
	if err := req.Init(s.Log); err != nil {
		return &req, body, fmt.Errorf("init game state: %w", err)
	}
	return &req, body, nil
}

func (s *Server) writeGameLog(gameID string, body []byte) {
	f, err := GameLog(s.LogsDir, gameID)
	if err != nil {
		s.Log.Warn().Err(err).Str("game", gameID).Msg("request log unavailable")
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s\n", body)
}

func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.Info)
}

func (s *Server) handleStart(c *gin.Context) {
	req, body, err := s.decode(c)
	if err != nil {
		s.Log.Error().Err(err).Msg("bad start request")
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	s.writeGameLog(req.Game.ID, body)
	s.Log.Info().
		Str("game", req.Game.ID).
		Str("ruleset", req.Game.Ruleset.Name).
		Int("width", req.Board.Width).
		Int("height", req.Board.Height).
		Msg("game started")
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) handleMove(c *gin.Context) {
	req, body, err := s.decode(c)
	if err != nil {
		s.Log.Error().Err(err).Msg("bad move request, moving down")
		c.JSON(http.StatusOK, MoveResponse{Move: Down})
		return
	}
	s.writeGameLog(req.Game.ID, body)
	move := req.Board.Move(s.NewRand())
	s.Log.Info().Str("game", req.Game.ID).Int("turn", req.Turn).Str("move", string(move)).Msg("move")
	c.JSON(http.StatusOK, MoveResponse{Move: move})
}

func (s *Server) handleEnd(c *gin.Context) {
	req, body, err := s.decode(c)
	if err != nil {
		s.Log.Error().Err(err).Msg("bad end request")
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	s.writeGameLog(req.Game.ID, body)
	s.Log.Info().
		Str("game", req.Game.ID).
		Int("turn", req.Turn).
		Str("result", result(req)).
		Msg("game over")
	c.JSON(http.StatusOK, gin.H{})
}

// result reads the outcome from the final board.
func result(req *Request) string {
	if len(req.Board.Snakes) == 0 {
		return "draw"
	}
	for _, snake := range req.Board.Snakes {
		if snake.Same(req.Self) {
			return "won"
		}
	}
	return "lost"
}
