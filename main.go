package main // import "github.com/tonobo/safesnake"

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var SnakeIDList = []string{"a", "b", "c", "d", "e", "g", "h", "j", "k"}

var (
	ErrNoBoard       = errors.New("game state has no board")
	ErrNoSelf        = errors.New("game state has no you snake")
	ErrEmptyBody     = errors.New("you snake has an empty body")
	ErrBadDimensions = errors.New("board dimensions must be positive")
)

type Request struct {
	Game  Game   `json:"game"`
	Turn  int    `json:"turn"`
	Board *Board `json:"board"`
	Self  *Snake `json:"you"`
}

type Game struct {
	ID      string  `json:"id"`
	Ruleset Ruleset `json:"ruleset"`
	Map     string  `json:"map"`
	Timeout int     `json:"timeout"`
	Source  string  `json:"source"`
}

type Ruleset struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Init validates the decoded state and wires the board back to it.
func (r *Request) Init(log zerolog.Logger) error {
	if r.Board == nil {
		return ErrNoBoard
	}
	if r.Self == nil {
		return ErrNoSelf
	}
	if len(r.Self.Body) == 0 {
		return ErrEmptyBody
	}
	if r.Board.Width <= 0 || r.Board.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrBadDimensions, r.Board.Width, r.Board.Height)
	}
	r.Board.Me = r.Self
	r.Board.Request = r
	r.Board.log = log.With().Str("game", r.Game.ID).Logger()
	for i, snake := range r.Board.Opponents() {
		if i < len(SnakeIDList) {
			snake.InternalID = SnakeIDList[i]
		} else {
			snake.InternalID = "x"
		}
	}
	return nil
}

// PrintGrid draws the board top row first. Body segments are painted over food.
func PrintGrid(file io.Writer, b *Board) {
	grid := make([][]string, b.Height)
	for y := range grid {
		grid[y] = make([]string, b.Width)
		for x := range grid[y] {
			grid[y][x] = "-"
		}
	}
	paint := func(p Point, s string) {
		if b.Outside(p.Vec()) {
			return
		}
		grid[p.Y][p.X] = s
	}
	for _, food := range b.Food {
		paint(food, "F")
	}
	for _, snake := range b.Snakes {
		if snake == nil {
			continue
		}
		id := snake.InternalID
		if snake.Same(b.Me) {
			id = "m"
		}
		// Tail first so the head stays visible on stacked segments.
		for i := len(snake.Body) - 1; i >= 0; i-- {
			if i == 0 {
				paint(snake.Body[i], strings.ToUpper(id))
			} else {
				paint(snake.Body[i], id)
			}
		}
	}
	for y := b.Height - 1; y >= 0; y-- {
		fmt.Fprint(file, strings.Join(grid[y], ""), "\n")
	}
	fmt.Fprint(file, "\n")
}

// runMove answers a single state read from in, the way /move would.
func runMove(in io.Reader, out io.Writer, log zerolog.Logger, r *rand.Rand) error {
	var j Request
	if err := json.NewDecoder(in).Decode(&j); err != nil {
		return fmt.Errorf("decode game state: %w", err)
	}
	if err := j.Init(log); err != nil {
		return fmt.Errorf("init game state: %w", err)
	}
	PrintGrid(out, j.Board)
	fmt.Fprintln(out, j.Board.Move(r))
	return nil
}

var (
	configDir = flag.String("config", ".", "Directory holding battlesnake.json")
	move      = flag.Bool("move", false, "Load move")
)

func main() {
	flag.Parse()
	if err := Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := NewLogger(os.Stdout, GetString("logLevel"))

	if *move {
		if err := runMove(os.Stdin, os.Stdout, log, rand.New(rand.NewSource(time.Now().UnixNano()))); err != nil {
			log.Fatal().Err(err).Msg("move failed")
		}
		return
	}

	if !strings.EqualFold(GetString("logLevel"), "debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := NewServer(InfoFromConfig(), GetString("logsDir"), log)
	addr := fmt.Sprintf(":%d", GetInt("port"))
	log.Info().Str("addr", addr).Msg("battlesnake listening")
	if err := NewRouter(srv).Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
