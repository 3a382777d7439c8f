package main // import "github.com/tonobo/safesnake"

import (
	"math/rand"

	"github.com/joonazan/vec2"
	"github.com/rs/zerolog"
)

type Board struct {
	Height  int      `json:"height"`
	Width   int      `json:"width"`
	Food    []Point  `json:"food"`
	Hazards []Point  `json:"hazards"`
	Snakes  []*Snake `json:"snakes"`

	Me      *Snake   `json:"-"`
	Request *Request `json:"-"`

	log zerolog.Logger
}

func (b *Board) Outside(vec vec2.Vector) bool {
	if vec.X > float64(b.Width-1) || vec.X < 0.0 {
		return true
	}
	if vec.Y > float64(b.Height-1) || vec.Y < 0.0 {
		return true
	}
	return false
}

// Opponents returns every snake on the board that is not Me.
func (b *Board) Opponents() []*Snake {
	opponents := []*Snake{}
	for _, snake := range b.Snakes {
		if snake == nil || snake.Same(b.Me) {
			continue
		}
		opponents = append(opponents, snake)
	}
	return opponents
}

// Safety applies the move filters in order and returns what is left. Each
// filter only ever clears bits.
func (b *Board) Safety() Moves {
	if b.Me == nil || len(b.Me.Body) == 0 {
		return 0
	}
	moves := AllMoves
	head := b.Me.Head()

	// Never turn back onto the neck.
	if neck, ok := b.Me.Neck(); ok {
		switch {
		case neck.X < head.X:
			moves.Disable(Left)
		case neck.X > head.X:
			moves.Disable(Right)
		case neck.Y < head.Y:
			moves.Disable(Down)
		case neck.Y > head.Y:
			moves.Disable(Up)
		}
	}

	for _, d := range Directions {
		if b.Outside(head.Vec().Minus(Direction2Vector[d])) {
			moves.Disable(d)
		}
	}

	for _, d := range Directions {
		if b.Me.Occupies(d.Next(head)) {
			moves.Disable(d)
		}
	}

	// Shorter snakes lose a head-on collision, so their bodies are not avoided.
	for _, opponent := range b.Opponents() {
		if opponent.Len() < b.Me.Len() {
			continue
		}
		for _, d := range Directions {
			if opponent.Occupies(d.Next(head)) {
				moves.Disable(d)
			}
		}
	}
	return moves
}

func (b *Board) SafeMoves() []Direction {
	return b.Safety().List()
}

func (b *Board) turn() int {
	if b.Request == nil {
		return 0
	}
	return b.Request.Turn
}

// Move picks uniformly among the safe moves using r, or Down when none are safe.
func (b *Board) Move(r *rand.Rand) Direction {
	safety := b.Safety()
	safe := safety.List()
	if len(safe) == 0 {
		b.log.Warn().Int("turn", b.turn()).Msg("no safe moves detected, moving down")
		return Down
	}
	next := safe[r.Intn(len(safe))]
	b.log.Debug().
		Int("turn", b.turn()).
		Strs("safe", safety.Strings()).
		Str("move", string(next)).
		Msg("move")
	return next
}
