// internal/game/engine.go
//
// Core game engine for a single guessing session.
// Responsibilities:
//   - Create new games with a fixed range (0–9) and attempt budget (5).
//   - Pick the secret uniformly at random with crypto/rand.
//   - Classify guesses (too high / too low / correct).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The attempt counter lives on Game; callers never touch it directly.
//   - After the last incorrect guess the game moves to lost immediately,
//     so the driver reports exhaustion without asking for another guess.
package game

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const (
	defaultMin      = 0
	defaultMax      = 9
	defaultAttempts = 5
)

// ErrFinished is returned when a guess is applied to a terminal game.
var ErrFinished = errors.New("game finished")

// New constructs a game around a known secret.
func New(secret int) *Game {
	return &Game{
		ID:          uuid.NewString(),
		Secret:      secret,
		Min:         defaultMin,
		Max:         defaultMax,
		MaxAttempts: defaultAttempts,
		Remaining:   defaultAttempts,
		state:       StatePlaying,
	}
}

// NewRandom constructs a game whose secret is drawn uniformly from the
// default range.
func NewRandom() (*Game, error) {
	secret, err := randomInRange(defaultMin, defaultMax)
	if err != nil {
		return nil, err
	}
	return New(secret), nil
}

// ApplyGuess compares guess against the secret, mutating the game state.
// Returns the verdict, the state after the guess, or an error.
//
// State transitions:
//   - guess == Secret → won.
//   - otherwise Remaining is decremented; reaching zero → lost.
func (g *Game) ApplyGuess(guess int) (Verdict, State, error) {
	if g.Finished() {
		return "", g.state, ErrFinished
	}
	if g.Remaining <= 0 {
		g.state = StateLost
		return "", g.state, ErrFinished
	}

	g.LastGuess = guess
	g.Evaluated++

	var v Verdict
	switch {
	case guess == g.Secret:
		g.state = StateWon
		return VerdictCorrect, g.state, nil
	case guess > g.Secret:
		v = VerdictTooHigh
	default:
		v = VerdictTooLow
	}

	g.Remaining--
	if g.Remaining == 0 {
		g.state = StateLost
	}
	return v, g.state, nil
}

// State reports the current session state.
func (g *Game) State() State {
	if g.state == "" {
		return StatePlaying
	}
	return g.state
}

// Finished reports whether the game reached a terminal state.
func (g *Game) Finished() bool {
	return g.state == StateWon || g.state == StateLost
}

// randomInRange returns a cryptographically random int in [lo, hi].
func randomInRange(lo, hi int) (int, error) {
	if hi < lo {
		return 0, fmt.Errorf("invalid range [%d, %d]", lo, hi)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(hi-lo+1)))
	if err != nil {
		return 0, fmt.Errorf("draw secret: %w", err)
	}
	return lo + int(n.Int64()), nil
}
