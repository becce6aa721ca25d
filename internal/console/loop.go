// internal/console/loop.go
//
// Drives one guessing session against a Source.
//
// Flow:
//   - banner with the range,
//   - first prompt, then a "new number" prompt after every miss,
//   - success message on won, exhaustion report on lost.
//
// Nothing is read once the game is terminal: the report after the last
// miss comes straight from the game state.
//
// Guesses and the secret are printed as plain digits, without locale
// grouping, so the report echoes exactly what was typed.
package console

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guess/internal/game"
	"github.com/robalobadob/guess/internal/messages"
)

// Result summarizes a finished (or aborted) session.
type Result struct {
	State     game.State
	Evaluated int
	Remaining int
	LastGuess int
	Secret    int
}

// Loop couples a game with its guess source and output stream.
type Loop struct {
	game   *game.Game
	src    Source
	out    io.Writer
	msg    *messages.Printer
	logger zerolog.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger replaces the global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(lp *Loop) { lp.logger = l }
}

// NewLoop constructs a Loop.
func NewLoop(g *game.Game, src Source, out io.Writer, msg *messages.Printer, opts ...Option) *Loop {
	l := &Loop{game: g, src: src, out: out, msg: msg, logger: log.Logger}
	for _, o := range opts {
		o(l)
	}
	l.logger = l.logger.With().Str("session", g.ID).Logger()
	return l
}

// Run plays the session to a terminal state.
// It returns an error only when the source fails (including ErrInputClosed)
// or ctx is cancelled; the Result then reflects the state reached so far.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	g := l.game
	l.logger.Debug().Int("secret", g.Secret).Int("attempts", g.Remaining).Msg("session started")

	l.println(l.msg.Sprintf(messages.KeyBanner, g.Min, g.Max))

	prompt := messages.KeyPromptFirst
	for {
		switch g.State() {
		case game.StateWon:
			l.println(l.msg.Sprintf(messages.KeyWon, strconv.Itoa(g.Secret)))
			l.logFinished()
			return l.result(), nil
		case game.StateLost:
			l.println(l.msg.Sprintf(messages.KeyLost))
			l.println(l.msg.Sprintf(messages.KeyLostRemaining, g.Remaining))
			l.println(l.msg.Sprintf(messages.KeyLostGuess, strconv.Itoa(g.LastGuess)))
			l.println(l.msg.Sprintf(messages.KeyLostSecret, strconv.Itoa(g.Secret)))
			l.logFinished()
			return l.result(), nil
		}

		guess, err := l.src.Next(ctx, l.msg.Sprintf(prompt))
		if err != nil {
			l.logger.Warn().Err(err).Int("remaining", g.Remaining).Msg("session aborted")
			return l.result(), fmt.Errorf("read guess: %w", err)
		}
		prompt = messages.KeyPromptNext

		v, st, err := g.ApplyGuess(guess)
		if err != nil {
			return l.result(), fmt.Errorf("apply guess: %w", err)
		}
		l.logger.Debug().
			Int("guess", guess).
			Str("verdict", string(v)).
			Int("remaining", g.Remaining).
			Str("state", string(st)).
			Msg("guess evaluated")

		switch v {
		case game.VerdictTooHigh:
			l.println(l.msg.Sprintf(messages.KeyTooHigh))
		case game.VerdictTooLow:
			l.println(l.msg.Sprintf(messages.KeyTooLow))
		}
	}
}

func (l *Loop) logFinished() {
	l.logger.Info().
		Str("state", string(l.game.State())).
		Int("evaluated", l.game.Evaluated).
		Msg("session finished")
}

func (l *Loop) result() Result {
	g := l.game
	return Result{
		State:     g.State(),
		Evaluated: g.Evaluated,
		Remaining: g.Remaining,
		LastGuess: g.LastGuess,
		Secret:    g.Secret,
	}
}

func (l *Loop) println(s string) {
	_, _ = fmt.Fprintln(l.out, s)
}
