// internal/game/types.go
//
// Core type definitions for the guessing game engine.
// Defines:
//   - State: coarse session state (playing/won/lost).
//   - Verdict: result of comparing one guess against the secret.
//   - Game: state for a single in-progress or finished session.

package game

// State is the session state. Playing is initial; Won and Lost are terminal.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Verdict represents the evaluation of a single guess.
// Possible values:
//   - "correct":  guess equals the secret.
//   - "too_high": guess is greater than the secret.
//   - "too_low":  guess is less than the secret.
type Verdict string

const (
	VerdictCorrect Verdict = "correct"
	VerdictTooHigh Verdict = "too_high"
	VerdictTooLow  Verdict = "too_low"
)

// Game holds the state of a single guessing session.
type Game struct {
	ID          string // Session identifier (uuid), used for log correlation.
	Secret      int    // The number to guess; fixed for the whole session.
	Min         int    // Inclusive lower bound of the secret range.
	Max         int    // Inclusive upper bound of the secret range.
	MaxAttempts int    // Attempt budget the session started with.
	Remaining   int    // Attempts left; never negative, never increases.
	LastGuess   int    // Most recent guess evaluated (no history kept).
	Evaluated   int    // Number of guesses compared against the secret.
	state       State
}
