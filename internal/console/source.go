package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the guess stream ends before the game does.
var ErrInputClosed = errors.New("input closed")

// Source supplies guesses to the loop. prompt is the text to show before
// reading; sources that do not talk to a person may ignore it.
type Source interface {
	Next(ctx context.Context, prompt string) (int, error)
}

// Reader reads one integer guess per line from an io.Reader, writing prompts
// to an io.Writer.
//
// A line that is not a base-10 integer prints the invalid-input notice and
// asks again with the same prompt. Lines have no length limit.
//
// Reads honor ctx: a cancelled Next returns ctx.Err() while the underlying
// read stays pending, and the next call picks up its line.
type Reader struct {
	rd      *bufio.Reader
	out     io.Writer
	notice  string
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewReader constructs a Reader. notice is printed after a malformed line.
func NewReader(in io.Reader, out io.Writer, notice string) *Reader {
	return &Reader{rd: bufio.NewReader(in), out: out, notice: notice}
}

// Next prompts for and returns the next well-formed guess.
func (r *Reader) Next(ctx context.Context, prompt string) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return 0, fmt.Errorf("write prompt: %w", err)
		}
		line, err := r.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			if _, err := fmt.Fprintln(r.out, r.notice); err != nil {
				return 0, fmt.Errorf("write notice: %w", err)
			}
			continue
		}
		return n, nil
	}
}

// readLine returns the next line, or ErrInputClosed once the input is
// exhausted. A final line without a trailing newline is still returned.
func (r *Reader) readLine(ctx context.Context) (string, error) {
	if r.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := r.rd.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		r.pending = ch
	}

	var res lineResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-r.pending:
		r.pending = nil
	}

	switch {
	case res.err == nil:
		return res.line, nil
	case errors.Is(res.err, io.EOF) && res.line != "":
		return res.line, nil
	case errors.Is(res.err, io.EOF):
		return "", ErrInputClosed
	default:
		return "", fmt.Errorf("read line: %w", res.err)
	}
}

// Sequence replays a fixed list of guesses. Once the list is used up it
// reports ErrInputClosed.
type Sequence struct {
	guesses []int
	prompts []string
}

// NewSequence constructs a Sequence over guesses.
func NewSequence(guesses ...int) *Sequence {
	return &Sequence{guesses: append([]int(nil), guesses...)}
}

// Next returns the next guess in the list.
func (s *Sequence) Next(ctx context.Context, prompt string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.prompts = append(s.prompts, prompt)
	if len(s.guesses) == 0 {
		return 0, ErrInputClosed
	}
	n := s.guesses[0]
	s.guesses = s.guesses[1:]
	return n, nil
}

// Prompts returns every prompt requested so far, in order.
func (s *Sequence) Prompts() []string {
	return append([]string(nil), s.prompts...)
}
