package main

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

// runMain re-executes the test binary so main can call os.Exit.
func runMain(t *testing.T, name, stdin string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^"+name+"$")
	cmd.Env = append(os.Environ(), "TEST_MAIN_SUBPROCESS=1", "GUESS_LOG_LEVEL=warn", "GUESS_LOCALE=en-US")
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}

func TestMainExitsNonZeroOnClosedInput(t *testing.T) {
	if os.Getenv("TEST_MAIN_SUBPROCESS") == "1" {
		main()
		return
	}

	stdout, stderr, code := runMain(t, "TestMainExitsNonZeroOnClosedInput", "")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.HasPrefix(stdout, "I am thinking of a number between 0 and 9...\nEnter a guess: ") {
		t.Fatalf("unexpected stdout %q", stdout)
	}
	if !strings.Contains(stderr, "input closed") {
		t.Fatalf("expected input closed on stderr, got %q", stderr)
	}
}

func TestMainExitsZeroAfterFinishing(t *testing.T) {
	if os.Getenv("TEST_MAIN_SUBPROCESS") == "1" {
		main()
		return
	}

	// Sweeping the whole range finishes the game whatever the secret is:
	// either one of the first five guesses hits, or the budget runs out.
	stdout, _, code := runMain(t, "TestMainExitsZeroAfterFinishing", "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n")
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout, "Congrats! The number was: ") && !strings.Contains(stdout, "You have no more attempts left.") {
		t.Fatalf("expected a terminal message, got %q", stdout)
	}
}

func TestMainExitsNonZeroOnInterrupt(t *testing.T) {
	if os.Getenv("TEST_MAIN_SUBPROCESS") == "1" {
		main()
		return
	}
	if runtime.GOOS == "windows" {
		t.Skip("os.Interrupt cannot be sent to a process on windows")
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMainExitsNonZeroOnInterrupt$")
	cmd.Env = append(os.Environ(), "TEST_MAIN_SUBPROCESS=1", "GUESS_LOG_LEVEL=warn", "GUESS_LOCALE=en-US")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		t.Fatalf("stdin pipe: %v", err)
	}
	defer stdin.Close()
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		t.Fatalf("stdout pipe: %v", err)
	}
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Wait until the game is blocked on the first read.
	rd := bufio.NewReader(stdout)
	var seen strings.Builder
	for !strings.HasSuffix(seen.String(), "Enter a guess: ") {
		b, err := rd.ReadByte()
		if err != nil {
			t.Fatalf("read stdout: %v (got %q)", err, seen.String())
		}
		seen.WriteByte(b)
	}
	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		t.Fatalf("signal: %v", err)
	}
	_, _ = io.Copy(io.Discard, rd)

	err = cmd.Wait()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "context canceled") {
		t.Fatalf("expected context canceled on stderr, got %q", stderr.String())
	}
}
