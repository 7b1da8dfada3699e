// Package terminal is the presentation layer: a line-oriented terminal
// prompter plus the interactive session flow built on top of the game
// services.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	gameerr "github.com/wartrail/wartrail/internal/errors"
)

// Prompter implements interfaces.Prompter over a terminal. Narration is
// printed one character at a time for pacing.
type Prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	delay time.Duration
}

// PrompterConfig holds configuration for the prompter
type PrompterConfig struct {
	In    io.Reader     // Required
	Out   io.Writer     // Required
	Delay time.Duration // Per-character narration delay; zero prints instantly
}

// NewPrompter creates a terminal prompter
func NewPrompter(cfg *PrompterConfig) *Prompter {
	if cfg.In == nil {
		panic("input stream is required")
	}
	if cfg.Out == nil {
		panic("output stream is required")
	}
	return &Prompter{
		in:    bufio.NewScanner(cfg.In),
		out:   cfg.Out,
		delay: cfg.Delay,
	}
}

// Narrate implements interfaces.Prompter.Narrate
func (p *Prompter) Narrate(text string) {
	if p.delay <= 0 {
		fmt.Fprintln(p.out, text)
		return
	}
	for _, ch := range text {
		fmt.Fprintf(p.out, "%c", ch)
		time.Sleep(p.delay)
	}
	fmt.Fprintln(p.out)
}

// Choose implements interfaces.Prompter.Choose. Invalid entries are
// re-prompted with no other effect until a valid pick is made.
func (p *Prompter) Choose(prompt string, options []string) (int, error) {
	for {
		p.Narrate(prompt)
		for i, opt := range options {
			p.Narrate(fmt.Sprintf("  %d. %s", i+1, opt))
		}

		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if idx, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil && idx >= 1 && idx <= len(options) {
			return idx - 1, nil
		}
		p.Narrate("Please enter a valid option number.")
	}
}

// ReadLine implements interfaces.Prompter.ReadLine
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		p.Narrate(prompt)
	}
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) readLine() (string, error) {
	fmt.Fprint(p.out, "> ")
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", gameerr.WrapWithCode(err, gameerr.CodeInterrupted, "input stream closed")
		}
		return "", gameerr.Interrupted("input stream closed")
	}
	return p.in.Text(), nil
}
