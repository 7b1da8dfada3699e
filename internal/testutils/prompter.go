// Package testutils provides shared fixtures for deterministic game tests.
package testutils

import (
	"fmt"
	"strings"
)

// ScriptedPrompter implements interfaces.Prompter with pre-seeded
// selections. Narration is recorded for assertions. Running out of
// scripted input panics, since that is a test-authoring bug.
type ScriptedPrompter struct {
	Choices  []int
	Lines    []string
	Narrated []string

	// Err, when set, is returned from the next blocking call to
	// simulate an interrupted session.
	Err error

	choiceIdx int
	lineIdx   int
}

// NewScriptedPrompter creates an empty scripted prompter
func NewScriptedPrompter() *ScriptedPrompter {
	return &ScriptedPrompter{}
}

// QueueChoice appends selections returned by Choose, in order
func (p *ScriptedPrompter) QueueChoice(choices ...int) {
	p.Choices = append(p.Choices, choices...)
}

// QueueLine appends free-text entries returned by ReadLine, in order
func (p *ScriptedPrompter) QueueLine(lines ...string) {
	p.Lines = append(p.Lines, lines...)
}

// Choose implements interfaces.Prompter.Choose
func (p *ScriptedPrompter) Choose(prompt string, options []string) (int, error) {
	if p.Err != nil {
		return 0, p.Err
	}
	if p.choiceIdx >= len(p.Choices) {
		panic(fmt.Sprintf("testutils: no scripted choices remain (used %d of %d, prompt=%q)",
			p.choiceIdx, len(p.Choices), prompt))
	}
	choice := p.Choices[p.choiceIdx]
	p.choiceIdx++
	if choice < 0 || choice >= len(options) {
		panic(fmt.Sprintf("testutils: scripted choice %d is outside [0,%d)", choice, len(options)))
	}
	return choice, nil
}

// ReadLine implements interfaces.Prompter.ReadLine
func (p *ScriptedPrompter) ReadLine(prompt string) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	if p.lineIdx >= len(p.Lines) {
		panic(fmt.Sprintf("testutils: no scripted lines remain (used %d of %d, prompt=%q)",
			p.lineIdx, len(p.Lines), prompt))
	}
	line := p.Lines[p.lineIdx]
	p.lineIdx++
	return line, nil
}

// Narrate implements interfaces.Prompter.Narrate
func (p *ScriptedPrompter) Narrate(text string) {
	p.Narrated = append(p.Narrated, text)
}

// HasNarration reports whether any recorded narration contains substr
func (p *ScriptedPrompter) HasNarration(substr string) bool {
	for _, line := range p.Narrated {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
