// Package interfaces holds the small cross-cutting contracts shared by the
// game services and the presentation layer.
package interfaces

// Prompter is the presentation collaborator. The engine never touches the
// terminal directly; all player interaction flows through here.
type Prompter interface {
	// Choose presents a numbered list of options and blocks until the
	// player makes a valid pick. Invalid input is re-prompted locally
	// with no side effects and never surfaces to the caller. The
	// returned index is always in [0, len(options)). The only error an
	// implementation may return is an interrupted session.
	Choose(prompt string, options []string) (int, error)

	// ReadLine prompts for a single line of free text. An empty prompt
	// suppresses the leading narration. Same interrupt semantics as
	// Choose.
	ReadLine(prompt string) (string, error)

	// Narrate displays one line of story or status text. It has no
	// effect on engine state and is safe to discard in tests.
	Narrate(text string)
}
