// Package cli parses user input into commands and runs the interactive
// loop that dispatches them to the task manager.
package cli

// Kind identifies a command variant.
type Kind int

// Command kinds, one per verb. KindExit is the zero value so an empty
// Command reads as "stop the loop".
const (
	KindExit Kind = iota
	KindAdd
	KindList
	KindToggle
	KindDelete
	KindExport
	KindHelp
)

// Command is a parsed user instruction: a kind plus its payload. Only
// the fields relevant to the kind are set (Title for add, Index for
// toggle/delete, Path for export).
type Command struct {
	Kind  Kind
	Title string
	Index int // 0-based
	Path  string
}
