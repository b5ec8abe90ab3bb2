// Package output provides formatters for the interactive loop's output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tido/internal/task"
)

// FormatTask writes one list line for a task.
// Format: "{N}. {RENDER}\n" with N the 1-based display index.
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%d. %s\n", num, normalize(t.Render()))
}

// FormatList writes the whole collection, one line per task, in order.
func FormatList(w io.Writer, tasks []task.Task) {
	for i, t := range tasks {
		FormatTask(w, i+1, t)
	}
}

// normalize flattens a rendering to a single display line.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
