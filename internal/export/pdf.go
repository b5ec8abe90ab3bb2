// Package export renders the task collection to a PDF document.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"tido/internal/task"
)

// WritePDF renders tasks as a one-page-per-overflow PDF list and writes
// it to w. Completed tasks are marked [x], open tasks [ ].
func WritePDF(w io.Writer, tasks []task.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Tasks")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)

	if len(tasks) == 0 {
		pdf.MultiCell(0, 6, "(no tasks)", "0", "L", false)
	}
	for i, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%3d. %s %s", i+1, mark, t.Title)
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}
