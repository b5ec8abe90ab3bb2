package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"tido/internal/export"
	"tido/internal/manager"
	"tido/internal/output"
)

const prompt = "> "

// ExportFile is the default filename for the export command, created in
// the data directory.
const ExportFile = "tasks.pdf"

// REPL runs the interactive prompt/read/parse/execute loop against a
// task manager.
type REPL struct {
	mgr     *manager.Manager
	dataDir string
	in      *bufio.Scanner
	out     io.Writer
	errOut  io.Writer
	log     *slog.Logger
}

// NewREPL creates a loop reading commands from in and writing results to
// out. Errors (parse failures, save failures) go to errOut. dataDir is
// where the export command writes by default.
func NewREPL(mgr *manager.Manager, dataDir string, in io.Reader, out, errOut io.Writer, logger *slog.Logger) *REPL {
	if logger == nil {
		logger = slog.Default()
	}
	return &REPL{
		mgr:     mgr,
		dataDir: dataDir,
		in:      bufio.NewScanner(in),
		out:     out,
		errOut:  errOut,
		log:     logger,
	}
}

// Run executes commands until an exit command, end of input, or context
// cancellation, then prints a farewell line. It returns an error only
// when reading input fails.
func (r *REPL) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out, "bye")
			return nil
		default:
		}

		fmt.Fprint(r.out, prompt)
		if !r.in.Scan() {
			fmt.Fprintln(r.out, "bye")
			return r.in.Err()
		}

		cmd, err := Parse(r.in.Text())
		if err != nil {
			fmt.Fprintf(r.errOut, "error: %v\n", err)
			continue
		}
		if cmd.Kind == KindExit {
			fmt.Fprintln(r.out, "bye")
			return nil
		}
		r.execute(ctx, cmd)
	}
}

// execute dispatches one non-exit command to the manager and prints its
// confirmation. Save failures are reported but never stop the loop; the
// in-memory mutation has already happened.
func (r *REPL) execute(ctx context.Context, cmd Command) {
	switch cmd.Kind {
	case KindAdd:
		t, err := r.mgr.Add(ctx, cmd.Title)
		r.reportSaveErr(err)
		fmt.Fprintf(r.out, "added: %s\n", t.Title)
	case KindList:
		output.FormatList(r.out, r.mgr.Tasks())
	case KindToggle:
		_, ok, err := r.mgr.Toggle(ctx, cmd.Index)
		r.reportSaveErr(err)
		if !ok {
			r.log.Debug("toggle out of range", slog.Int("index", cmd.Index))
		}
		fmt.Fprintf(r.out, "toggled: %d\n", cmd.Index+1)
	case KindDelete:
		_, ok, err := r.mgr.Delete(ctx, cmd.Index)
		r.reportSaveErr(err)
		if !ok {
			r.log.Debug("delete out of range", slog.Int("index", cmd.Index))
		}
		fmt.Fprintf(r.out, "deleted: %d\n", cmd.Index+1)
	case KindExport:
		path := cmd.Path
		if path == "" {
			path = filepath.Join(r.dataDir, ExportFile)
		}
		if err := r.exportPDF(path); err != nil {
			fmt.Fprintf(r.errOut, "error: export failed: %v\n", err)
			return
		}
		fmt.Fprintf(r.out, "exported: %s\n", path)
	case KindHelp:
		fmt.Fprint(r.out, helpText)
	}
}

func (r *REPL) exportPDF(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WritePDF(f, r.mgr.Tasks()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *REPL) reportSaveErr(err error) {
	if err != nil {
		fmt.Fprintf(r.errOut, "error: save failed: %v\n", err)
	}
}

const helpText = `Commands:
  add <title...>   Create a task
  list             List all tasks
  toggle <n>       Flip completion of task n
  delete <n>       Remove task n
  export [path]    Write the list as a PDF
  help             Print this summary
  exit             Quit
`
