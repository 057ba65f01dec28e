package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Reporter writes the human-readable diagnostic lines: one "Error: ..." line
// per failure and one "Success: ..." line per generated prompt. A silent
// Reporter writes nothing. Labels are colored only when w is a terminal.
type Reporter struct {
	w       io.Writer
	silent  bool
	errorSt lipgloss.Style
	okSt    lipgloss.Style
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer, silent bool) *Reporter {
	r := &Reporter{
		w:       w,
		silent:  silent,
		errorSt: lipgloss.NewStyle(),
		okSt:    lipgloss.NewStyle(),
	}

	if isTerminal(w) {
		renderer := lipgloss.NewRenderer(w)
		r.errorSt = renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true) // Red
		r.okSt = renderer.NewStyle().Foreground(lipgloss.Color("10"))              // Green
	}
	return r
}

// Success reports a generated prompt and its token count.
func (r *Reporter) Success(tokens int) {
	if r.silent {
		return
	}
	_, _ = fmt.Fprintf(r.w, "%s: Prompt generated with %d tokens.\n", r.okSt.Render("Success"), tokens)
}

// Error reports a failure.
func (r *Reporter) Error(err error) {
	if r.silent || err == nil {
		return
	}
	_, _ = fmt.Fprintf(r.w, "%s: %s\n", r.errorSt.Render("Error"), errorMessage(err))
}

// errorMessage prefers the message of the first typed rp error in the chain
// so wrapping never changes the text users see.
func errorMessage(err error) string {
	var (
		listErr     *ListFileError
		templateErr *TemplateFileError
		fileErr     *FileReadError
		writeErr    *WriteError
	)
	switch {
	case errors.As(err, &listErr):
		return listErr.Error()
	case errors.As(err, &templateErr):
		return templateErr.Error()
	case errors.As(err, &fileErr):
		return fileErr.Error()
	case errors.As(err, &writeErr):
		return writeErr.Error()
	}
	return err.Error()
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
