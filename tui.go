package subst

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	importedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
)

type spinner struct {
	frames []string
	index  int
}

func newSpinner() spinner {
	return spinner{frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}}
}
func (s *spinner) tick()       { s.index = (s.index + 1) % len(s.frames) }
func (s spinner) View() string { return s.frames[s.index] }

type TUI struct {
	app              *App
	out              io.Writer
	noAnimation      bool
	spinner          spinner
	mu               sync.Mutex
	visited, changed int
}

func NewTUI(app *App, noAnimation bool) *TUI {
	return &TUI{app: app, out: os.Stdout, noAnimation: noAnimation, spinner: newSpinner()}
}

// Run executes the app, printing a status line per changed or failed path
// and the summary at the end.
func (t *TUI) Run() (Summary, error) {
	req := t.app.Request()
	t.app.SetReporter(func(res FileResult) {
		t.mu.Lock()
		defer t.mu.Unlock()
		if !t.noAnimation {
			fmt.Fprint(t.out, "\r\x1b[K")
		}
		fmt.Fprintln(t.out, FormatResult(res, req))
	})

	if t.noAnimation {
		summary, err := t.app.Execute()
		fmt.Fprint(t.out, FormatSummary(summary))
		return summary, err
	}

	t.app.SetProgressCallback(func(v, c int) {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.visited, t.changed = v, c
	})

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case <-time.After(100 * time.Millisecond):
				t.spinner.tick()
				t.renderProgress()
			}
		}
	}()

	summary, err := t.app.Execute()
	close(done)
	wg.Wait()

	t.mu.Lock()
	fmt.Fprint(t.out, "\r\x1b[K")
	fmt.Fprint(t.out, FormatSummary(summary))
	t.mu.Unlock()
	return summary, err
}

func (t *TUI) renderProgress() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "\r%s Processing... %d files, %d rewritten\x1b[K", t.spinner.View(), t.visited, t.changed)
}

func FormatResult(res FileResult, req Request) string {
	msg := res.Message(req)
	switch res.Outcome {
	case Failed:
		return errorStyle.Render(msg)
	case RewrittenWithImport:
		return importedStyle.Render(msg)
	default:
		return successStyle.Render(msg)
	}
}

func FormatSummary(s Summary) string {
	var b strings.Builder
	if s.Message != "" {
		b.WriteString(headerStyle.Render(s.Message) + "\n\n")
	}

	renderList := func(title string, style lipgloss.Style, list []string) {
		if len(list) == 0 {
			return
		}
		b.WriteString(style.Render(title) + "\n")
		for _, f := range list {
			b.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	renderList("Rewritten:", successStyle, s.Rewritten)
	renderList("Imported:", importedStyle, s.Imported)
	renderList("Failed:", errorStyle, s.Failed)

	return b.String()
}
