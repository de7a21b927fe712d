package subst

import (
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

// SourceProvider supplies recipe text: piped stdin when present, the
// clipboard otherwise.
type SourceProvider struct {
	stdin     io.Reader
	piped     bool
	clipboard func() (string, error)
}

func NewSourceProvider() *SourceProvider {
	return &SourceProvider{
		stdin:     os.Stdin,
		piped:     !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()),
		clipboard: clipboard.ReadAll,
	}
}

func (sp *SourceProvider) GetContent() (string, error) {
	if sp.piped {
		c, err := io.ReadAll(sp.stdin)
		if err != nil {
			return "", err
		}
		return string(c), nil
	}

	c, err := sp.clipboard()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(c), nil
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
