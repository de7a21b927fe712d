package subst

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

var (
	ErrMissingInput = errors.New("missing input")
	ErrCancelled    = errors.New("cancelled")
)

type Request struct {
	Root    string
	Search  string
	Replace string
	Import  string
}

// Validate reports the first empty field, in prompt order.
func (r Request) Validate() error {
	switch {
	case r.Root == "":
		return errors.Wrap(ErrMissingInput, "root")
	case r.Search == "":
		return errors.Wrap(ErrMissingInput, "search")
	case r.Replace == "":
		return errors.Wrap(ErrMissingInput, "replace")
	case r.Import == "":
		return errors.Wrap(ErrMissingInput, "import")
	}
	return nil
}

type Outcome int

const (
	Unchanged Outcome = iota
	Rewritten
	RewrittenWithImport
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Rewritten:
		return "rewritten"
	case RewrittenWithImport:
		return "rewritten+import"
	case Failed:
		return "failed"
	}
	return "unknown"
}

type FileResult struct {
	Path    string
	Dir     bool
	Outcome Outcome
	Err     error
}

func (r FileResult) Changed() bool {
	return r.Outcome == Rewritten || r.Outcome == RewrittenWithImport
}

// Message renders the operator-facing status line for r. Unchanged files
// produce an empty string.
func (r FileResult) Message(req Request) string {
	switch r.Outcome {
	case Rewritten:
		return fmt.Sprintf("Replaced '%s' with '%s' in %s", req.Search, req.Replace, r.Path)
	case RewrittenWithImport:
		return fmt.Sprintf("Replaced '%s' with '%s' and added import statement in %s", req.Search, req.Replace, r.Path)
	case Failed:
		if r.Dir {
			return fmt.Sprintf("Error reading directory %s: %v", r.Path, r.Err)
		}
		return fmt.Sprintf("Error reading/writing file %s: %v", r.Path, r.Err)
	}
	return ""
}

// FileHandler processes one qualifying file found by the Walker.
type FileHandler func(path string, info os.FileInfo) FileResult

type Summary struct {
	Rewritten []string
	Imported  []string
	Failed    []string
	Visited   int
	Message   string
}
