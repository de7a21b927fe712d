package subst

import (
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

type Config struct {
	Request    Request
	Extensions []string
	Exclude    []string
	Workspace  string
}

// ProgressUpdate is called after every qualifying file.
type ProgressUpdate func(visited, rewritten int)

type App struct {
	cfg              *Config
	pathResolver     *PathResolver
	fileManager      *FileManager
	exclude          *Excluder
	log              zerolog.Logger
	reporter         func(FileResult)
	progressCallback ProgressUpdate
	runID            string
}

type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string { return e.Err.Error() }

func (e *DetailedError) Unwrap() error { return e.Err }

type Option func(*App)

func WithFs(fs afero.Fs) Option {
	return func(a *App) { a.fileManager = NewFileManager(fs) }
}

func WithLogger(l zerolog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithReporter receives every non-unchanged FileResult as it happens.
func WithReporter(r func(FileResult)) Option {
	return func(a *App) { a.reporter = r }
}

func NewApp(cfg *Config, opts ...Option) (*App, error) {
	pr, err := NewPathResolver(cfg.Workspace)
	if err != nil {
		return nil, err
	}

	// Exclude globs are compiled once here so a typo fails before any I/O.
	ex, err := NewExcluder(cfg.Exclude)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:          cfg,
		pathResolver: pr,
		exclude:      ex,
		fileManager:  NewFileManager(nil),
		log:          zerolog.Nop(),
		runID:        uuid.NewString(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With().Str("run", a.runID).Logger()
	return a, nil
}

func (a *App) SetProgressCallback(cb ProgressUpdate) { a.progressCallback = cb }

func (a *App) SetReporter(r func(FileResult)) { a.reporter = r }

func (a *App) Request() Request { return a.cfg.Request }

func (a *App) Execute() (summary Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{Err: errors.Errorf("panic: %v", r), Stack: debug.Stack()}
		}
	}()

	req := a.cfg.Request
	if err := req.Validate(); err != nil {
		return Summary{}, err
	}
	return a.processTree(req)
}

func (a *App) processTree(req Request) (Summary, error) {
	root := a.pathResolver.Resolve(req.Root)
	a.log.Debug().Str("root", root).Strs("extensions", a.cfg.Extensions).Msg("walk started")

	var s Summary
	walker := NewWalker(a.fileManager, a.exclude, func(res FileResult) {
		switch res.Outcome {
		case Rewritten:
			s.Rewritten = append(s.Rewritten, res.Path)
		case RewrittenWithImport:
			s.Rewritten = append(s.Rewritten, res.Path)
			s.Imported = append(s.Imported, res.Path)
		case Failed:
			s.Failed = append(s.Failed, res.Path)
		}
		if a.reporter != nil && res.Outcome != Unchanged {
			a.reporter(res)
		}
	}, a.log)

	rewritten := 0
	err := walker.Walk(root, ExtensionMatcher(a.cfg.Extensions), func(path string, info os.FileInfo) FileResult {
		res := a.processFile(req, path, info)
		s.Visited++
		if res.Changed() {
			rewritten++
		}
		a.reportProgress(s.Visited, rewritten)
		return res
	})

	if len(s.Rewritten) == 0 && len(s.Failed) == 0 {
		s.Message = "Nothing to do"
	}
	a.log.Debug().Int("visited", s.Visited).Int("rewritten", len(s.Rewritten)).Int("failed", len(s.Failed)).Msg("walk finished")

	a.relativizeSummaryPaths(&s)
	return s, err
}

func (a *App) processFile(req Request, path string, info os.FileInfo) FileResult {
	content, err := a.fileManager.Read(path)
	if err != nil {
		return FileResult{Path: path, Outcome: Failed, Err: err}
	}

	updated, outcome := RewriteContent(content, req)
	if outcome == Unchanged {
		return FileResult{Path: path, Outcome: Unchanged}
	}

	if err := a.fileManager.Write(path, updated, info.Mode().Perm()); err != nil {
		return FileResult{Path: path, Outcome: Failed, Err: err}
	}
	return FileResult{Path: path, Outcome: outcome}
}

func (a *App) reportProgress(visited, rewritten int) {
	if a.progressCallback != nil {
		a.progressCallback(visited, rewritten)
	}
}

func (a *App) relativizeSummaryPaths(s *Summary) {
	wd := a.pathResolver.wd
	relList := func(paths []string) []string {
		var res []string
		for _, p := range paths {
			if r, err := filepath.Rel(wd, p); err == nil {
				p = r
			}
			res = append(res, p)
		}
		return res
	}
	s.Rewritten = relList(s.Rewritten)
	s.Imported = relList(s.Imported)
	s.Failed = relList(s.Failed)
}
