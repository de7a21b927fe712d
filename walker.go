package subst

import (
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Walker enumerates a directory tree depth-first and hands qualifying files
// to a FileHandler. Failures are reported and never stop the walk.
type Walker struct {
	fm      *FileManager
	exclude *Excluder
	report  func(FileResult)
	log     zerolog.Logger
	root    string
}

// NewWalker builds a walker. A nil exclude enters every directory.
func NewWalker(fm *FileManager, exclude *Excluder, report func(FileResult), log zerolog.Logger) *Walker {
	return &Walker{fm: fm, exclude: exclude, report: report, log: log}
}

// Walk visits root recursively. Directories matching an exclude pattern are
// not entered. The returned error aggregates every failed path and is nil
// when nothing failed.
func (w *Walker) Walk(root string, shouldProcess func(name string) bool, onFile FileHandler) error {
	var errs *multierror.Error
	w.root = root
	w.walkDir(root, shouldProcess, onFile, &errs)
	return errs.ErrorOrNil()
}

func (w *Walker) walkDir(dir string, shouldProcess func(string) bool, onFile FileHandler, errs **multierror.Error) {
	entries, err := w.fm.List(dir)
	if err != nil {
		w.fail(FileResult{Path: dir, Dir: true, Outcome: Failed, Err: err}, errs)
		return
	}

	for _, info := range entries {
		path := filepath.Join(dir, info.Name())

		switch {
		case info.Mode().IsRegular():
			if !shouldProcess(info.Name()) {
				continue
			}
			res := onFile(path, info)
			if res.Outcome == Failed {
				w.fail(res, errs)
				continue
			}
			w.log.Debug().Str("path", path).Stringer("outcome", res.Outcome).Msg("file processed")
			w.emit(res)

		case info.IsDir():
			rel, err := filepath.Rel(w.root, path)
			if err != nil {
				rel = info.Name()
			}
			if w.exclude.Match(rel) {
				w.log.Debug().Str("path", path).Msg("directory excluded")
				continue
			}
			w.walkDir(path, shouldProcess, onFile, errs)
		}
	}
}

func (w *Walker) fail(res FileResult, errs **multierror.Error) {
	w.log.Debug().Err(res.Err).Str("path", res.Path).Bool("dir", res.Dir).Msg("path failed")
	*errs = multierror.Append(*errs, errors.Wrapf(res.Err, "%s", res.Path))
	w.emit(res)
}

func (w *Walker) emit(res FileResult) {
	if w.report != nil {
		w.report(res)
	}
}
