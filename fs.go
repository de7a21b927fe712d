package subst

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

const DefaultExtension = ".tsx"

type PathResolver struct {
	wd string
}

// NewPathResolver resolves relative paths against base, or against the
// current working directory when base is empty.
func NewPathResolver(base string) (*PathResolver, error) {
	if base != "" {
		abs, err := filepath.Abs(base)
		if err != nil {
			return nil, errors.Wrapf(err, "could not resolve workspace %q", base)
		}
		return &PathResolver{wd: abs}, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "could not get current working directory")
	}
	return &PathResolver{wd: wd}, nil
}

func (r *PathResolver) Resolve(relativePath string) string {
	if filepath.IsAbs(relativePath) {
		return filepath.Clean(relativePath)
	}
	return filepath.Join(r.wd, relativePath)
}

// HasAllowedExtension reports whether name ends with one of extensions.
// An empty list falls back to DefaultExtension.
func HasAllowedExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return strings.HasSuffix(name, DefaultExtension)
	}
	for _, e := range extensions {
		if e != "" && strings.HasSuffix(name, e) {
			return true
		}
	}
	return false
}

// ExtensionMatcher binds HasAllowedExtension to a fixed list.
func ExtensionMatcher(extensions []string) func(string) bool {
	return func(name string) bool {
		return HasAllowedExtension(name, extensions)
	}
}

// Excluder matches directories against compiled exclude globs. A pattern
// matches a directory's base name or its slash-separated path relative to the
// walk root; a leading "**/" also matches at the top level.
type Excluder struct {
	globs []glob.Glob
}

func NewExcluder(patterns []string) (*Excluder, error) {
	e := &Excluder{}
	for _, p := range patterns {
		variants := []string{p}
		if rest, ok := strings.CutPrefix(p, "**/"); ok && rest != "" {
			variants = append(variants, rest)
		}
		for _, v := range variants {
			g, err := glob.Compile(v, '/')
			if err != nil {
				return nil, errors.Wrapf(err, "invalid exclude pattern %q", p)
			}
			e.globs = append(e.globs, g)
		}
	}
	return e, nil
}

// Match reports whether the directory at rel (relative to the walk root)
// is excluded. A nil Excluder excludes nothing.
func (e *Excluder) Match(rel string) bool {
	if e == nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	name := path.Base(rel)
	for _, g := range e.globs {
		if g.Match(name) || g.Match(rel) {
			return true
		}
	}
	return false
}

func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
