package subst

import (
	"strings"
)

// ParseRecipe reads a Markdown recipe whose fenced blocks are tagged root,
// search, replace or import. The last block of each kind wins and a single
// trailing newline is dropped, so a recipe can carry multi-line values.
//
//	```search
//	="#3762DD"
//	```
func ParseRecipe(content string) (Request, error) {
	var req Request
	blocks, err := ExtractCodeBlocks([]byte(content))
	if err != nil {
		return req, err
	}

	for _, b := range blocks {
		v := strings.TrimSuffix(b.Content, "\n")
		v = strings.TrimSuffix(v, "\r")
		switch b.Lang {
		case "root":
			req.Root = strings.TrimSpace(v)
		case "search":
			req.Search = v
		case "replace":
			req.Replace = v
		case "import":
			req.Import = v
		}
	}
	return req, nil
}

// Merge fills the empty fields of r from fallback.
func (r Request) Merge(fallback Request) Request {
	if r.Root == "" {
		r.Root = fallback.Root
	}
	if r.Search == "" {
		r.Search = fallback.Search
	}
	if r.Replace == "" {
		r.Replace = fallback.Replace
	}
	if r.Import == "" {
		r.Import = fallback.Import
	}
	return r
}
