package subst

import (
	"regexp"
	"strings"
)

// Rewrite applies req to content and reports whether anything changed.
func Rewrite(content string, req Request) (string, bool) {
	out, outcome := RewriteContent(content, req)
	return out, outcome != Unchanged
}

// RewriteContent replaces every literal occurrence of req.Search with
// req.Replace, unquotes replacements left inside a matching quote pair and
// prepends req.Import when the original content lacks it.
func RewriteContent(content string, req Request) (string, Outcome) {
	if !strings.Contains(content, req.Search) {
		return content, Unchanged
	}

	replaced := strings.ReplaceAll(content, req.Search, req.Replace)
	final := StripQuotes(replaced, req.Replace)

	// The import check looks at the original text, not the rewritten one.
	if strings.Contains(content, req.Import) {
		return final, Rewritten
	}
	return req.Import + "\n" + final, RewrittenWithImport
}

// StripQuotes removes a single pair of identical quotes (" or ') that
// immediately encloses value. Only one layer is removed per call.
func StripQuotes(text, value string) string {
	if value == "" {
		return text
	}
	q := regexp.QuoteMeta(value)
	re := regexp.MustCompile(`"` + q + `"|'` + q + `'`)
	return re.ReplaceAllLiteralString(text, value)
}
