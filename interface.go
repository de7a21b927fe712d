package subst

import (
	"github.com/pkg/errors"
)

// Apply runs a single substitution without any terminal output and returns
// the touched paths grouped by outcome.
func Apply(req Request, config Config) (map[string][]string, error) {
	config.Request = req
	app, err := NewApp(&config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize subst app")
	}

	summary, err := app.Execute()
	if summary.Rewritten == nil && summary.Failed == nil && err != nil {
		return nil, err
	}

	return map[string][]string{
		"Rewritten": summary.Rewritten,
		"Imported":  summary.Imported,
		"Failed":    summary.Failed,
	}, err
}
