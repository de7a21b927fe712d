package subst

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type CLIConfig struct {
	Root        string
	Search      string
	Replace     string
	Import      string
	Extensions  []string
	Exclude     []string
	Paste       bool
	NoPrompt    bool
	NoAnimation bool
	ConfigPath  string
	LogLevel    string
	Completion  string
}

var cfg = &CLIConfig{}

// Swapped out in tests, which have no terminal.
var (
	isInteractive = IsInteractive
	promptMissing = PromptMissing
)

var rootCmd = &cobra.Command{
	Use:   "subst",
	Short: "Replace a literal string across a source tree and add an import.",
	Long: `Replace every occurrence of a literal string in the files under a folder,
drop quotes left around the replacement and prepend an import statement to
each rewritten file that lacks it.

Missing values are asked for interactively. With --paste, values are read
from a Markdown recipe (stdin or clipboard) with fenced blocks tagged
root, search, replace and import.

Example: subst -d src -s '="#3762DD"' -r '={colorNameMapper.ROYAL_BLUE}' \
  -i 'import { colorNameMapper } from "~/constants/colorConstants"'`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return handleCompletion(cmd)
		}

		fileCfg, err := LoadConfig(cfg.ConfigPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, fileCfg)

		logger, closer, err := NewLogger(fileCfg.Logging)
		if err != nil {
			return err
		}
		defer closer.Close()

		req, err := collectRequest()
		if errors.Is(err, ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		app, err := NewApp(&Config{
			Request:    req,
			Extensions: fileCfg.Extensions,
			Exclude:    fileCfg.Exclude,
			Workspace:  fileCfg.Workspace,
		}, WithLogger(logger))
		if err != nil {
			return errors.Wrap(err, "failed to initialize application")
		}

		noAnimation := fileCfg.NoAnimation || !isInteractive()
		summary, err := NewTUI(app, noAnimation).Run()
		if err != nil && len(summary.Failed) > 0 {
			return errors.Errorf("%d path(s) failed", len(summary.Failed))
		}
		return err
	},
}

func collectRequest() (Request, error) {
	req := Request{Root: cfg.Root, Search: cfg.Search, Replace: cfg.Replace, Import: cfg.Import}

	if cfg.Paste {
		content, err := NewSourceProvider().GetContent()
		if err != nil {
			return req, errors.Wrap(err, "failed to read recipe")
		}
		recipe, err := ParseRecipe(content)
		if err != nil {
			return req, errors.Wrap(err, "failed to parse recipe")
		}
		req = req.Merge(recipe)
	}

	if req.Validate() != nil && !cfg.NoPrompt && isInteractive() {
		return promptMissing(req)
	}
	return req, req.Validate()
}

func applyFlags(cmd *cobra.Command, c *FileConfig) {
	if cmd.Flags().Changed("extension") {
		if exts := NormalizeExtensions(cfg.Extensions); len(exts) > 0 {
			c.Extensions = exts
		}
	}
	c.Exclude = append(c.Exclude, cfg.Exclude...)
	if cfg.LogLevel != "" {
		c.Logging.Level = cfg.LogLevel
	}
	if cfg.NoAnimation {
		c.NoAnimation = true
	}
}

func handleCompletion(cmd *cobra.Command) error {
	switch cfg.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return errors.Errorf("unsupported shell for completion: %s", cfg.Completion)
	}
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Completion, "completion", "", "Generate completion script")
	rootCmd.Flags().StringVarP(&cfg.Root, "root", "d", "", "Folder to process, relative to the workspace")
	rootCmd.Flags().StringVarP(&cfg.Search, "search", "s", "", "Literal string to replace")
	rootCmd.Flags().StringVarP(&cfg.Replace, "replace", "r", "", "Replacement string")
	rootCmd.Flags().StringVarP(&cfg.Import, "import", "i", "", "Import statement to prepend")
	rootCmd.Flags().StringSliceVarP(&cfg.Extensions, "extension", "e", []string{}, "File extensions to process (default .tsx)")
	rootCmd.Flags().StringSliceVarP(&cfg.Exclude, "exclude", "x", []string{}, "Directory names to skip (glob)")
	rootCmd.Flags().BoolVarP(&cfg.Paste, "paste", "p", false, "Read a recipe from stdin or clipboard")
	rootCmd.Flags().BoolVar(&cfg.NoPrompt, "no-prompt", false, "Fail instead of prompting for missing values")
	rootCmd.Flags().BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable spinner")
	rootCmd.Flags().StringVar(&cfg.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/subst/config.toml)")
	rootCmd.Flags().StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func Execute() error {
	return rootCmd.Execute()
}
