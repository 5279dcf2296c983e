package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	fsAdapter "github.com/bft-labs/mdmedium/internal/adapters/fs"
	logAdapter "github.com/bft-labs/mdmedium/internal/adapters/log"
	"github.com/bft-labs/mdmedium/internal/adapters/terminal"
	"github.com/bft-labs/mdmedium/internal/app"
	"github.com/bft-labs/mdmedium/internal/cliconfig"
	"github.com/bft-labs/mdmedium/internal/markdown"
	"github.com/bft-labs/mdmedium/internal/ports"
)

const helpDescription = `
Turn a Markdown draft into text you can paste straight into Medium's editor.

Highlights:
  - Headings become 📝 / 📌 / 🔸, list markers become •, numbered lists are renumbered.
  - Adds a title, tag line and separator on top of the post.
  - Display the styled result in the terminal or save a clean <name>_medium.txt copy.
  - Configure via $HOME/.mdmedium/config.toml, MDMEDIUM_* env vars, .env or flags.

Run without arguments for the interactive mode.
`

var longHelp = terminal.Banner() + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  mdmedium
  mdmedium convert post.md --tags go,programming
  mdmedium convert post.md --display
  mdmedium watch post.md --output-dir ./out
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// options collects flag values that do not map onto cliconfig.Config directly.
type options struct {
	cfgPath string
	envPath string
	tags    string
	title   string
	display bool
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var opts options

	log := logAdapter.NewConsoleLogger(os.Stderr, zerolog.InfoLevel)

	// load resolves configuration: defaults < file < .env/env < flags.
	load := func(cmd *cobra.Command) error {
		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		cfgFile := opts.cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}
		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
				return err
			}
		}

		if err := cliconfig.LoadDotEnv(opts.envPath); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
			return err
		}

		if changed["tags"] {
			cfg.Tags = markdown.ParseTags(opts.tags)
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		log = log.Level(cfg.Level())
		log.Debug().Interface("config", cfg).Msg("configuration")
		return nil
	}

	build := func() (*app.Converter, *fsAdapter.DocumentFileStore, *terminal.Presenter) {
		store := fsAdapter.NewDocumentFileStore(cfg.OutputDir, cfg.Suffix)
		presenter := terminal.NewPresenter(os.Stdout, terminal.Options{
			Color:   !cfg.NoColor && terminal.DetectColor(os.Stdout),
			Animate: terminal.IsTerminal(os.Stdout),
		})
		converter := app.NewConverter(app.ConverterConfig{
			DefaultTitle: cfg.DefaultTitle,
			Tags:         cfg.Tags,
			FrontMatter:  cfg.FrontMatter,
			PreviewLines: cfg.PreviewLines,
		}, store, presenter, logAdapter.NewZerologAdapterWithLogger(log))
		return converter, store, presenter
	}

	root := &cobra.Command{
		Use:           "mdmedium",
		Short:         "Convert Markdown drafts into Medium-ready text",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := load(cmd); err != nil {
				return err
			}
			converter, store, presenter := build()

			var prompter ports.Prompter
			if terminal.IsTerminal(os.Stdin) && terminal.IsTerminal(os.Stdout) {
				prompter = terminal.NewSurveyPrompter(os.Stdin, os.Stdout)
			} else {
				prompter = app.NewLinePrompter(os.Stdin, os.Stdout, presenter)
			}

			session := app.NewSession(converter, store, presenter, prompter,
				logAdapter.NewZerologAdapterWithLogger(log), os.Stdout)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return session.Run(ctx)
		},
	}

	convertCmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "Convert one or more Markdown files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := load(cmd); err != nil {
				return err
			}
			converter, _, _ := build()

			mode := app.ModeSave
			if opts.display {
				mode = app.ModeDisplay
			}

			for _, path := range args {
				req := app.Request{Path: path, Mode: mode, Title: opts.title}
				if _, err := converter.Convert(cmd.Context(), req); err != nil {
					return err
				}
			}
			return nil
		},
	}
	convertCmd.Flags().BoolVar(&opts.display, "display", false, "print styled output instead of saving a file")
	convertCmd.Flags().StringVar(&opts.title, "title", "", "title to use instead of the first '# ' heading")

	watchCmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-convert a Markdown file every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := load(cmd); err != nil {
				return err
			}
			converter, _, _ := build()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := app.NewWatcher(converter, logAdapter.NewZerologAdapterWithLogger(log), cfg.Debounce)
			if err := w.Run(ctx, app.Request{Path: args[0], Mode: app.ModeSave, Title: opts.title}); err != nil {
				return err
			}
			log.Info().Msg("received signal, stopping...")
			return nil
		},
	}
	watchCmd.Flags().StringVar(&opts.title, "title", "", "title to use instead of the first '# ' heading")
	watchCmd.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay between the last write and re-conversion")

	// Flags shared by every command
	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgPath, "config", "", "path to config file (default: $HOME/.mdmedium/config.toml)")
	pf.StringVar(&opts.envPath, "env-file", ".env", "path to a .env file with MDMEDIUM_* variables")
	pf.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory for saved output (default: current directory)")
	pf.StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "suffix appended to the input name for saved output")
	pf.StringVar(&cfg.DefaultTitle, "default-title", cfg.DefaultTitle, "title used when the document has no '# ' heading")
	pf.StringVar(&opts.tags, "tags", "", "comma-separated tags for the header")
	pf.BoolVar(&cfg.FrontMatter, "front-matter", cfg.FrontMatter, "read title and tags from a front matter block")
	pf.IntVar(&cfg.PreviewLines, "preview-lines", cfg.PreviewLines, "lines of saved output to preview (0 disables)")
	pf.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable coloured terminal output")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(convertCmd, watchCmd)

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("mdmedium")
		os.Exit(1)
	}
}
