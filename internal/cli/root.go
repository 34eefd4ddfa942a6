// Package cli implements the termsink command-line interface: a pretty
// printer that reads NDJSON log records and renders them as themed console
// output.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sungam3r/termsink/internal/config"
	"github.com/sungam3r/termsink/internal/decode"
	"github.com/sungam3r/termsink/internal/logging"
	"github.com/sungam3r/termsink/pkg/event"
	"github.com/sungam3r/termsink/pkg/termsink"
	"github.com/sungam3r/termsink/pkg/themes"
)

// maxLineBytes bounds a single input line; log records larger than this
// are rare and almost always garbage.
const maxLineBytes = 1 << 20

// Execute runs the termsink CLI.
func Execute() error {
	var (
		flagTheme     string
		flagThemeFile string
		flagTemplate  string
		flagMinLevel  string
		flagConfig    string
		flagNoColor   bool
		flagVerbose   bool
	)

	root := &cobra.Command{
		Use:   "termsink [file...]",
		Short: "Render NDJSON logs as themed console output",
		Long: `termsink reads newline-delimited JSON log records from stdin or from
files and renders them as themed, aligned console lines. Non-JSON lines
pass through as plain messages.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(flagVerbose)

			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			// Flags win over config file and environment.
			if flagTheme != "" {
				cfg.Theme = flagTheme
			}
			if flagThemeFile != "" {
				cfg.ThemeFile = flagThemeFile
			}
			if flagTemplate != "" {
				cfg.Template = flagTemplate
			}
			if flagMinLevel != "" {
				cfg.MinLevel = flagMinLevel
			}

			theme, err := resolveTheme(cfg, flagNoColor)
			if err != nil {
				return err
			}
			opts := []termsink.Option{termsink.WithTheme(theme)}
			if cfg.Template != "" {
				opts = append(opts, termsink.WithTemplate(cfg.Template))
			}
			if cfg.MinLevel != "" {
				opts = append(opts, termsink.WithMinLevel(event.ParseLevel(cfg.MinLevel)))
			}
			sink := termsink.New(opts...)
			defer sink.Close()

			if len(args) == 0 {
				return render(sink, os.Stdin, "stdin")
			}
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open %s: %w", path, err)
				}
				err = render(sink, f, path)
				f.Close()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.Flags().StringVar(&flagTheme, "theme", "", "built-in theme: literate, code, grayscale, sixteen, none")
	root.Flags().StringVar(&flagThemeFile, "theme-file", "", "path to a YAML theme definition")
	root.Flags().StringVar(&flagTemplate, "template", "", "output template")
	root.Flags().StringVar(&flagMinLevel, "min-level", "", "drop events below this level")
	root.Flags().StringVar(&flagConfig, "config", "", "path to a TOML config file")
	root.Flags().BoolVar(&flagNoColor, "no-color", false, "disable styling regardless of theme")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug diagnostics on stderr")

	return root.Execute()
}

// render streams records from r into the sink.
func render(sink *termsink.Sink, r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		e := decode.Record(scanner.Text())
		if e == nil {
			continue
		}
		if err := sink.Emit(e); err != nil {
			slog.Warn("emit failed", "source", name, "error", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

func resolveTheme(cfg config.Config, noColor bool) (themes.Theme, error) {
	if noColor {
		return themes.None, nil
	}
	if cfg.ThemeFile != "" {
		return themes.LoadFile(cfg.ThemeFile, themes.Profile())
	}
	switch cfg.Theme {
	case "", "auto":
		return themes.Detect(os.Stdout), nil
	default:
		if t := themes.Named(cfg.Theme, themes.Profile()); t != nil {
			return t, nil
		}
		return nil, fmt.Errorf("unknown theme %q", cfg.Theme)
	}
}
