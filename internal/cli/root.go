// Package cli implements the uadetect command line.
package cli

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uadetect/internal/locales"
	"github.com/dmitrymomot/uadetect/pkg/clientip"
	"github.com/dmitrymomot/uadetect/pkg/config"
	"github.com/dmitrymomot/uadetect/pkg/httpserver"
	"github.com/dmitrymomot/uadetect/pkg/i18n"
	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/requestid"
)

// Config is the process configuration read from the environment.
type Config struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	ServiceName     string `env:"SERVICE_NAME" envDefault:"uadetect"`
	LogLevel        string `env:"LOG_LEVEL"`
	LogFormat       string `env:"LOG_FORMAT"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	LocalesDir      string `env:"LOCALES_DIR"`
	LocalesFormat   string `env:"LOCALES_FORMAT" envDefault:"yaml"`

	// TrustedIPHeaders lists forwarding headers that may carry the client
	// address, highest priority first.
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`

	HTTP httpserver.Config
}

type loadConfigFunc func() (Config, error)

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCmd(loadConfig).ExecuteContext(ctx)
}

func newRootCmd(load loadConfigFunc) *cobra.Command {
	root := &cobra.Command{
		Use:          "uadetect",
		Short:        "Classify HTTP user agents by device, browser, OS and bot",
		SilenceUsage: true,
	}
	root.AddCommand(
		newDetectCmd(load),
		newCatalogCmd(load),
		newServeCmd(load),
		newVersionCmd(),
	)
	return root
}

// newLogger builds the process logger. LOG_LEVEL and LOG_FORMAT override the
// environment defaults.
func newLogger(cfg Config) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(os.Stderr),
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LogExtractor, clientip.LogExtractor),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		f := logger.Format(strings.ToLower(cfg.LogFormat))
		if f != logger.FormatJSON && f != logger.FormatText {
			return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", cfg.LogFormat, logger.FormatJSON, logger.FormatText)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...), nil
}

// newTranslator loads the bundled locales, or LOCALES_DIR when set.
func newTranslator(ctx context.Context, cfg Config, log *slog.Logger) (*i18n.Translator, error) {
	var fsys fs.FS = locales.FS
	if cfg.LocalesDir != "" {
		fsys = os.DirFS(cfg.LocalesDir)
	}

	parser := i18n.ParserForFile("locales." + strings.ToLower(cfg.LocalesFormat))
	if parser == nil {
		return nil, fmt.Errorf("unsupported LOCALES_FORMAT %q", cfg.LocalesFormat)
	}

	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(parser, fsys, "."),
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log),
	)
}
