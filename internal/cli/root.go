package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cadastro/pkg/config"
	"github.com/dmitrymomot/cadastro/pkg/environment"
	"github.com/dmitrymomot/cadastro/pkg/form"
	"github.com/dmitrymomot/cadastro/pkg/httpserver"
	"github.com/dmitrymomot/cadastro/pkg/logger"
	"github.com/dmitrymomot/cadastro/pkg/requestid"
)

const serviceName = "cadastro"

// errInvalid makes the process exit non-zero after a failed check has been printed.
var errInvalid = errors.New("validation failed")

// Config is read from the environment.
type Config struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL"`
	FieldsFile string `env:"FORM_FIELDS_FILE"`
	HTTP       httpserver.Config
}

// options holds the persistent flags.
type options struct {
	fieldsFile string
	today      string
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          serviceName,
		Short:        "Mask and validate registration form input",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.fieldsFile, "fields", "f", "", "YAML field bindings (default: FORM_FIELDS_FILE or the built-in registration form)")
	cmd.PersistentFlags().StringVar(&opts.today, "today", "", "reference date YYYY-MM-DD for age rules (default: current date)")

	cmd.AddCommand(
		maskCmd(),
		rulesCmd(),
		checkCmd(opts),
		submitCmd(opts),
		serveCmd(opts),
	)
	return cmd
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg Config) (*slog.Logger, error) {
	lopts := []logger.Option{
		logger.WithOutput(os.Stderr),
		logger.WithEnvironment(environment.Parse(cfg.Env), serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		lopts = append(lopts, logger.WithLevel(level))
	}
	return logger.New(lopts...), nil
}

// buildForm resolves field bindings from the flag, then the environment,
// then the built-in registration form.
func buildForm(opts *options, cfg Config, log *slog.Logger) (*form.Form, error) {
	fields := form.Registration()

	path := opts.fieldsFile
	if path == "" {
		path = cfg.FieldsFile
	}
	if path != "" {
		loaded, err := config.LoadFields(path)
		if err != nil {
			return nil, err
		}
		fields = loaded
	}

	formOpts := []form.Option{form.WithLogger(log)}
	if opts.today != "" {
		today, err := time.Parse(time.DateOnly, opts.today)
		if err != nil {
			return nil, fmt.Errorf("invalid --today %q: %w", opts.today, err)
		}
		formOpts = append(formOpts, form.WithClock(func() time.Time { return today }))
	}

	return form.New(fields, formOpts...)
}

// setup loads configuration, the logger and the form for commands that need them.
func setup(opts *options) (Config, *slog.Logger, *form.Form, error) {
	cfg, err := loadConfig()
	if err != nil {
		return Config{}, nil, nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return Config{}, nil, nil, err
	}
	f, err := buildForm(opts, cfg, log)
	if err != nil {
		return Config{}, nil, nil, err
	}
	return cfg, log, f, nil
}
