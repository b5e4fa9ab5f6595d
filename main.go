package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/pivolan/address_stats/config"
	"github.com/pivolan/address_stats/domain/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type cliFlags struct {
	envFile     string
	variant     string
	style       string
	delimiter   string
	chart       string
	logLevel    string
	noColor     bool
	translit    bool
	maxAttempts int
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	f := &cliFlags{}
	cmd := &cobra.Command{
		Use:   "address_stats [file...]",
		Short: "Ищет дубликаты адресов и считает дома по городам и этажности",
		Long: `Reads a semicolon separated CSV (first line is a header) or an XML file with
<item city="" street="" house="" floor=""/> elements, prints duplicated rows and
the number of distinct houses per city and floor count.
Without arguments the file path is asked interactively.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.envFile)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd.Flags(), f, cfg); err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			proc := newProcessor(cfg, in, out, logger, clockwork.NewRealClock())
			if len(args) > 0 {
				return proc.RunBatch(args)
			}
			return proc.Run()
		},
	}
	cmd.SetOut(out)

	flags := cmd.Flags()
	flags.StringVar(&f.envFile, "env-file", config.DefaultEnvFile, "path to a .env file")
	flags.StringVar(&f.variant, "variant", string(models.VariantStandard), "legacy (csv only) or standard (csv and xml)")
	flags.StringVar(&f.style, "style", string(models.TablePlain), "table style: plain or boxed")
	flags.StringVar(&f.delimiter, "delimiter", ";", "csv delimiter")
	flags.StringVar(&f.chart, "chart", "", "write a PNG chart of house counts to this path")
	flags.StringVar(&f.logLevel, "log-level", "warn", "debug, info, warn or error")
	flags.BoolVar(&f.noColor, "no-color", false, "disable colored markers")
	flags.BoolVar(&f.translit, "translit", false, "transliterate table cells to ASCII")
	flags.IntVar(&f.maxAttempts, "max-attempts", 0, "maximum number of path entries, 0 for no limit")
	return cmd
}

// applyFlags overrides config values with the flags set on the command line.
func applyFlags(flags *pflag.FlagSet, f *cliFlags, cfg *config.Config) error {
	if flags.Changed("variant") {
		cfg.Variant = models.Variant(f.variant)
	}
	if flags.Changed("style") {
		cfg.TableStyle = models.TableStyle(f.style)
	}
	if flags.Changed("delimiter") {
		d, err := config.ParseDelimiter(f.delimiter)
		if err != nil {
			return err
		}
		cfg.Delimiter = d
	}
	if flags.Changed("chart") {
		cfg.ChartPath = f.chart
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = f.noColor
	}
	if flags.Changed("translit") {
		cfg.Transliterate = f.translit
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = f.maxAttempts
	}
	return cfg.Validate()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func newProcessor(cfg *config.Config, in io.Reader, out io.Writer, logger *zap.Logger, clock clockwork.Clock) *Processor {
	palette := DefaultPalette()
	if cfg.NoColor {
		palette = PlainPalette()
	}
	console := NewConsole(in, out, palette)
	accepted := Extensions(cfg.Variant, cfg.AllowArchives)
	return &Processor{
		console:   console,
		resolver:  NewPathResolver(console, accepted, cfg.MaxAttempts, logger),
		loader:    NewAddressLoader(cfg.Delimiter, Formats(cfg.Variant), logger),
		printer:   NewReportPrinter(console, cfg.TableStyle, cfg.Variant, cfg.Transliterate),
		accepted:  accepted,
		chartPath: cfg.ChartPath,
		clock:     clock,
		logger:    logger,
	}
}
