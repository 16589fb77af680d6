package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"wintz-generator/internal/config"
	"wintz-generator/internal/gen"
	"wintz-generator/internal/pipeline"
)

type rootOptions struct {
	configFile string
	url        string
	output     string
	format     string
	pkg        string
	timeout    time.Duration
	dryRun     bool
	debugDir   string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wintz-generator",
		Short: "Regenerate the Windows to IANA time zone table",
		Long: `wintz-generator downloads the CLDR windowsZones.xml document, extracts
the default (territory "001") mapping of Windows time zone names to IANA
identifiers and writes it as two sorted, aligned static arrays.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr())

			if err := run(cmd, opts, logger); err != nil {
				logger.WithError(err).Error("generation failed")
				return err
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file")
	flags.StringVar(&opts.url, "url", config.DefaultURL, "windowsZones.xml location (http, https, file URL or path)")
	flags.StringVarP(&opts.output, "output", "o", config.DefaultOutput, "generated file path")
	flags.StringVarP(&opts.format, "format", "f", gen.FormatZig.String(), fmt.Sprintf("output format %v", gen.FormatNames()))
	flags.StringVar(&opts.pkg, "package", config.DefaultPackage, "package name for go output")
	flags.DurationVar(&opts.timeout, "timeout", config.DefaultTimeout, "fetch timeout")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the generated file instead of writing it")
	flags.StringVar(&opts.debugDir, "debug-dir", "", "directory for unformatted go output when formatting fails")
	flags.StringVar(&opts.logLevel, "log-level", logrus.InfoLevel.String(), "log level (debug, info, warn, error)")

	return cmd
}

func newLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return logger
}

func run(cmd *cobra.Command, opts *rootOptions, logger *logrus.Logger) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}

	logger.SetLevel(level)

	cfg, err := opts.resolve(cmd.Flags())
	if err != nil {
		return err
	}

	_, err = pipeline.Run(cmd.Context(), cfg, pipeline.Deps{
		Logger: logger,
		Stdout: cmd.OutOrStdout(),
	})

	return err
}

// resolve builds the run configuration: defaults, then the config file if
// given, then any flag set explicitly on the command line.
func (o *rootOptions) resolve(flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()

	if o.configFile != "" {
		loaded, err := config.LoadFile(o.configFile)
		if err != nil {
			return config.Config{}, err
		}

		cfg = loaded
	}

	if flags.Changed("url") {
		cfg.URL = o.url
	}

	if flags.Changed("output") {
		cfg.Output = o.output
	}

	if flags.Changed("format") {
		f, err := gen.ParseFormat(o.format)
		if err != nil {
			return config.Config{}, err
		}

		cfg.Format = f
	}

	if flags.Changed("package") {
		cfg.Package = o.pkg
	}

	if flags.Changed("timeout") {
		cfg.Timeout = o.timeout
	}

	if flags.Changed("dry-run") {
		cfg.DryRun = o.dryRun
	}

	if flags.Changed("debug-dir") {
		cfg.DebugDir = o.debugDir
	}

	return cfg, nil
}
