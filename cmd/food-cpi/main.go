package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/food-cpi/internal/config"
	"github.com/iwvelando/food-cpi/internal/dashboard"
	"github.com/iwvelando/food-cpi/internal/logging"
	"github.com/iwvelando/food-cpi/pkg/constants"
	"github.com/iwvelando/food-cpi/pkg/cpi"
	"github.com/iwvelando/food-cpi/pkg/locale"
	"github.com/iwvelando/food-cpi/pkg/output"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("food-cpi", flag.ContinueOnError)
	flags.SetOutput(stderr)

	// Process command line flags first to get config location
	configLocation := flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flags.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flags.String("log-level", "", "log level override (debug, info, warn, error)")
	langFlag := flags.String("lang", "", "display language override: en, fr")
	viewFlag := flags.String("view", "", "ranking override: top, bottom")
	countFlag := flags.Int("count", constants.DefaultRankCount, "number of categories per ranking")
	categoryFlag := flags.String("category", "", "trend category override")
	datasetFlag := flags.String("dataset", "", "path to a JSON dataset instead of the bundled one")
	if err := flags.Parse(args); err != nil {
		return err
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	// The default config file is optional; one named on the command line is not.
	var (
		conf *config.Configuration
		err  error
	)
	if set["config"] {
		conf, err = config.LoadConfiguration(*configLocation)
	} else {
		conf, err = config.LoadOptionalConfiguration(*configLocation)
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": %q}\n", *configLocation, err.Error())
		return err
	}

	// Initialize logging based on config and CLI override
	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": %q}\n", err.Error())
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Command line flags take precedence over the configuration
	if *outputFormatFlag != "" {
		conf.Output.Format = *outputFormatFlag
	}
	if *langFlag != "" {
		conf.Dashboard.Language = *langFlag
	}
	if *viewFlag != "" {
		conf.Dashboard.View = *viewFlag
	}
	if set["count"] {
		conf.Dashboard.Count = *countFlag
	}
	if *categoryFlag != "" {
		conf.Dashboard.Category = *categoryFlag
	}
	if *datasetFlag != "" {
		conf.Dataset.Path = *datasetFlag
	}

	if err := conf.Validate(); err != nil {
		logger.Error("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return err
	}

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	d, err := dashboard.Load(logger, *conf)
	if err != nil {
		logger.Error("failed to load dashboard data",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return err
	}

	direction, err := cpi.ParseDirection(conf.Dashboard.View)
	if err != nil {
		logger.Error(err.Error(),
			zap.String("op", "main"),
		)
		return err
	}

	category := conf.Dashboard.Category
	if !d.HasCategory(category) {
		if *categoryFlag != "" {
			logger.Warn("Unknown trend category, every month will be missing",
				zap.String("op", "main"),
				zap.String("category", category),
			)
		} else {
			category = d.DefaultCategory()
		}
	}

	view := d.Snapshot(dashboard.Query{
		Direction: direction,
		Count:     conf.Dashboard.Count,
		Language:  locale.Parse(conf.Dashboard.Language),
		Category:  category,
	})

	// Handle output.
	if err := output.Write(stdout, conf.Output.Format, view); err != nil {
		logger.Error("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return err
	}
	return nil
}
