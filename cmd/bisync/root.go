package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nicolas-van/bisync/cmd"
	"github.com/nicolas-van/bisync/pkg/bisync"
	"github.com/nicolas-van/bisync/pkg/config"
	"github.com/nicolas-van/bisync/pkg/logging"
)

func rootMain(command *cobra.Command, arguments []string) error {
	// Print version information, if requested.
	if rootConfiguration.version {
		fmt.Println(bisync.Version)
		return nil
	}

	// Print legal information, if requested.
	if rootConfiguration.legal {
		fmt.Print(bisync.LegalNotice)
		return nil
	}

	if len(arguments) < 2 {
		command.Help()
		if len(arguments) == 0 {
			return nil
		}
		return errors.New("at least two folders must be specified")
	}

	globalConfigurationPath, err := config.ConfigurationPath()
	if err != nil {
		return errors.Wrap(err, "unable to compute global configuration path")
	}
	globalConfiguration, err := config.LoadConfiguration(globalConfigurationPath)
	if err != nil {
		return errors.Wrap(err, "unable to load global configuration")
	}

	auto := rootConfiguration.auto || rootConfiguration.fullAuto || globalConfiguration.Auto
	fullAuto := rootConfiguration.fullAuto || globalConfiguration.FullAuto
	if fullAuto {
		auto = true
	}
	simulate := rootConfiguration.simulate
	noTrash := rootConfiguration.noTrash || globalConfiguration.NoTrash || simulate

	logLevelName := rootConfiguration.logLevel
	if logLevelName == "" {
		logLevelName = globalConfiguration.LogLevel
	}
	if logLevelName == "" {
		logLevelName = "info"
	}
	logLevel, ok := logging.NameToLevel(logLevelName)
	if !ok {
		return errors.Errorf("invalid log level: %s", logLevelName)
	}
	logging.RootLogger = logging.NewRootLogger(logLevel)

	exclude := append([]string{}, globalConfiguration.Exclude...)
	exclude = append(exclude, rootConfiguration.exclude...)

	var confirm confirmationPolicy
	var resolve conflictResolver
	opts := bisync.Options{
		Simulate: simulate,
		NoTrash:  noTrash,
		Exclude:  exclude,
		Logger:   logging.RootLogger,
	}
	if !auto {
		opts.Confirm = confirm
	}
	if !fullAuto {
		opts.Resolve = resolve
	}

	return bisync.Run(arguments, opts)
}

var rootCommand = &cobra.Command{
	Use:   "bisync folder folder [folder...]",
	Short: "bisync keeps two or more folders synchronized, tracking per-file history across runs",
	Run:   cmd.Mainify(rootMain),
}

var rootConfiguration struct {
	// help indicates whether or not help information should be shown.
	help bool
	// version indicates whether or not version information should be shown.
	version bool
	// legal indicates whether or not legal information should be shown.
	legal bool
	// auto indicates whether individual transfers should proceed without
	// confirmation.
	auto bool
	// fullAuto indicates that transfers and conflict resolution should both
	// proceed without confirmation.
	fullAuto bool
	// simulate indicates that no mutation should actually be applied.
	simulate bool
	// noTrash indicates that deletions should be applied outright instead of
	// being rerouted into the trash folder.
	noTrash bool
	// exclude lists additional doublestar glob patterns to exclude from
	// tracking.
	exclude []string
	// logLevel names the logging verbosity: disabled, error, warn, info, or
	// debug.
	logLevel string
}

func init() {
	flags := rootCommand.Flags()
	flags.SortFlags = false

	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")
	flags.BoolVarP(&rootConfiguration.version, "version", "V", false, "Show version information")
	flags.BoolVarP(&rootConfiguration.legal, "legal", "l", false, "Show legal information")
	flags.BoolVarP(&rootConfiguration.auto, "auto", "a", false, "Do not confirm individual file transfers")
	flags.BoolVarP(&rootConfiguration.fullAuto, "full-auto", "f", false, "Do not confirm transfers and resolve conflicts automatically")
	flags.BoolVarP(&rootConfiguration.simulate, "simulate", "s", false, "Only print the operations that would be performed")
	flags.BoolVarP(&rootConfiguration.noTrash, "no-trash", "t", false, "Delete files instead of moving them to a trash folder")
	flags.StringSliceVarP(&rootConfiguration.exclude, "exclude", "e", nil, "Exclude paths matching a doublestar glob pattern (can be repeated)")
	flags.StringVar(&rootConfiguration.logLevel, "log-level", "", "Set the logging level (disabled, error, warn, info, debug)")

	cobra.MousetrapHelpText = ""
}
