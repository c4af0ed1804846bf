package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "fluent"

type rootFlags struct {
	configFile  string
	galleryFile string
	theme       string
	logLevel    string
	logFile     string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	v := viper.New()
	app := &appContext{flags: flags}

	cmd := &cobra.Command{
		Use:   "fluent",
		Short: "Fluent-styled terminal components and their gallery",
		Long: `Fluent renders Fluent Design controls in the terminal.
Without a subcommand it opens the interactive gallery of sliders, the colour
picker and the overflowing command bar.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, flags.configFile); err != nil {
				return err
			}
			if err := bindFlags(cmd, v); err != nil {
				return err
			}
			return app.setupLogger(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the gallery
			if len(args) == 0 {
				return runGallery(cmd, app)
			}
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "settings file (default is $HOME/.fluent.yaml or ./.fluent.yaml)")
	pf.StringVarP(&flags.galleryFile, "gallery", "g", "", "gallery scene YAML (default is the built-in gallery)")
	pf.StringVar(&flags.theme, "theme", "", "override the gallery theme (light or dark)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFile, "log-file", "", "append logs to this file instead of stderr")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newColorCmd(app))
	cmd.AddCommand(newOverflowCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initConfig reads the settings file and environment into v. A missing
// default settings file is not an error; a missing explicit one is.
func initConfig(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".fluent")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}
	return nil
}

// bindFlags copies settings from v onto flags the user did not set on the
// command line. Explicit flags always win.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed || f.Name == "config" || f.Name == "help" {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		val := v.Get(f.Name)
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			bindErr = fmt.Errorf("apply setting %s=%v: %w", f.Name, val, err)
		}
	})
	return bindErr
}
