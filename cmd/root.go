// -- cmd/root.go --
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/calyptra/storesuite/internal/config"
	"github.com/calyptra/storesuite/internal/observability"
)

// newRootCmd builds the base command. Subcommands inherit its
// PersistentPreRunE, which loads config and initializes logging.
func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:     "storesuite",
		Short:   "Storesuite drives admin-panel browser flows and order pricing.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(v, cfgFile); err != nil {
				return err
			}

			cfg, err := config.FromViper(v)
			if err != nil {
				// Fall back to a usable logger so the error itself is visible.
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "storesuite"})
				return fmt.Errorf("failed to load config: %w", err)
			}

			observability.InitializeLogger(cfg.Logger)
			observability.GetLogger().Info("Starting storesuite", zap.String("version", Version))

			cmd.SetContext(config.IntoContext(cmd.Context(), cfg))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newSmokeCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if logger := observability.GetLogger(); logger != nil {
			logger.Error("Command execution failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// initializeConfig reads in config file and ENV variables if set.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	config.SetDefaults(v)
	v.SetEnvPrefix("STORESUITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults/env vars.
	}
	return nil
}
