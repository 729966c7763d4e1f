package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ydbtools/ydbgather/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the effective configuration, write a default file, or print its JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the built-in defaults to $XDG_CONFIG_HOME/ydbgather/config.toml, or to
the file given with --config. An existing file is kept unless --force is set.`,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd, configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeConfig(app.Config)
	if err != nil {
		return err
	}
	if app.ConfigFile != "" {
		fmt.Printf("# %s\n", app.ConfigFile)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path := globals.ConfigFile
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return err
		}
	}

	if err := config.WriteConfig(config.DefaultConfig(), path, configForce); err != nil {
		return err
	}
	fmt.Printf("Wrote default configuration: %s\n", path)
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
