package main

import (
	"fmt"

	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/hookgate/internal/config"
)

var (
	globalFlag bool
	forceFlag  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write a starter configuration file with the default settings.

Writes .hookgate/config.toml in the current directory, or
~/.hookgate/config.toml with --global.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&globalFlag, "global", false, "Write the global config instead of the project config")
	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	writer, err := internalconfig.NewWriter()
	if err != nil {
		return err
	}

	path, err := writer.WriteDefault(globalFlag, forceFlag)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}
