package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/abdul-hamid-achik/lunarica/packages/core/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write .lunarica.yaml in the current directory.

The file holds the default settings with any LUNARICA_* environment
variables applied, ready to edit.

Examples:
  lunarica init
  LUNARICA_URL=https://api.example.com lunarica init --force`,
	Args: cobra.NoArgs,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing config file")
}

func initCommand(cmd *cobra.Command, args []string) error {
	path := config.ConfigFilenames[0]

	if !forceInit {
		if _, err := os.Stat(path); err == nil {
			return configError(fmt.Errorf("file already exists: %s (use --force to overwrite)", path))
		} else if !errors.Is(err, fs.ErrNotExist) {
			return configError(err)
		}
	}

	fromEnv, err := config.FromEnv()
	if err != nil {
		return configError(err)
	}
	cfg := config.DefaultConfig().Merge(fromEnv)
	if err := cfg.Validate(); err != nil {
		return configError(err)
	}

	if err := cfg.SaveConfig(path); err != nil {
		return configError(fmt.Errorf("failed to write config file: %w", err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created: %s\n", path)
	if cfg.IsDefault() {
		fmt.Fprintln(out, "All settings are defaults; edit the file to set a base URL and headers.")
	}
	return nil
}
