// Package cli provides the command-line interface for gitex.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ashraful-asif/gitextensions/internal/config"
	"github.com/ashraful-asif/gitextensions/internal/tui"
)

// AddConfigCommand adds the config command group to the root command.
func AddConfigCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect gitex configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Display the effective configuration after merging built-in defaults,
the global config (~/.gitex/config.yaml), the project config
(.gitex/config.yaml), and GITEX_* environment variables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			return writeConfig(os.Stdout, flags.Output, cfg)
		},
	}

	cmd.AddCommand(show)
	parent.AddCommand(cmd)
}

// writeConfig renders the effective config as YAML or JSON.
func writeConfig(w io.Writer, output string, cfg *config.Config) error {
	if output == OutputJSON {
		return tui.WriteJSON(w, cfg)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(out))
	return err
}
