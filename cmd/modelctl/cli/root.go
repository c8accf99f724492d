// Package cli implements modelctl, an offline tool for checking value sets
// against model declarations.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the modelctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "modelctl",
		Short: "Inspect and check model declarations",
		Long: `modelctl works on model declaration files without a database.

Declaration files are YAML or TOML; JSON and *.openapi.yaml files are read
as OpenAPI documents whose component schemas become models.`,
		SilenceUsage: true,
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newListCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
