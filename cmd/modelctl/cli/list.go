package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"schemamodel/cmd"
	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/core/domain/model/schema"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var modelsFile string

	c := &cobra.Command{
		Use:   "list",
		Short: "List the models of a declarations file",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runList(c.Context(), modelsFile, c.OutOrStdout(), c.ErrOrStderr())
		},
	}

	c.Flags().StringVar(&modelsFile, "models", "", "model declarations file")
	_ = c.MarkFlagRequired("models")

	return c
}

func runList(ctx context.Context, modelsFile string, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	decls, err := cmd.LoadDeclarations(ctx, modelsFile, slog.New(slog.NewTextHandler(stderr, nil)))
	if err != nil {
		return err
	}
	catalog := record.NewCatalog(decls...)

	fmt.Fprintf(stdout, "%-24s %-40s %s\n", "MODEL", "FIELDS", "DEFAULTS")
	fmt.Fprintln(stdout, strings.Repeat("-", 76))
	for _, name := range catalog.Names() {
		decl, _ := catalog.Get(name)
		fmt.Fprintf(stdout, "%-24s %-40s %s\n",
			name, strings.Join(decl.Schema.Keys(), ","), strings.Join(schema.Values(decl.Defaults).Keys(), ","))
	}
	return nil
}
