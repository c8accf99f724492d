package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"schemamodel/cmd"
	"schemamodel/internal/core/application/augment"
	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/core/ports"
	"schemamodel/internal/pkg/errs"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	modelsFile string
	model      string
	input      string
	update     bool
	warn       bool
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions

	c := &cobra.Command{
		Use:   "check",
		Short: "Validate a value set against a model",
		Long: `Runs a value set through the model's schema and defaults exactly as a
create (or, with --update, an update) would, without storing anything.

Examples:
  modelctl check --models models.yaml --model User --input user.json
  modelctl check --models models.yaml --model User --input - --update < patch.json
  modelctl check --models api.openapi.yaml --model Pet --input pet.json --warn`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runCheck(c.Context(), opts, c.InOrStdin(), c.OutOrStdout(), c.ErrOrStderr())
		},
	}

	c.Flags().StringVar(&opts.modelsFile, "models", "", "model declarations file")
	c.Flags().StringVar(&opts.model, "model", "", "model name")
	c.Flags().StringVar(&opts.input, "input", "-", "JSON object with the values, - for stdin")
	c.Flags().BoolVar(&opts.update, "update", false, "check as a partial update instead of a create")
	c.Flags().BoolVar(&opts.warn, "warn", false, "log every violation instead of stopping at the first")
	_ = c.MarkFlagRequired("models")
	_ = c.MarkFlagRequired("model")

	return c
}

func runCheck(ctx context.Context, opts checkOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	decls, err := cmd.LoadDeclarations(ctx, opts.modelsFile, logger)
	if err != nil {
		return err
	}
	catalog := record.NewCatalog(decls...)

	decl, err := catalog.Get(opts.model)
	if err != nil {
		return err
	}

	values, err := readValues(opts.input, stdin)
	if err != nil {
		return err
	}

	augOpts := augment.Options{Validate: augment.Bool(true)}
	if opts.warn {
		augOpts.Policy = schema.NewWarnPolicy(logger)
	}
	typ := augment.New(augOpts).Derive(decl.Options).Augment(&dryRunType{decl: decl})

	var result schema.Values
	if opts.update {
		inst := &dryRunInstance{typ: &dryRunType{decl: decl}, values: schema.Values{}}
		if err = typ.Wrap(inst).Update(ctx, values); err == nil {
			result = inst.values
		}
	} else {
		var inst ports.Instance
		if inst, err = typ.Create(ctx, values); err == nil {
			result = inst.(*augment.Instance).Unwrap().(*dryRunInstance).values
		}
	}

	if err != nil {
		var verr *errs.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(stderr, "invalid: %s\n", verr.Error())
		}
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func readValues(input string, stdin io.Reader) (schema.Values, error) {
	var (
		data []byte
		err  error
	)
	if input == "" || input == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	values, err := schema.DecodeValues(data)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("input", err)
	}
	return values, nil
}

// dryRunType is a model type that keeps instances in memory only.
type dryRunType struct {
	decl record.Declaration
}

var (
	_ ports.SchemaDeclarer   = (*dryRunType)(nil)
	_ ports.DefaultsDeclarer = (*dryRunType)(nil)
)

func (t *dryRunType) ModelName() string { return t.decl.Name }

func (t *dryRunType) PropTypes() schema.Schema { return t.decl.Schema }

func (t *dryRunType) DefaultProps() schema.Defaults { return t.decl.Defaults }

func (t *dryRunType) Create(_ context.Context, values schema.Values, _ ...any) (ports.Instance, error) {
	return &dryRunInstance{typ: t, values: values.Clone()}, nil
}

type dryRunInstance struct {
	typ    *dryRunType
	values schema.Values
}

func (i *dryRunInstance) ModelType() ports.ModelType {
	return i.typ
}

func (i *dryRunInstance) Update(_ context.Context, values schema.Values, _ ...any) error {
	for k, v := range values {
		i.values[k] = v
	}
	return nil
}
