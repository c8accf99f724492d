// Package declfile reads model declarations from YAML or TOML files.
//
//	models:
//	  - name: User
//	    fields:
//	      name:       {type: string, required: true}
//	      age:        {type: number, required: true}
//	      isFetching: {type: bool, required: true}
//	      role:       {oneOf: [admin, member], warn: true}
//	    defaults:
//	      isFetching: false
//	    options:
//	      validate: true
package declfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/core/domain/model/schema"
	"schemamodel/internal/core/domain/model/schema/proptypes"
	"schemamodel/internal/pkg/errs"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a declaration file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

type fileDecl struct {
	Models []modelDecl `yaml:"models" toml:"models"`
}

type modelDecl struct {
	Name     string               `yaml:"name" toml:"name"`
	Fields   map[string]fieldDecl `yaml:"fields" toml:"fields"`
	Defaults map[string]any       `yaml:"defaults" toml:"defaults"`
	Options  map[string]any       `yaml:"options" toml:"options"`
}

type fieldDecl struct {
	Type     string `yaml:"type" toml:"type"`
	Required bool   `yaml:"required" toml:"required"`
	OneOf    []any  `yaml:"oneOf" toml:"oneOf"`
	Warn     bool   `yaml:"warn" toml:"warn"`
}

// Load reads the file at path, picking the format from its extension.
// Fields marked warn log their violations to logger instead of failing.
func Load(path string, logger *slog.Logger) ([]record.Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model declarations: %w", err)
	}

	decls, err := Parse(data, DetectFormat(path), logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return decls, nil
}

// DetectFormat maps .toml to FormatTOML and everything else to FormatYAML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Parse decodes data and builds one declaration per model entry.
func Parse(data []byte, format Format, logger *slog.Logger) ([]record.Declaration, error) {
	var file fileDecl

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return nil, errs.NewValueIsInvalidError("format")
	}

	decls := make([]record.Declaration, 0, len(file.Models))
	seen := make(map[string]struct{}, len(file.Models))
	for i, m := range file.Models {
		if m.Name == "" {
			return nil, errs.NewValueIsRequiredError(fmt.Sprintf("models[%d].name", i))
		}
		if _, dup := seen[m.Name]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("models",
				fmt.Errorf("model %q declared twice", m.Name))
		}
		seen[m.Name] = struct{}{}

		s, err := buildSchema(m, logger)
		if err != nil {
			return nil, err
		}

		decls = append(decls, record.Declaration{
			Name:     m.Name,
			Schema:   s,
			Defaults: schema.Defaults(m.Defaults),
			Options:  m.Options,
		})
	}

	return decls, nil
}

func buildSchema(m modelDecl, logger *slog.Logger) (schema.Schema, error) {
	if len(m.Fields) == 0 {
		return nil, nil
	}

	s := make(schema.Schema, len(m.Fields))
	for name, f := range m.Fields {
		checker, ok := proptypes.ByName(f.Type)
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				m.Name+".fields."+name+".type",
				fmt.Errorf("unknown type %q", f.Type),
			)
		}
		if len(f.OneOf) > 0 {
			checker = proptypes.OneOf(f.OneOf...)
		}
		if f.Required {
			checker = checker.IsRequired()
		}

		var v schema.Validator = checker
		if f.Warn {
			v = proptypes.Warn(logger, v)
		}
		s[name] = v
	}
	return s, nil
}
